package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const truncateIndicator = "..."

// formatBytes renders a byte count, clamping negatives to zero.
func formatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// formatSpeed renders bytes per second.
func formatSpeed(bps float64) string {
	if bps < 0 {
		bps = 0
	}
	return humanize.Bytes(uint64(bps)) + "/s"
}

// formatETA renders seconds remaining, or "-" when unknown.
func formatETA(eta *int64) string {
	if eta == nil || *eta < 0 {
		return "-"
	}
	return (time.Duration(*eta) * time.Second).String()
}

// formatElapsed renders fractional seconds rounded to the second.
func formatElapsed(seconds float64) string {
	if seconds <= 0 {
		return "0s"
	}
	return time.Duration(seconds * float64(time.Second)).Round(time.Second).String()
}

// percent returns done/total as a whole percentage, 0 when total is unknown.
func percent(done, total int64) int {
	if total <= 0 {
		return 0
	}
	p := int(done * 100 / total)
	if p > 100 {
		return 100
	}
	return p
}

// formatCount renders "done/total", or just done when total is unknown.
func formatCount(done, total int64) string {
	if total <= 0 {
		return fmt.Sprintf("%d", done)
	}
	return fmt.Sprintf("%d/%d", done, total)
}

// truncate shortens s to at most max runes, ending in truncateIndicator.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(truncateIndicator) {
		return string(runes[:max])
	}
	return string(runes[:max-len(truncateIndicator)]) + truncateIndicator
}

// singleLine collapses newlines so an error fits the status line.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
