package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 50
	minHeight = 10
)

// View implements tea.Model. This renders the full dashboard.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		return m.renderTooSmall()
	}

	sections := []string{
		m.renderHeader(),
		m.renderDivider(),
		m.renderTotals(),
		m.renderDivider(),
		m.renderTransfers(),
		m.renderDivider(),
		m.renderFooter(),
	}

	rendered := styles.Container.
		Width(safeWidth(m.width - 2)).
		Render(strings.Join(sections, "\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, rendered)
}

func (m model) renderTooSmall() string {
	return fmt.Sprintf("Terminal too small (%dx%d). Need %dx%d minimum.",
		m.width, m.height, minWidth, minHeight)
}

// renderHeader renders the title, daemon address, scope and fetch indicator.
func (m model) renderHeader() string {
	parts := []string{styles.Title.Render("rcstat watch")}
	if m.address != "" {
		parts = append(parts, styles.Address.Render(m.address))
	}
	scope := m.scope
	if scope == "" {
		scope = "global"
	}
	parts = append(parts, styles.Group.Render(scope))
	if m.fetching {
		parts = append(parts, m.spinner.View())
	}
	return strings.Join(parts, "  ")
}

func (m model) renderDivider() string {
	return styles.Divider.Render(strings.Repeat("─", safeWidth(m.width-4)))
}

// renderTotals renders aggregate counters from the latest snapshot and the last fetch error.
func (m model) renderTotals() string {
	var lines []string

	if m.snapshot == nil {
		if m.err == nil {
			lines = append(lines, styles.Label.Render("Waiting for daemon..."))
		}
	} else {
		s := m.snapshot
		lines = append(lines,
			field("Transferred", fmt.Sprintf("%s / %s (%d%%)",
				formatBytes(s.Bytes), formatBytes(s.TotalBytes), percent(s.Bytes, s.TotalBytes)))+"  "+
				styles.Label.Render("Speed ")+styles.Speed.Render(formatSpeed(s.Speed))+"  "+
				field("ETA", formatETA(s.ETA)),
			field("Transfers", formatCount(s.Transfers, s.TotalTransfers))+"  "+
				field("Checks", formatCount(s.Checks, s.TotalChecks))+"  "+
				field("Deletes", fmt.Sprintf("%d", s.Deletes))+"  "+
				field("Errors", fmt.Sprintf("%d", s.Errors))+"  "+
				field("Elapsed", formatElapsed(s.ElapsedTime)),
		)
		if s.LastError != "" {
			lines = append(lines, styles.Error.Render(
				truncate("Last error: "+singleLine(s.LastError), safeWidth(m.width-6))))
		}
	}

	if m.err != nil {
		lines = append(lines, styles.Stale.Render(
			truncate("Fetch failed: "+singleLine(m.err.Error()), safeWidth(m.width-6))))
	}

	return strings.Join(lines, "\n")
}

// renderTransfers renders up to maxTransfers in-flight transfers.
func (m model) renderTransfers() string {
	if m.snapshot == nil || len(m.snapshot.Transferring) == 0 {
		return styles.Label.Render("No transfers in flight")
	}

	inflight := m.snapshot.Transferring
	lines := []string{styles.Label.Render(fmt.Sprintf("In flight (%d)", len(inflight)))}

	shown := inflight
	if m.maxTransfers >= 0 && len(shown) > m.maxTransfers {
		shown = shown[:m.maxTransfers]
	}

	nameWidth := safeWidth(m.width - 30)
	for _, tr := range shown {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			styles.Percentage.Render(fmt.Sprintf("%3d%%", tr.Percentage)),
			styles.TransferName.Render(truncate(tr.Name, nameWidth)),
			styles.Speed.Render(formatSpeed(tr.Speed)),
		))
	}

	if hidden := len(inflight) - len(shown); hidden > 0 {
		lines = append(lines, styles.Label.Render(fmt.Sprintf("... and %d more", hidden)))
	}

	return strings.Join(lines, "\n")
}

func (m model) renderFooter() string {
	text := "q quit • r refresh"
	if !m.lastUpdate.IsZero() {
		text += " • updated " + m.lastUpdate.Format("15:04:05")
	}
	return styles.Footer.Render(text)
}

func field(label, value string) string {
	return styles.Label.Render(label+" ") + styles.Value.Render(value)
}

func safeWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}
