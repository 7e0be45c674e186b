// Package tui provides a live terminal dashboard for sync daemon statistics using bubbletea.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatsFetcher retrieves one core/stats document.
type StatsFetcher interface {
	FetchStats(ctx context.Context) (any, error)
}

// FetcherFunc adapts a function to StatsFetcher.
type FetcherFunc func(ctx context.Context) (any, error)

// FetchStats calls f.
func (f FetcherFunc) FetchStats(ctx context.Context) (any, error) {
	return f(ctx)
}

// DefaultInterval is the poll interval when none is configured.
const DefaultInterval = time.Second

// TUI is the terminal dashboard for watching transfer statistics.
type TUI struct {
	fetcher      StatsFetcher
	interval     time.Duration
	maxTransfers int
	address      string
	scope        string
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a new TUI polling fetcher.
func New(fetcher StatsFetcher, opts ...Option) *TUI {
	t := &TUI{
		fetcher:      fetcher,
		interval:     DefaultInterval,
		maxTransfers: 8,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithInterval sets the poll interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(t *TUI) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithMaxTransfers limits how many in-flight transfers are listed.
func WithMaxTransfers(n int) Option {
	return func(t *TUI) {
		t.maxTransfers = n
	}
}

// WithAddress sets the daemon address shown in the header.
func WithAddress(addr string) Option {
	return func(t *TUI) {
		t.address = addr
	}
}

// WithScope sets the group or job label shown in the header.
func WithScope(scope string) Option {
	return func(t *TUI) {
		t.scope = scope
	}
}

// Run starts the TUI and blocks until it exits.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.fetcher, t.interval, t.maxTransfers, t.address, t.scope)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
