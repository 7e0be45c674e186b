package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// model is the bubbletea model for the dashboard.
type model struct {
	ctx     context.Context
	fetcher StatsFetcher

	// Settings
	interval     time.Duration
	maxTransfers int
	address      string
	scope        string

	// State
	spinner    spinner.Model
	fetching   bool
	snapshot   *Snapshot
	err        error
	lastUpdate time.Time
	generation int // invalidates pending ticks after a manual refresh

	// Layout
	width  int
	height int
}

func newModel(ctx context.Context, fetcher StatsFetcher, interval time.Duration, maxTransfers int, address, scope string) model {
	if ctx == nil {
		ctx = context.Background()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Speed

	return model{
		ctx:          ctx,
		fetcher:      fetcher,
		interval:     interval,
		maxTransfers: maxTransfers,
		address:      address,
		scope:        scope,
		spinner:      s,
		fetching:     true,
	}
}

// Init implements tea.Model. It starts the spinner and the first fetch.
func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchStats(m.ctx, m.fetcher))
}
