package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// statsMsg carries the result of one fetch.
type statsMsg struct {
	snapshot Snapshot
	err      error
	at       time.Time
}

// tickMsg signals that the poll interval elapsed.
type tickMsg struct {
	generation int
}

// fetchStats creates a command that fetches and decodes one stats document.
func fetchStats(ctx context.Context, fetcher StatsFetcher) tea.Cmd {
	return func() tea.Msg {
		doc, err := fetcher.FetchStats(ctx)
		if err != nil {
			return statsMsg{err: err, at: time.Now()}
		}
		snap, err := DecodeSnapshot(doc)
		return statsMsg{snapshot: snap, err: err, at: time.Now()}
	}
}

// doTick creates a command that waits for the interval and sends a tickMsg.
func doTick(interval time.Duration, generation int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

// Update implements tea.Model. It handles all message types and updates the model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statsMsg:
		m.fetching = false
		m.lastUpdate = msg.at
		if msg.err != nil {
			// Keep the last good snapshot on screen and show the error beside it.
			slog.Debug("stats fetch failed", "error", msg.err)
			m.err = msg.err
		} else {
			m.err = nil
			snap := msg.snapshot
			m.snapshot = &snap
		}
		m.generation++
		return m, doTick(m.interval, m.generation)

	case tickMsg:
		if msg.generation != m.generation || m.fetching {
			return m, nil
		}
		m.fetching = true
		return m, fetchStats(m.ctx, m.fetcher)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input and returns the updated model and command.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "r":
		if m.fetching {
			return m, nil
		}
		m.fetching = true
		m.generation++
		return m, fetchStats(m.ctx, m.fetcher)
	}

	return m, nil
}
