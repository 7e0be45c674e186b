package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/rcstat/internal/rcclient"
)

func sampleStats() map[string]any {
	return map[string]any{
		"bytes":          float64(1500000),
		"totalBytes":     float64(3000000),
		"speed":          float64(250000),
		"eta":            float64(6),
		"transfers":      float64(1),
		"totalTransfers": float64(3),
		"errors":         float64(0),
		"elapsedTime":    float64(4),
		"transferring": []any{
			map[string]any{"name": "a.txt", "percentage": float64(40), "speed": float64(1000)},
			map[string]any{"name": "b.txt", "percentage": float64(10), "speed": float64(2000)},
			map[string]any{"name": "c.txt", "percentage": float64(90), "speed": float64(3000)},
		},
	}
}

func newTestModel(q *rcclient.MockQuerier, maxTransfers int) model {
	fetcher := FetcherFunc(func(ctx context.Context) (any, error) {
		return q.CoreStatsFiltered(ctx, rcclient.StatsRequest{})
	})
	m := newModel(context.Background(), fetcher, time.Second, maxTransfers, "http://127.0.0.1:5572", "job/5")
	m.width = 100
	m.height = 30
	return m
}

// runCmd executes a command and feeds its message back into the model.
func runCmd(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	next, _ := m.Update(cmd())
	return next.(model)
}

func TestModel_FetchSuccess(t *testing.T) {
	q := rcclient.NewMockQuerier()
	q.SetFiltered(sampleStats(), nil)
	m := newTestModel(q, 8)

	m = runCmd(t, m, fetchStats(m.ctx, m.fetcher))

	if m.fetching {
		t.Error("fetching should be false after stats arrive")
	}
	if m.snapshot == nil {
		t.Fatal("snapshot is nil")
	}
	if m.snapshot.Bytes != 1500000 {
		t.Errorf("Bytes = %d, want 1500000", m.snapshot.Bytes)
	}
	if m.err != nil {
		t.Errorf("err = %v, want nil", m.err)
	}
	if m.lastUpdate.IsZero() {
		t.Error("lastUpdate not set")
	}

	view := m.View()
	for _, want := range []string{"rcstat watch", "job/5", "1.5 MB / 3.0 MB (50%)", "250 kB/s", "1/3", "a.txt", "c.txt"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModel_FetchErrorKeepsLastSnapshot(t *testing.T) {
	q := rcclient.NewMockQuerier()
	q.SetFiltered(sampleStats(), nil)
	m := newTestModel(q, 8)
	m = runCmd(t, m, fetchStats(m.ctx, m.fetcher))

	q.SetFiltered(nil, &rcclient.HTTPStatusError{StatusCode: 500, Body: "daemon exploded"})
	m = runCmd(t, m, fetchStats(m.ctx, m.fetcher))

	if m.snapshot == nil || m.snapshot.Bytes != 1500000 {
		t.Error("last good snapshot should be kept")
	}
	if m.err == nil {
		t.Fatal("err should be set")
	}

	view := m.View()
	if !strings.Contains(view, "Fetch failed: HTTP 500") {
		t.Errorf("view missing fetch error:\n%s", view)
	}
	if !strings.Contains(view, "daemon exploded") {
		t.Errorf("view missing raw body:\n%s", view)
	}
}

func TestModel_DecodeErrorSurfaces(t *testing.T) {
	q := rcclient.NewMockQuerier()
	q.SetFiltered("not an object", nil)
	m := newTestModel(q, 8)

	m = runCmd(t, m, fetchStats(m.ctx, m.fetcher))

	if m.err == nil || !strings.Contains(m.err.Error(), "decode stats") {
		t.Errorf("err = %v, want decode error", m.err)
	}
	if m.snapshot != nil {
		t.Error("snapshot should stay nil")
	}
}

func TestModel_MaxTransfers(t *testing.T) {
	q := rcclient.NewMockQuerier()
	q.SetFiltered(sampleStats(), nil)
	m := newTestModel(q, 2)
	m = runCmd(t, m, fetchStats(m.ctx, m.fetcher))

	view := m.View()
	if strings.Contains(view, "c.txt") {
		t.Errorf("view should hide the third transfer:\n%s", view)
	}
	if !strings.Contains(view, "and 1 more") {
		t.Errorf("view missing overflow note:\n%s", view)
	}
}

func TestModel_TickFetchesOnlyCurrentGeneration(t *testing.T) {
	q := rcclient.NewMockQuerier()
	q.SetFiltered(sampleStats(), nil)
	m := newTestModel(q, 8)
	m.fetching = false

	// A stale tick is ignored
	next, cmd := m.Update(tickMsg{generation: m.generation + 1})
	if cmd != nil {
		t.Error("stale tick should not fetch")
	}
	m = next.(model)

	// The current tick fetches
	next, cmd = m.Update(tickMsg{generation: m.generation})
	m = next.(model)
	if cmd == nil {
		t.Fatal("current tick should fetch")
	}
	if !m.fetching {
		t.Error("fetching should be true after tick")
	}

	m = runCmd(t, m, cmd)
	if got := q.FilteredCallCount(); got != 1 {
		t.Errorf("FilteredCallCount = %d, want 1", got)
	}
}

func TestModel_RefreshKey(t *testing.T) {
	q := rcclient.NewMockQuerier()
	q.SetFiltered(sampleStats(), nil)
	m := newTestModel(q, 8)

	// Ignored while a fetch is outstanding
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd != nil {
		t.Error("refresh should be ignored while fetching")
	}

	m.fetching = false
	gen := m.generation
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(model)
	if cmd == nil {
		t.Fatal("refresh should fetch")
	}
	if m.generation == gen {
		t.Error("refresh should invalidate pending ticks")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}

	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			m := newTestModel(rcclient.NewMockQuerier(), 8)
			_, cmd := m.Update(key)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
		})
	}
}

func TestModel_ViewStates(t *testing.T) {
	m := newTestModel(rcclient.NewMockQuerier(), 8)

	m.width, m.height = 0, 0
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}

	m.width, m.height = 20, 5
	if got := m.View(); !strings.Contains(got, "too small") {
		t.Errorf("View() = %q, want too-small message", got)
	}

	m.width, m.height = 100, 30
	if got := m.View(); !strings.Contains(got, "Waiting for daemon") {
		t.Errorf("View() missing waiting message:\n%s", got)
	}
}

func TestModel_NoScopeShowsGlobal(t *testing.T) {
	m := newModel(context.Background(), FetcherFunc(func(context.Context) (any, error) {
		return nil, errors.New("unused")
	}), 0, 8, "", "")
	m.width, m.height = 100, 30

	if m.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", m.interval, DefaultInterval)
	}
	if !strings.Contains(m.View(), "global") {
		t.Error("header should show global scope")
	}
}
