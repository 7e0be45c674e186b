// Package rcclient queries a sync daemon's remote-control API for transfer statistics.
// It posts small JSON filter bodies to the daemon's core/stats and core/transferred
// endpoints and hands back the daemon's JSON documents without modelling them.
package rcclient

import "context"

// Daemon endpoint paths, relative to the configured API address.
const (
	EndpointStats       = "core/stats"
	EndpointTransferred = "core/transferred"
)

// StatsRequest selects which statistics group CoreStatsFiltered reports on.
// When both fields are nil the query is global.
type StatsRequest struct {
	JobID *uint64
	Group *string
}

// StatsQuerier is the set of read-only stats queries the CLI and TUI depend on.
// All methods return the decoded JSON document (maps, slices, float64, string, bool, nil).
type StatsQuerier interface {
	// CoreStats returns global statistics. No request body is sent.
	CoreStats(ctx context.Context) (any, error)

	// CoreStatsFiltered returns statistics scoped by group, by job, or globally.
	// An explicit group wins over a job ID.
	CoreStatsFiltered(ctx context.Context, req StatsRequest) (any, error)

	// CompletedTransfers returns the daemon's completed transfer list, optionally for one group.
	CompletedTransfers(ctx context.Context, group *string) (any, error)

	// JobStats returns statistics for a job ID with an optional group override.
	JobStats(ctx context.Context, jobID uint64, group *string) (any, error)
}

// String returns a pointer to s. Handy for the optional group arguments.
func String(s string) *string {
	return &s
}

// Uint64 returns a pointer to v.
func Uint64(v uint64) *uint64 {
	return &v
}
