package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/npratt/rcstat/internal/rcclient"
	"github.com/npratt/rcstat/internal/shutdown"
	"github.com/npratt/rcstat/internal/tui"
)

// shutdownTimeout bounds how long an in-flight poll may take after a signal.
const shutdownTimeout = 5 * time.Second

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch transfer statistics live",
		Long: `Poll transfer statistics until interrupted.

When stdout is a terminal a live dashboard is shown; otherwise one JSON
document is printed per poll. Use --tui to force either mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			req, err := statsRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			interval := cfg.Watch.Interval
			if cmd.Flags().Changed(FlagInterval) {
				interval, _ = cmd.Flags().GetDuration(FlagInterval)
				if interval <= 0 {
					return fmt.Errorf("--%s must be positive, got %v", FlagInterval, interval)
				}
			}

			// Determine TUI mode: explicit flag > auto-detect from TTY
			tuiEnabled, _ := cmd.Flags().GetBool(FlagTUI)
			if !cmd.Flags().Changed(FlagTUI) {
				tuiEnabled = a.isTerminal()
			}

			ctx := cmd.Context()

			if !tuiEnabled {
				client := a.newClient(cfg, a.logger)
				a.logger.Debug("watching stats",
					"address", client.BaseURL(),
					"scope", scopeLabel(req),
					"interval", interval,
				)
				return shutdown.RunWithGracefulShutdown(ctx, a.logger, shutdownTimeout,
					func(runCtx context.Context) error {
						return pollLoop(runCtx, a.logger, statsFetcher(client, req), interval, a.out)
					},
					nil,
				)
			}

			// TUI mode: redirect logger to file while the dashboard owns the terminal
			tuiLogResult, err := SetupTUILogger(cfg.Paths.LogDir, a.logLevel, cfg.LogRotation)
			if err != nil {
				return err
			}
			defer func() { _ = tuiLogResult.Close() }()
			slog.SetDefault(tuiLogResult.Logger)

			client := a.newClient(cfg, tuiLogResult.Logger)
			tuiLogResult.Logger.Info("dashboard starting",
				"version", version,
				"address", client.BaseURL(),
				"scope", scopeLabel(req),
				"interval", interval,
			)

			dashboard := tui.New(statsFetcher(client, req),
				tui.WithInterval(interval),
				tui.WithMaxTransfers(cfg.Watch.MaxTransfers),
				tui.WithAddress(client.BaseURL()),
				tui.WithScope(scopeLabel(req)),
			)
			return dashboard.Run(ctx)
		},
	}
	cmd.Flags().String(FlagGroup, "", "Stats group to watch")
	cmd.Flags().Uint64(FlagJob, 0, "Job ID whose stats group to watch")
	cmd.Flags().Duration(FlagInterval, 0, "Poll interval (default from config, 1s)")
	cmd.Flags().Bool(FlagTUI, false, "Show the live dashboard (default: when stdout is a terminal)")
	return cmd
}

// statsFetcher polls the filtered stats for req. An empty request reads the aggregate stats.
func statsFetcher(q rcclient.StatsQuerier, req rcclient.StatsRequest) tui.FetcherFunc {
	return func(ctx context.Context) (any, error) {
		return q.CoreStatsFiltered(ctx, req)
	}
}

// scopeLabel names the group a request is scoped to.
func scopeLabel(req rcclient.StatsRequest) string {
	switch {
	case req.Group != nil:
		return *req.Group
	case req.JobID != nil:
		return rcclient.JobGroup(*req.JobID)
	default:
		return "all"
	}
}

// pollLoop fetches once immediately and then every interval, writing each
// document as one JSON line. Fetch failures are logged and polling continues.
// It returns nil when ctx is cancelled.
func pollLoop(ctx context.Context, logger *slog.Logger, fetcher tui.StatsFetcher, interval time.Duration, w io.Writer) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		doc, err := fetcher.FetchStats(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case err != nil:
			logger.Warn("poll failed", "error", err)
		default:
			if err := writeJSONLine(w, doc); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
