package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/npratt/rcstat/internal/config"
	"github.com/npratt/rcstat/internal/rcclient"
)

var version = "dev"

// app carries the state shared by all commands of one invocation.
type app struct {
	v        *viper.Viper
	out      io.Writer
	errOut   io.Writer
	logLevel *slog.LevelVar
	logger   *slog.Logger

	// isTerminal reports whether out is an interactive terminal.
	isTerminal func() bool
}

func newApp(out, errOut io.Writer) *app {
	logLevel := &slog.LevelVar{}

	v := viper.New()
	v.SetEnvPrefix("RCSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	a := &app{
		v:          v,
		out:        out,
		errOut:     errOut,
		logLevel:   logLevel,
		logger:     NewCLILogger(errOut, logLevel),
		isTerminal: func() bool { return false },
	}
	if f, ok := out.(*os.File); ok {
		a.isTerminal = func() bool { return term.IsTerminal(int(f.Fd())) }
	}
	return a
}

// loadConfig applies --verbose and returns the layered configuration.
func (a *app) loadConfig() (*config.Config, error) {
	if a.v.GetBool(FlagVerbose) {
		a.logLevel.Set(slog.LevelDebug)
		a.logger.Debug("verbose logging enabled")
	}

	cfg, err := config.LoadConfig(a.v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newClient builds the stats facade for cfg.
func (a *app) newClient(cfg *config.Config, logger *slog.Logger) *rcclient.Client {
	return rcclient.New(cfg.Engine.APIAddress,
		rcclient.WithHTTPClient(&http.Client{Timeout: cfg.Engine.Timeout}),
		rcclient.WithLogger(logger),
		rcclient.WithDriveLetterPaths(cfg.Engine.DriveLetterPaths()),
	)
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := newApp(out, errOut)

	rootCmd := &cobra.Command{
		Use:   "rcstat",
		Short: "Query transfer statistics from a running sync daemon",
		Long: `rcstat queries the remote-control API of a running sync daemon for
transfer statistics.

It reports aggregate stats, stats scoped to a job or group, the list of
completed transfers, and can watch stats live in a terminal dashboard.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .rcstat/config.yaml)")
	rootCmd.PersistentFlags().String(FlagAPIAddress, config.DefaultAPIAddress, "Daemon remote-control API address")
	rootCmd.PersistentFlags().Duration(FlagTimeout, 0, "Request timeout (0 = none)")
	rootCmd.PersistentFlags().String(FlagPathStyle, config.PathStyleAuto, "Transfer path style: auto, drive-letter or posix")
	rootCmd.PersistentFlags().String(FlagLogDir, "", "Directory for the TUI debug log (default: temp dir)")

	// Bind all flags to viper
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if k, ok := configKeys[f.Name]; ok {
			key = k
		}
		_ = a.v.BindPFlag(key, f)
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(a.out, "rcstat %s\n", version)
		},
	}

	rootCmd.AddCommand(
		versionCmd,
		newStatsCmd(a),
		newTransfersCmd(a),
		newJobCmd(a),
		newWatchCmd(a),
	)

	return rootCmd
}

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show transfer statistics",
		Long: `Show transfer statistics from core/stats.

Without flags the daemon's aggregate stats are shown. --group restricts the
query to a stats group; --job restricts it to a job's group. When both are
given --group wins.`,
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

			client := a.newClient(cfg, a.logger)
			var result any
			if req.Group == nil && req.JobID == nil {
				result, err = client.CoreStats(cmd.Context())
			} else {
				result, err = client.CoreStatsFiltered(cmd.Context(), req)
			}
			if err != nil {
				return err
			}
			return writeJSON(a.out, result)
		},
	}
	cmd.Flags().String(FlagGroup, "", "Stats group to query")
	cmd.Flags().Uint64(FlagJob, 0, "Job ID whose stats group to query")
	return cmd
}

func newTransfersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfers",
		Short: "List completed transfers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			result, err := a.newClient(cfg, a.logger).CompletedTransfers(cmd.Context(), groupFromFlags(cmd))
			if err != nil {
				return err
			}
			return writeJSON(a.out, result)
		},
	}
	cmd.Flags().String(FlagGroup, "", "Stats group to query")
	return cmd
}

func newJobCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job <jobid>",
		Short: "Show statistics for one job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id %q: %w", args[0], err)
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			result, err := a.newClient(cfg, a.logger).JobStats(cmd.Context(), jobID, groupFromFlags(cmd))
			if err != nil {
				return err
			}
			return writeJSON(a.out, result)
		},
	}
	cmd.Flags().String(FlagGroup, "", "Stats group to report the job under")
	return cmd
}

// groupFromFlags returns the --group value, or nil when the flag was not given.
// An explicitly empty group is passed through.
func groupFromFlags(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed(FlagGroup) {
		return nil
	}
	group, _ := cmd.Flags().GetString(FlagGroup)
	return rcclient.String(group)
}

func statsRequestFromFlags(cmd *cobra.Command) (rcclient.StatsRequest, error) {
	req := rcclient.StatsRequest{Group: groupFromFlags(cmd)}
	if cmd.Flags().Changed(FlagJob) {
		jobID, err := cmd.Flags().GetUint64(FlagJob)
		if err != nil {
			return rcclient.StatsRequest{}, err
		}
		req.JobID = rcclient.Uint64(jobID)
	}
	return req, nil
}

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
