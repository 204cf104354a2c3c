package main

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveflow/config"
)

// app carries what every subcommand needs once flags are resolved.
type app struct {
	cfg    config.Config
	logger *slog.Logger

	configPath  string
	soloMinutes int
	duoMinutes  []int
	metrics     bool
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "valveflow",
		Short:         "Maximize pressure released from a valve network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML config file")
	f.StringVar(&a.cfg.Start, "start", a.cfg.Start, "start valve")
	f.IntVar(&a.soloMinutes, "solo-minutes", a.cfg.Solo.Minutes, "time budget of a single agent")
	f.IntSliceVar(&a.duoMinutes, "duo-minutes", []int{a.cfg.Duo.Minutes1, a.cfg.Duo.Minutes2},
		"time budgets of the two agents (one value applies to both)")
	f.IntVar(&a.cfg.Search.Workers, "workers", a.cfg.Search.Workers, "goroutines for top-level branches")
	f.BoolVar(&a.cfg.Search.Memo, "memo", a.cfg.Search.Memo, "memoize search states")
	f.DurationVar(&a.cfg.Search.Timeout, "timeout", 0, "abort the search after this long (0 = never)")
	f.StringVar(&a.cfg.Log.Level, "log-level", a.cfg.Log.Level, "debug, info, warn or error")
	f.StringVar(&a.cfg.Log.Format, "log-format", a.cfg.Log.Format, "text or json")
	f.BoolVar(&a.metrics, "metrics", false, "print search metrics to stderr when done")

	root.AddCommand(newSolveCmd(a), newPathsCmd(a), newInspectCmd(a))

	return root
}

// resolve layers config file and environment under explicitly set flags,
// then builds the run logger.
func (a *app) resolve(cmd *cobra.Command) error {
	loaded, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("start") {
		loaded.Start = a.cfg.Start
	}
	if f.Changed("solo-minutes") {
		loaded.Solo.Minutes = a.soloMinutes
	}
	if f.Changed("duo-minutes") {
		switch len(a.duoMinutes) {
		case 1:
			loaded.Duo.Minutes1, loaded.Duo.Minutes2 = a.duoMinutes[0], a.duoMinutes[0]
		case 2:
			loaded.Duo.Minutes1, loaded.Duo.Minutes2 = a.duoMinutes[0], a.duoMinutes[1]
		default:
			return errDuoMinutes
		}
	}
	if f.Changed("workers") {
		loaded.Search.Workers = a.cfg.Search.Workers
	}
	if f.Changed("memo") {
		loaded.Search.Memo = a.cfg.Search.Memo
	}
	if f.Changed("timeout") {
		loaded.Search.Timeout = a.cfg.Search.Timeout
	}
	if f.Changed("log-level") {
		loaded.Log.Level = a.cfg.Log.Level
	}
	if f.Changed("log-format") {
		loaded.Log.Format = a.cfg.Log.Format
	}
	if err = loaded.Validate(); err != nil {
		return err
	}
	a.cfg = loaded

	lvl, _ := a.cfg.Log.SlogLevel()
	a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.Log.Format, lvl).
		With(slog.String("run_id", uuid.NewString()), slog.String("cmd", cmd.Name()))

	return nil
}

// searchContext bounds a run by the configured timeout.
func (a *app) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if a.cfg.Search.Timeout > 0 {
		return context.WithTimeout(parent, a.cfg.Search.Timeout)
	}

	return context.WithCancel(parent)
}

func newLogger(w io.Writer, format string, lvl slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
