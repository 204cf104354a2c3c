package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveflow/search"
)

func newSolveCmd(a *app) *cobra.Command {
	var soloOnly, duoOnly bool

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the best total for one agent and for two agents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if soloOnly && duoOnly {
				return fmt.Errorf("--solo-only and --duo-only are mutually exclusive")
			}
			n, err := readNetwork(cmd, args)
			if err != nil {
				return err
			}

			ctx, cancel := a.searchContext(cmd.Context())
			defer cancel()

			began := time.Now()
			sv, err := search.NewSolver(n,
				search.WithContext(ctx),
				search.WithWorkers(a.cfg.Search.Workers),
				search.WithMemo(a.cfg.Search.Memo),
				search.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			a.logger.Info("network_loaded",
				slog.Int("valves", n.ValveCount()),
				slog.Int("positive", len(n.Positive())),
			)

			out := cmd.OutOrStdout()
			if !duoOnly {
				best, err := sv.Solo(a.cfg.Start, a.cfg.Solo.Minutes)
				if err != nil {
					return fmt.Errorf("solo: %w", err)
				}
				fmt.Fprintf(out, "Max pressure solo: %d\n", best)
			}
			if !soloOnly {
				best, err := sv.Duo(a.cfg.Start, a.cfg.Duo.Minutes1, a.cfg.Duo.Minutes2)
				if err != nil {
					return fmt.Errorf("duo: %w", err)
				}
				fmt.Fprintf(out, "Max pressure with elephant: %d\n", best)
			}

			a.logger.Info("solve_done", slog.Duration("elapsed", time.Since(began)))
			if a.metrics {
				return dumpMetrics(cmd.ErrOrStderr())
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&soloOnly, "solo-only", false, "run only the single-agent search")
	cmd.Flags().BoolVar(&duoOnly, "duo-only", false, "run only the two-agent search")

	return cmd
}
