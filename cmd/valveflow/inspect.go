package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveflow/dfs"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize the network as seen from the start valve",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := readNetwork(cmd, args)
			if err != nil {
				return err
			}

			ctx, cancel := a.searchContext(cmd.Context())
			defer cancel()

			reach, err := dfs.Reachable(n, a.cfg.Start, dfs.WithContext(ctx))
			if err != nil {
				return err
			}
			stranded, err := dfs.Stranded(n, a.cfg.Start, dfs.WithContext(ctx))
			if err != nil {
				return err
			}
			if len(stranded) > 0 {
				a.logger.Warn("stranded_valves", slog.Any("valves", stranded))
			}

			positive := n.Positive()
			total := 0
			for _, id := range positive {
				r, _ := n.Rate(id)
				total += r
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "valves: %d\n", n.ValveCount())
			fmt.Fprintf(out, "positive: %d (total rate %d)\n", len(positive), total)
			fmt.Fprintf(out, "reachable from %s: %d\n", a.cfg.Start, len(reach))
			fmt.Fprintf(out, "stranded: %s\n", joinOrNone(stranded))

			return nil
		},
	}
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return "none"
	}

	return strings.Join(ids, ", ")
}
