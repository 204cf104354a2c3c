package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valveflow/bfs"
)

func newPathsCmd(a *app) *cobra.Command {
	var positiveOnly bool

	cmd := &cobra.Command{
		Use:   "paths [file]",
		Short: "Print the shortest tunnel distance between every pair of valves",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := readNetwork(cmd, args)
			if err != nil {
				return err
			}

			ctx, cancel := a.searchContext(cmd.Context())
			defer cancel()

			idx, err := bfs.ShortestPaths(n, bfs.WithContext(ctx))
			if err != nil {
				return err
			}

			// Destinations are always filtered by rate; sources keep the start valve.
			keep := func(id string) bool {
				if !positiveOnly {
					return true
				}
				r, _ := n.Rate(id)
				return r > 0
			}

			out := cmd.OutOrStdout()
			pairs := 0
			for _, src := range idx.Sources() {
				if !keep(src) && src != a.cfg.Start {
					continue
				}
				for _, dst := range idx.Destinations(src) {
					if !keep(dst) {
						continue
					}
					d, _ := idx.Distance(src, dst)
					fmt.Fprintf(out, "%s -> %s = %d\n", src, dst, d)
					pairs++
				}
			}
			a.logger.Info("paths_done", "pairs", pairs)

			return nil
		},
	}
	cmd.Flags().BoolVar(&positiveOnly, "positive", false,
		"only list pairs between positive-rate valves (plus the start valve as a source)")

	return cmd
}
