package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/render"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/playback"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

func newStepsCmd(a *app) *cobra.Command {
	var (
		gf       graphFlags
		markdown bool
	)
	cmd := &cobra.Command{
		Use:   "steps <graph-file>",
		Short: "Print every record of the replay log as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, log, err := a.build(ctx, args[0], gf, cmd.ErrOrStderr(), playback.WithLogger(ctxlog.FromContext(ctx)))
			if err != nil {
				return err
			}
			mode := render.ASCII
			if markdown {
				mode = render.Markdown
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.History(log, log.Len()-1, mode))
			if log.Structure() == step.StructurePartition {
				fmt.Fprintln(out, render.SortedEdges(log.Last(), mode))
			}
			fmt.Fprintln(out, log.Summary())

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&gf.algorithm, "algorithm", "", "Algorithm: bfs, dfs, kruskal or prim (overrides the file)")
	fl.StringVar(&gf.start, "start", "", "Start node (overrides the file)")
	fl.BoolVar(&markdown, "markdown", false, "Render Markdown tables")

	return cmd
}
