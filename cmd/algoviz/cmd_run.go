package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/narration"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/render"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/playback"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

type runFlags struct {
	graph    graphFlags
	interval time.Duration
	narrate  bool
	history  bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run <graph-file>",
		Short: "Build a log and autoplay it in the terminal",
		Long: `Loads an HCL graph file, generates the replay log and plays it from the
first record to the last. With --narrate each description is printed to stderr
and held for as long as it takes to read aloud; otherwise records advance
once per --interval. Ctrl-C pauses and exits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.graph.algorithm, "algorithm", "", "Algorithm: bfs, dfs, kruskal or prim (overrides the file)")
	fl.StringVar(&f.graph.start, "start", "", "Start node (overrides the file)")
	fl.DurationVar(&f.interval, "interval", 0, "Autoplay interval (default from config)")
	fl.BoolVar(&f.narrate, "narrate", false, "Pace playback by narration (default from config)")
	fl.BoolVar(&f.history, "history", false, "Print the history table when playback ends")

	return cmd
}

func (a *app) run(cmd *cobra.Command, path string, f runFlags) error {
	ctx := cmd.Context()
	logger := ctxlog.FromContext(ctx)

	interval := a.cfg.Playback.Interval
	if cmd.Flags().Changed("interval") {
		interval = f.interval
	}
	narrate := a.cfg.Narration.Enabled
	if cmd.Flags().Changed("narrate") {
		narrate = f.narrate
	}
	opts := []playback.Option{playback.WithInterval(interval), playback.WithLogger(logger)}
	if narrate {
		n := narration.NewWriter(cmd.ErrOrStderr(), a.cfg.Narration.WordsPerMinute, a.cfg.Narration.Rate)
		opts = append(opts, playback.WithNarrator(n))
	}

	sess, log, err := a.build(ctx, path, f.graph, cmd.ErrOrStderr(), opts...)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	ctrl := sess.Controller()
	if err := render.Frame(out, log, 0); err != nil {
		return err
	}
	ctrl.Observe(func(i int, _ step.Record) {
		_ = render.Frame(out, log, i)
	})

	if err := ctrl.Play(ctx); err != nil {
		return err
	}
	select {
	case <-ctrl.Done():
	case <-ctx.Done():
		ctrl.Pause()
		<-ctrl.Done()
	}

	if f.history {
		fmt.Fprintln(out, render.History(log, ctrl.CurrentIndex(), render.ASCII))
	}
	fmt.Fprintln(out, log.Summary())

	return nil
}
