package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/config"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// app carries the resolved configuration to subcommands.
type app struct {
	flags rootFlags
	cfg   config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	root := &cobra.Command{
		Use:   "algoviz",
		Short: "Step-by-step replays of graph traversal and MST algorithms",
		Long: "algoviz records every decision BFS, DFS, Kruskal and Prim make on a small\n" +
			"authored graph and replays the log with manual stepping or autoplay.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		Version:           version,
	}
	f := root.PersistentFlags()
	f.StringVar(&a.flags.configPath, "config", "", "Path to a YAML config file")
	f.StringVar(&a.flags.logLevel, "log-level", "", "Logging level: debug, info, warn, error")
	f.StringVar(&a.flags.logFormat, "log-format", "", "Log output format: text or json")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newStepsCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads the config, applies logging flags and stores the logger in
// the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	if a.flags.logLevel != "" {
		cfg.Log.Level = a.flags.logLevel
	}
	if a.flags.logFormat != "" {
		cfg.Log.Format = a.flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	a.cfg = cfg

	logger := cfg.Log.NewLogger(cmd.ErrOrStderr())
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "algoviz", version)
		},
	}
}
