package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/httpapi"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sessions over JSON/HTTP for a browser presenter",
		Long: `Starts the HTTP API. Each session authors one graph, builds a log and
drives its own playback cursor. Prometheus metrics are served on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("listen") {
				a.cfg.Server.Listen = listen
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default from config)")

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	srv := httpapi.New(
		httpapi.WithLogger(logger),
		httpapi.WithInterval(a.cfg.Playback.Interval),
		httpapi.WithMaxNodes(a.cfg.Graph.MaxNodes),
		httpapi.WithMetrics(metrics.New(reg)),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Listen(a.cfg.Server.Listen)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}
