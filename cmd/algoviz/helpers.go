package main

import (
	"context"
	"fmt"
	"io"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/graphfile"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/playback"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/session"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// graphFlags override what the graph file says.
type graphFlags struct {
	algorithm string
	start     string
}

// build loads path, applies overrides and builds a session. Dropped edges
// are listed on warn.
func (a *app) build(ctx context.Context, path string, gf graphFlags, warn io.Writer, opts ...playback.Option) (*session.Session, *step.Log, error) {
	in, err := graphfile.Load(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	if gf.algorithm != "" {
		in.Algorithm = session.Algorithm(gf.algorithm)
	}
	if gf.start != "" {
		in.Start = gf.start
	}
	if in.Algorithm == "" {
		return nil, nil, fmt.Errorf("%s: no algorithm set; use --algorithm or an algorithm attribute", path)
	}

	sess := session.New(
		session.WithMaxNodes(a.cfg.Graph.MaxNodes),
		session.WithPlayback(opts...),
	)
	log, err := sess.Build(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	for _, r := range sess.Dropped() {
		fmt.Fprintf(warn, "dropped edge %s-%s (weight %d): %v\n", r.Input.From, r.Input.To, r.Input.Weight, r.Err)
	}

	return sess, log, nil
}
