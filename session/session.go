// Package session ties one authored graph, its generated log and a
// playback controller together, replacing the ambient globals a UI would
// otherwise keep (current graph, current log, cursor, playing flag).
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/playback"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// Input is an authored build request. Either Nodes (explicit labels) or
// NodeCount (labels "1".."n") describes the vertices.
type Input struct {
	Algorithm Algorithm        `json:"algorithm" yaml:"algorithm"`
	Nodes     []string         `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	NodeCount int              `json:"node_count,omitempty" yaml:"node_count,omitempty"`
	Edges     []core.EdgeInput `json:"edges" yaml:"edges"`
	Start     string           `json:"start,omitempty" yaml:"start,omitempty"`
}

// BuildReport describes one Build call for observers such as metrics.
type BuildReport struct {
	Algorithm Algorithm
	Records   int
	Dropped   int
	Duration  time.Duration
	Err       error
}

// Option configures a Session.
type Option func(*Session)

// WithMaxNodes lowers the vertex bound below core.MaxVertices.
func WithMaxNodes(n int) Option {
	return func(s *Session) {
		if n >= core.MinVertices && n <= core.MaxVertices {
			s.maxNodes = n
		}
	}
}

// WithPlayback passes options to the session's controller.
func WithPlayback(opts ...playback.Option) Option {
	return func(s *Session) { s.playbackOpts = append(s.playbackOpts, opts...) }
}

// WithOnBuild registers fn to run after every Build, successful or not.
func WithOnBuild(fn func(BuildReport)) Option {
	return func(s *Session) {
		if fn != nil {
			s.onBuild = append(s.onBuild, fn)
		}
	}
}

// Session is one learner's workspace. It is safe for concurrent use.
//
// Controller observers run without any session lock held, so they may
// read session state; they must not call Build or Clear.
type Session struct {
	// installMu orders concurrent installs so the last graph and the
	// last log always come from the same Build.
	installMu sync.Mutex
	mu        sync.Mutex

	maxNodes     int
	playbackOpts []playback.Option
	onBuild      []func(BuildReport)

	ctrl    *playback.Controller
	graph   *core.Graph
	alg     Algorithm
	start   string
	dropped []core.Rejected
}

// New creates an empty session.
func New(opts ...Option) *Session {
	s := &Session{maxNodes: core.MaxVertices}
	for _, opt := range opts {
		opt(s)
	}
	s.ctrl = playback.New(s.playbackOpts...)

	return s
}

// Controller returns the session's playback controller.
func (s *Session) Controller() *playback.Controller { return s.ctrl }

// Build validates in, builds the graph, runs the generator and installs
// the new log. Invalid edges are dropped and reported by Dropped; every
// other problem is returned as a *ValidationError before any generation
// work. On any error the previous graph and log stay installed.
func (s *Session) Build(ctx context.Context, in Input) (*step.Log, error) {
	began := time.Now()
	report := BuildReport{Algorithm: in.Algorithm}
	defer func() {
		report.Duration = time.Since(began)
		for _, fn := range s.hooks() {
			fn(report)
		}
	}()

	logger := ctxlog.FromContext(ctx)
	alg, g, start, dropped, err := s.author(in)
	report.Dropped = len(dropped)
	if err != nil {
		report.Err = err
		logger.Warn("build rejected", "algorithm", in.Algorithm, "err", err)
		return nil, err
	}
	for _, r := range dropped {
		logger.Warn("edge dropped", "from", r.Input.From, "to", r.Input.To, "weight", r.Input.Weight, "err", r.Err)
	}

	report.Algorithm = alg
	log, err := Generate(ctx, alg, g, start)
	if err != nil {
		report.Err = err
		logger.Warn("build failed", "algorithm", alg, "err", err)
		return nil, err
	}
	report.Records = log.Len()

	s.installMu.Lock()
	s.mu.Lock()
	s.graph, s.alg, s.start, s.dropped = g, alg, start, dropped
	s.mu.Unlock()
	s.ctrl.Install(log)
	s.installMu.Unlock()

	logger.Info("log built",
		slog.String("algorithm", string(alg)),
		slog.String("start", start),
		slog.Int("records", log.Len()),
		slog.Int("dropped", len(dropped)),
		slog.String("result", log.Summary().String()))

	return log, nil
}

func (s *Session) hooks() []func(BuildReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]func(BuildReport){}, s.onBuild...)
}

// author turns in into a graph without touching session state.
func (s *Session) author(in Input) (Algorithm, *core.Graph, string, []core.Rejected, error) {
	alg, err := ParseAlgorithm(string(in.Algorithm))
	if err != nil {
		return "", nil, "", nil, &ValidationError{Field: "algorithm", Err: err}
	}

	opts := []core.GraphOption{core.WithMaxVertices(s.maxNodes)}
	if alg.Weighted() {
		opts = append(opts, core.WithWeighted())
	}
	var g *core.Graph
	if len(in.Nodes) > 0 {
		g, err = core.FromLabels(in.Nodes, opts...)
	} else {
		g, err = core.GenerateNodes(in.NodeCount, opts...)
	}
	if err != nil {
		return alg, nil, "", nil, &ValidationError{Field: "nodes", Err: err}
	}

	edges := in.Edges
	if !alg.Weighted() {
		// traversals ignore weights
		edges = make([]core.EdgeInput, len(in.Edges))
		for i, e := range in.Edges {
			edges[i] = core.EdgeInput{From: e.From, To: e.To}
		}
	}
	_, dropped := g.AddEdges(edges)

	start := ""
	if alg.NeedsStart() {
		start = core.NormalizeID(in.Start)
		if start == "" {
			return alg, nil, "", dropped, &ValidationError{Field: "start", Err: core.ErrEmptyVertexID}
		}
	}
	req := core.Requirement{Start: start, RequireStart: alg.NeedsStart(), RequireEdges: alg.Weighted()}
	if err := core.Check(g, req); err != nil {
		return alg, nil, "", dropped, classify(err)
	}

	return alg, g, start, dropped, nil
}

// Clear discards the graph and log and stops playback.
func (s *Session) Clear() {
	s.installMu.Lock()
	defer s.installMu.Unlock()
	s.mu.Lock()
	s.graph, s.alg, s.start, s.dropped = nil, "", "", nil
	s.mu.Unlock()
	s.ctrl.Install(nil)
}

// Graph returns a copy of the current graph, or nil.
func (s *Session) Graph() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.graph == nil {
		return nil
	}

	return s.graph.Clone()
}

// Algorithm returns the algorithm of the installed log.
func (s *Session) Algorithm() Algorithm {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.alg
}

// Start returns the start vertex of the installed log, empty for Kruskal.
func (s *Session) Start() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.start
}

// Dropped returns the edges rejected by the last successful Build.
func (s *Session) Dropped() []core.Rejected {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]core.Rejected(nil), s.dropped...)
}
