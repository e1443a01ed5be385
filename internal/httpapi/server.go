// Package httpapi serves sessions over JSON/HTTP so a browser presenter can
// author graphs, fetch records and drive playback. Narration stays in the
// browser; server-side autoplay runs in timer mode.
package httpapi

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/google/uuid"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/metrics"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/playback"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/session"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithInterval sets the autoplay interval of new sessions.
func WithInterval(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithMaxNodes bounds authored graphs of new sessions.
func WithMaxNodes(n int) Option {
	return func(s *Server) { s.maxNodes = n }
}

// WithMetrics instruments sessions and mounts GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// Server owns the fiber app and the live sessions keyed by UUID.
type Server struct {
	app *fiber.App

	mu       sync.RWMutex
	sessions map[string]*session.Session

	// base outlives requests; autoplay goroutines run under it.
	base   context.Context
	cancel context.CancelFunc

	logger   *slog.Logger
	interval time.Duration
	maxNodes int
	metrics  *metrics.Metrics
}

// New builds the server and registers every route.
func New(opts ...Option) *Server {
	s := &Server{
		sessions: make(map[string]*session.Session),
		logger:   slog.Default(),
		interval: playback.DefaultInterval,
		maxNodes: core.MaxVertices,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.base, s.cancel = context.WithCancel(ctxlog.WithLogger(context.Background(), s.logger))

	s.app = fiber.New(fiber.Config{AppName: "algoviz"})
	s.app.Use(recoverer.New())
	s.routes()

	return s
}

func (s *Server) routes() {
	s.app.Post("/sessions", s.createSession)
	s.app.Get("/sessions/:id", s.withSession(s.getSession))
	s.app.Delete("/sessions/:id", s.deleteSession)
	s.app.Post("/sessions/:id/build", s.withSession(s.build))
	s.app.Get("/sessions/:id/steps/:i", s.withSession(s.getStep))
	s.app.Post("/sessions/:id/forward", s.withSession(s.forward))
	s.app.Post("/sessions/:id/backward", s.withSession(s.backward))
	s.app.Post("/sessions/:id/reset", s.withSession(s.reset))
	s.app.Post("/sessions/:id/play", s.withSession(s.play))
	s.app.Post("/sessions/:id/pause", s.withSession(s.pause))
	if s.metrics != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
	}
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops autoplay in every session and drains the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	s.mu.RLock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	for _, id := range ids {
		s.close(id)
	}

	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) open() (string, *session.Session) {
	opts := []session.Option{
		session.WithMaxNodes(s.maxNodes),
		session.WithPlayback(playback.WithInterval(s.interval), playback.WithLogger(s.logger)),
	}
	if s.metrics != nil {
		opts = append(opts, session.WithOnBuild(s.metrics.ObserveBuild))
	}
	sess := session.New(opts...)
	if s.metrics != nil {
		sess.Controller().Observe(s.metrics.Observer(sess.Controller()))
		s.metrics.SessionOpened()
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return id, sess
}

func (s *Server) lookup(id string) (*session.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]

	return sess, ok
}

func (s *Server) close(id string) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	sess.Clear()
	if s.metrics != nil {
		s.metrics.SessionClosed()
	}

	return true
}
