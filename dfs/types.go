package dfs

import (
	"context"
	"errors"
)

// Vertex states during generation. They mirror the status a learner sees
// on screen: unvisited, on the stack, processed.
const (
	White = iota // not yet seen
	Gray         // pushed onto the stack, not yet processed
	Black        // popped and processed
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS generation.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS generation.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is popped and processed.
	// Returning an error aborts generation with that error.
	OnVisit func(id string) error
}

// DefaultOptions returns a DFSOptions with a background context and no hook.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for DFS generation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a processing hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}
