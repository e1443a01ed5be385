package prim_kruskal

import (
	"context"
	"errors"
	"fmt"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// ErrInvalidGraph indicates that MST algorithms require a weighted graph
// with at least one edge. Returned when graph is nil, unweighted, or has no edges.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a weighted graph with edges")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrUnknownMethod is returned by Compute for a Method other than
// MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a candidate queue).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting vertex to use. Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string

	// Ctx allows cancellation and carries the logger.
	Ctx context.Context
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithContext sets a custom context. A nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(opts *MSTOptions) {
		if ctx != nil {
			opts.Ctx = ctx
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal with a
// background context.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Ctx:    context.Background(),
	}
}

// Compute selects and runs the MST generator named by the options.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, Root).
//	– otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (*step.Log, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph, WithContext(o.Ctx))
	case MethodPrim:
		return Prim(graph, o.Root, WithContext(o.Ctx))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate checks the preconditions shared by both generators.
func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() {
		return ErrInvalidGraph
	}
	if graph.EdgeCount() == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidGraph, core.ErrNoEdges)
	}

	return nil
}

func applyOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
