// File: types.go
// Role: Graph and Edge types, construction options, sentinel errors.
//
// A Graph is built once per session, validated, and then handed to exactly
// one generator. Generators only read it: every accessor returns copies, so a
// generator cannot mutate the graph it was given.
//
// Errors:
//
//	ErrGraphNil          - graph pointer is nil.
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrDuplicateVertex   - vertex ID already present.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrLoopNotAllowed    - edge endpoints are the same vertex.
//	ErrBadWeight         - non-positive weight on a weighted graph, or non-zero weight on an unweighted one.
//	ErrNodeCount         - vertex count outside [MinVertices, max].
//	ErrNoEdges           - weighted algorithm requested on a graph with no valid edges.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates a nil *Graph was passed.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates a vertex with the same ID already exists.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates an edge weight that the graph's weight policy rejects.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrNodeCount indicates the vertex count is outside the allowed range.
	ErrNodeCount = errors.New("core: node count out of range")

	// ErrNoEdges indicates a graph without any valid edge.
	ErrNoEdges = errors.New("core: no valid edges")
)

// Vertex count bounds for authored graphs.
const (
	MinVertices = 1
	MaxVertices = 20
)

// Edge is an undirected connection between two vertices.
//
// Index is the position of the edge in insertion order; it is the stable
// identity used by step records and renderers, since two parallel edges may
// share both endpoints and weight.
type Edge struct {
	// Index is the zero-based insertion position within the Graph.
	Index int `json:"index"`

	// From is the first endpoint as authored.
	From string `json:"from"`

	// To is the second endpoint as authored.
	To string `json:"to"`

	// Weight is the positive edge cost on weighted graphs, zero otherwise.
	Weight int64 `json:"weight"`
}

// Touches reports whether id is one of the edge's endpoints.
func (e Edge) Touches(id string) bool { return e.From == id || e.To == id }

// Other returns the endpoint opposite to id. Callers must ensure Touches(id).
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted requires positive integer weights on every edge.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMaxVertices overrides the MaxVertices bound. Values below MinVertices
// are ignored.
func WithMaxVertices(n int) GraphOption {
	return func(g *Graph) {
		if n >= MinVertices {
			g.maxVertices = n
		}
	}
}

// Graph is an undirected, optionally weighted graph that remembers the order
// in which vertices and edges were added. That order drives neighbor
// examination in every generator, so replays are identical across runs.
//
// mu guards all fields; the Graph is safe for concurrent readers while an
// authoring goroutine adds vertices and edges.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	weighted    bool
	maxVertices int

	// Storage
	order    []string            // vertex IDs in insertion order
	vertices map[string]struct{} // vertex ID set
	edges    []Edge              // edges in insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is unweighted and bounded by MaxVertices.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		maxVertices: MaxVertices,
		vertices:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
