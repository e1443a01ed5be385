// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - All access under g.mu.
package core

import "fmt"

// AddVertex inserts a new vertex.
//
// Unlike an idempotent set insert, adding an existing ID is an error: an
// authored graph with duplicate node labels is invalid.
//
// Errors: ErrEmptyVertexID, ErrDuplicateVertex, ErrNodeCount (bound exceeded).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	if len(g.order) >= g.maxVertices {
		return fmt.Errorf("%w: at most %d vertices", ErrNodeCount, g.maxVertices)
	}
	g.vertices[id] = struct{}{}
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns a copy of all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the number of edges incident to id.
// Complexity: O(E).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	n := 0
	for _, e := range g.edges {
		if e.Touches(id) {
			n++
		}
	}

	return n, nil
}
