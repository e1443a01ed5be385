// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount/IncidentEdges.
// Determinism:
//   - Edges() and IncidentEdges() return edges in insertion order.
//   - Edge.Index is the insertion position and never changes.
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.

package core

import "fmt"

// AddEdge appends an undirected edge between two existing vertices.
//
// Steps:
//  1. Validate IDs (non-empty, distinct).
//  2. Validate weight against the graph policy:
//     weighted graphs need weight > 0, unweighted graphs need weight == 0.
//  3. Under lock, check that both endpoints exist.
//  4. Assign Index = current edge count and append.
//
// Parallel edges are allowed; each one is examined separately by generators.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (Edge, error) {
	if from == "" || to == "" {
		return Edge{}, ErrEmptyVertexID
	}
	if from == to {
		return Edge{}, fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.weighted && weight <= 0 {
		return Edge{}, fmt.Errorf("%w: weight %d must be positive", ErrBadWeight, weight)
	}
	if !g.weighted && weight != 0 {
		return Edge{}, fmt.Errorf("%w: weight %d on unweighted graph", ErrBadWeight, weight)
	}
	if _, ok := g.vertices[from]; !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	e := Edge{Index: len(g.edges), From: from, To: to, Weight: weight}
	g.edges = append(g.edges, e)

	return e, nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// IncidentEdges returns every edge touching id, in insertion order.
// Both endpoints are symmetric: an edge (A,B) is incident to A and to B.
//
// Errors: ErrVertexNotFound.
// Complexity: O(E).
func (g *Graph) IncidentEdges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, 0, 4)
	for _, e := range g.edges {
		if e.Touches(id) {
			out = append(out, e)
		}
	}

	return out, nil
}
