// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: policy getters, Stats snapshot, Clone.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Weighted    bool
	MaxVertices int
	VertexCount int
	EdgeCount   int
	TotalWeight int64
}

// Weighted reports whether edges must carry positive weights.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// MaxVertices reports the vertex bound configured at construction.
// Complexity: O(1).
func (g *Graph) MaxVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxVertices
}

// Stats produces a deterministic snapshot of flags and counts.
// Complexity: O(E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s := GraphStats{
		Weighted:    g.weighted,
		MaxVertices: g.maxVertices,
		VertexCount: len(g.order),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		s.TotalWeight += e.Weight
	}

	return s
}

// Clone returns a deep copy with the same flags, vertices and edges.
// Edge indices are preserved.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph{
		weighted:    g.weighted,
		maxVertices: g.maxVertices,
		order:       make([]string, len(g.order)),
		vertices:    make(map[string]struct{}, len(g.vertices)),
		edges:       make([]Edge, len(g.edges)),
	}
	copy(c.order, g.order)
	copy(c.edges, g.edges)
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}

	return c
}
