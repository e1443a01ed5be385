// Package unionfind implements a disjoint-set forest over vertex IDs with
// path compression, union by rank, and a per-root list of the edges that
// built each component.
//
// The edge lists exist so a partition snapshot can show which edges merged
// each component; they play no part in deciding connectivity.
package unionfind

import (
	"errors"
	"fmt"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// ErrUnknownElement is returned when an ID was not part of New's input.
var ErrUnknownElement = errors.New("unionfind: unknown element")

// Set is a disjoint-set forest. The zero value is not usable; call New.
// Not safe for concurrent use.
type Set struct {
	order  []string // insertion order, drives snapshot grouping
	parent map[string]string
	rank   map[string]int
	edges  map[string][]core.Edge // keyed by root
	count  int
}

// New creates one singleton set per ID. Duplicate IDs are ignored.
// Complexity: O(n).
func New(ids []string) *Set {
	s := &Set{
		order:  make([]string, 0, len(ids)),
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
		edges:  make(map[string][]core.Edge, len(ids)),
	}
	for _, id := range ids {
		if _, ok := s.parent[id]; ok {
			continue
		}
		s.order = append(s.order, id)
		s.parent[id] = id
	}
	s.count = len(s.order)

	return s
}

// Find returns the representative of x, compressing the path on the way.
// The walk is iterative: two passes, one to locate the root and one to
// point every node on the path directly at it.
// Complexity: amortized O(α(n)).
func (s *Set) Find(x string) (string, error) {
	if _, ok := s.parent[x]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownElement, x)
	}
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for x != root {
		next := s.parent[x]
		s.parent[x] = root
		x = next
	}

	return root, nil
}

// Connected reports whether x and y are in the same set.
func (s *Set) Connected(x, y string) (bool, error) {
	rx, err := s.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := s.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Union merges the sets of x and y and records e as the merging edge.
// It returns false, with no state change, when x and y are already
// connected.
//
// The lower-rank root is attached under the higher-rank one; on a tie
// x's root wins and its rank grows by one. The surviving root's edge list
// becomes x's side, then y's side, then e.
func (s *Set) Union(x, y string, e core.Edge) (bool, error) {
	rx, err := s.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := s.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	merged := make([]core.Edge, 0, len(s.edges[rx])+len(s.edges[ry])+1)
	merged = append(merged, s.edges[rx]...)
	merged = append(merged, s.edges[ry]...)
	merged = append(merged, e)

	winner, loser := rx, ry
	switch {
	case s.rank[rx] < s.rank[ry]:
		winner, loser = ry, rx
	case s.rank[rx] == s.rank[ry]:
		s.rank[rx]++
	}
	s.parent[loser] = winner
	s.edges[winner] = merged
	delete(s.edges, loser)
	s.count--

	return true, nil
}

// Count returns the number of disjoint sets.
func (s *Set) Count() int { return s.count }

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.order) }

// Snapshot returns a value copy of the partition. Components appear in
// order of their first member's insertion, and members keep insertion
// order, so repeated snapshots of the same state are identical.
func (s *Set) Snapshot() []step.Component {
	index := make(map[string]int, s.count)
	out := make([]step.Component, 0, s.count)
	for _, id := range s.order {
		root, _ := s.Find(id) // id is known
		i, ok := index[root]
		if !ok {
			i = len(out)
			index[root] = i
			edges := make([]core.Edge, len(s.edges[root]))
			copy(edges, s.edges[root])
			out = append(out, step.Component{Edges: edges})
		}
		out[i].Nodes = append(out[i].Nodes, id)
	}

	return out
}
