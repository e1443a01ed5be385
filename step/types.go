// Package step defines the replay log produced by the step generators.
//
// A Log is an ordered, immutable sequence of Records. Each Record captures
// one decision (discover, skip, accept, reject, ...) together with a value
// snapshot of the algorithm's working structure at that moment: the BFS
// queue, the DFS stack, Prim's candidate queue, or Kruskal's union-find
// partition. Records never alias each other or the live structures they
// were taken from, so any record can be rendered on its own in any order.
package step

import (
	"fmt"
	"strings"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
)

// Kind classifies a Record so renderers need not parse descriptions.
type Kind uint8

const (
	KindInit      Kind = iota // nothing visited yet
	KindStart                 // start vertex placed in the structure / tree
	KindProcess               // vertex dequeued or popped and processed
	KindDiscover              // neighbor discovered and enqueued or pushed
	KindSkip                  // neighbor or popped vertex already handled
	KindConsider              // Kruskal: edge under consideration
	KindAccept                // MST edge accepted
	KindReject                // Kruskal: edge would close a cycle
	KindCandidate             // Prim: candidate edge queued
	KindStale                 // Prim: popped candidate leads back into the tree
	KindSorted                // Prim: candidate queue re-sorted
	KindComplete              // terminal record
)

var kindNames = [...]string{
	KindInit:      "init",
	KindStart:     "start",
	KindProcess:   "process",
	KindDiscover:  "discover",
	KindSkip:      "skip",
	KindConsider:  "consider",
	KindAccept:    "accept",
	KindReject:    "reject",
	KindCandidate: "candidate",
	KindStale:     "stale",
	KindSorted:    "sorted",
	KindComplete:  "complete",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Structure names the working structure a Log snapshots.
type Structure uint8

const (
	StructureQueue         Structure = iota // BFS, front first
	StructureStack                          // DFS, bottom first, top last
	StructurePriorityQueue                  // Prim, head first
	StructurePartition                      // Kruskal union-find
)

// String returns a human-readable structure name.
func (s Structure) String() string {
	switch s {
	case StructureQueue:
		return "queue"
	case StructureStack:
		return "stack"
	case StructurePriorityQueue:
		return "priority queue"
	case StructurePartition:
		return "union-find"
	default:
		return fmt.Sprintf("structure(%d)", uint8(s))
	}
}

// MarshalText encodes the structure by name.
func (s Structure) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Candidate is one entry of Prim's candidate queue: an edge leading from a
// tree vertex to a vertex that was outside the tree when it was queued.
type Candidate struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Weight int64     `json:"weight"`
	Edge   core.Edge `json:"edge"`
}

// Component is one union-find set: its vertices and the edges that merged it.
type Component struct {
	Nodes []string    `json:"nodes"`
	Edges []core.Edge `json:"edges"`
}

// Record is one entry of the replay log.
//
// Only the fields relevant to the producing algorithm are populated:
// Items for BFS/DFS, Candidates and Tree for Prim, Partition, SortedEdges
// and EdgeIndex for Kruskal. Accepted and Cost are set by both MST
// generators.
type Record struct {
	Kind        Kind   `json:"kind"`
	Description string `json:"description"`

	// Node is the focus vertex, empty when there is none.
	Node string `json:"node,omitempty"`
	// Edge is the focus edge, nil when there is none.
	Edge *core.Edge `json:"edge,omitempty"`

	Items       []string    `json:"items,omitempty"`
	Candidates  []Candidate `json:"candidates,omitempty"`
	Partition   []Component `json:"partition,omitempty"`
	SortedEdges []core.Edge `json:"sorted_edges,omitempty"`
	EdgeIndex   int         `json:"edge_index"`
	Tree        []string    `json:"tree,omitempty"`
	Accepted    []core.Edge `json:"accepted,omitempty"`
	Cost        int64       `json:"cost"`
}

// HasNode reports whether the record has a focus vertex.
func (r Record) HasNode() bool { return r.Node != "" }

// Clone returns a deep copy sharing no memory with r.
func (r Record) Clone() Record {
	c := r
	if r.Edge != nil {
		e := *r.Edge
		c.Edge = &e
	}
	c.Items = cloneSlice(r.Items)
	c.Candidates = cloneSlice(r.Candidates)
	c.SortedEdges = cloneSlice(r.SortedEdges)
	c.Tree = cloneSlice(r.Tree)
	c.Accepted = cloneSlice(r.Accepted)
	if r.Partition != nil {
		c.Partition = make([]Component, len(r.Partition))
		for i, comp := range r.Partition {
			c.Partition[i] = Component{Nodes: cloneSlice(comp.Nodes), Edges: cloneSlice(comp.Edges)}
		}
	}

	return c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)

	return out
}

// Summary is the outcome of one run, shown after the last record.
type Summary struct {
	Algorithm string `json:"algorithm"`
	Start     string `json:"start,omitempty"`

	// Order is the visit order for traversals and the tree insertion order for Prim.
	Order []string `json:"order,omitempty"`
	// Edges are the accepted spanning tree or forest edges.
	Edges []core.Edge `json:"edges,omitempty"`
	Cost  int64       `json:"cost"`

	// Reached counts vertices covered by the run; Total is the graph size.
	Reached int `json:"reached"`
	Total   int `json:"total"`
	// Components is the number of union-find sets left after Kruskal.
	Components int `json:"components,omitempty"`
}

// Spanning reports whether the run covered every vertex of the graph in a
// single tree.
func (s Summary) Spanning() bool { return s.Reached == s.Total && s.Components <= 1 }

// String renders the one-line result shown under the animation, e.g.
// "Final order: 1 ➤ 2 ➤ 3" or "MST Total Cost: 3 | Edges in MST: 2".
func (s Summary) String() string {
	switch s.Algorithm {
	case "kruskal":
		return fmt.Sprintf("MST Total Cost: %d | Edges in MST: %d", s.Cost, len(s.Edges))
	case "prim":
		return fmt.Sprintf("MST Total Cost: %d | Nodes in MST: %s", s.Cost, strings.Join(s.Order, " → "))
	default:
		return "Final order: " + strings.Join(s.Order, " ➤ ")
	}
}

func (s Summary) clone() Summary {
	c := s
	c.Order = cloneSlice(s.Order)
	c.Edges = cloneSlice(s.Edges)

	return c
}
