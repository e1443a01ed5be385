package render

import (
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// Highlight is what a presenter should emphasise at one cursor position.
// Nodes and Edges keep first-seen order; Edges hold core.Edge indices.
type Highlight struct {
	Nodes []string `json:"nodes"`
	Edges []int    `json:"edges"`
	// Focus is the current record's edge index, or -1.
	Focus int `json:"focus"`
}

// Highlights derives the highlight set at cursor.
//
// Traversal logs accumulate: every node started, processed or discovered
// and every discovery edge in records 0..cursor. MST logs show the state of
// the current record only: Prim's tree nodes, or for Kruskal the endpoints
// of accepted edges, plus the accepted edges themselves.
func Highlights(log *step.Log, cursor int) Highlight {
	h := Highlight{Nodes: []string{}, Edges: []int{}, Focus: -1}
	rec, ok := log.At(cursor)
	if !ok {
		return h
	}
	if rec.Edge != nil {
		h.Focus = rec.Edge.Index
	}

	seenNode := make(map[string]bool)
	addNode := func(id string) {
		if id != "" && !seenNode[id] {
			seenNode[id] = true
			h.Nodes = append(h.Nodes, id)
		}
	}
	seenEdge := make(map[int]bool)
	addEdge := func(i int) {
		if !seenEdge[i] {
			seenEdge[i] = true
			h.Edges = append(h.Edges, i)
		}
	}

	switch log.Structure() {
	case step.StructureQueue, step.StructureStack:
		for i := 0; i <= cursor; i++ {
			r, _ := log.At(i)
			switch r.Kind {
			case step.KindStart, step.KindProcess:
				addNode(r.Node)
			case step.KindDiscover:
				addNode(r.Node)
				if r.Edge != nil {
					addEdge(r.Edge.Index)
				}
			}
		}
	default:
		for _, id := range rec.Tree {
			addNode(id)
		}
		for _, e := range rec.Accepted {
			addNode(e.From)
			addNode(e.To)
			addEdge(e.Index)
		}
	}

	return h
}
