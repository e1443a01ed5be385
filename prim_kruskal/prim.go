package prim_kruskal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// candidateQueue is Prim's priority queue kept as a slice sorted by weight.
// Unlike a binary heap its backing order is the order a learner sees, and a
// stable sort leaves equal weights in insertion order.
type candidateQueue []step.Candidate

func (q *candidateQueue) push(c step.Candidate) { *q = append(*q, c) }

func (q *candidateQueue) pop() step.Candidate {
	head := (*q)[0]
	*q = (*q)[1:]

	return head
}

func (q candidateQueue) sortByWeight() {
	sort.SliceStable(q, func(i, j int) bool { return q[i].Weight < q[j].Weight })
}

// primWalker holds the mutable state of one Prim run.
type primWalker struct {
	graph  *core.Graph
	rec    *step.Recorder
	pq     candidateQueue
	inTree map[string]bool
	tree   []string
	mst    []core.Edge
	total  int64
}

// Prim generates the replay log of Prim's algorithm grown from root.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil, unweighted, or has no edges.
//   - ErrEmptyRoot          : root == "".
//   - core.ErrVertexNotFound: root does not exist in the graph.
//
// Steps:
//  1. Add root to the tree (KindStart).
//  2. Queue a candidate for every incident edge whose far end is outside
//     the tree, one KindCandidate record each, then sort the queue.
//  3. While the queue is non-empty and the tree does not span the graph:
//     pop the head. If its far end is already in the tree, emit KindStale
//     and continue. Otherwise accept it (KindAccept), queue the new
//     vertex's outward edges (KindCandidate each), re-sort, and emit
//     KindSorted when the queue is non-empty.
//  4. Emit KindComplete.
//
// Stale candidates are only discarded when popped, so a snapshot may list
// edges leading to vertices that joined the tree by another edge.
// A disconnected graph yields a tree over root's component only.
func Prim(graph *core.Graph, root string, opts ...Option) (*step.Log, error) {
	if err := validate(graph); err != nil {
		return nil, err
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, fmt.Errorf("%w: root %q", core.ErrVertexNotFound, root)
	}
	o := applyOptions(opts)

	n := graph.VertexCount()
	w := &primWalker{
		graph:  graph,
		rec:    step.NewRecorder(MethodPrim, step.StructurePriorityQueue),
		inTree: make(map[string]bool, n),
		tree:   make([]string, 0, n),
	}

	w.emit(step.Record{Kind: step.KindInit, Description: "Mark all nodes as NOT IN MST."})
	w.addToTree(root)
	w.emit(step.Record{
		Kind:        step.KindStart,
		Description: fmt.Sprintf("Start Prim's algorithm at node %s. Add it to the MST.", root),
		Node:        root,
	})
	w.queueOutward(root)
	w.pq.sortByWeight()

	for len(w.pq) > 0 && len(w.tree) < n {
		if err := cancelled(o.Ctx); err != nil {
			return nil, err
		}
		c := w.pq.pop()
		edge := c.Edge
		if w.inTree[c.To] {
			w.emit(step.Record{
				Kind:        step.KindStale,
				Description: fmt.Sprintf("Node %s is already in the MST. Skip this edge.", c.To),
				Node:        c.To,
				Edge:        &edge,
			})
			continue
		}

		w.addToTree(c.To)
		w.mst = append(w.mst, c.Edge)
		w.total += c.Weight
		w.emit(step.Record{
			Kind: step.KindAccept,
			Description: fmt.Sprintf("Select edge (%s → %s) with weight %d. Add node %s to the MST. Total cost: %d",
				c.From, c.To, c.Weight, c.To, w.total),
			Node: c.To,
			Edge: &edge,
		})

		w.queueOutward(c.To)
		w.pq.sortByWeight()
		if len(w.pq) > 0 {
			w.emit(step.Record{Kind: step.KindSorted, Description: "Priority queue sorted by weight."})
		}
	}

	w.pq = nil
	w.emit(step.Record{Kind: step.KindComplete, Description: w.completion(root, n)})

	log, err := w.rec.Finish(step.Summary{
		Start:   root,
		Order:   w.tree,
		Edges:   w.mst,
		Cost:    w.total,
		Reached: len(w.tree),
		Total:   n,
	})
	if err != nil {
		panic(err)
	}
	ctxlog.FromContext(o.Ctx).Debug("prim log generated",
		"root", root, "records", log.Len(), "tree", len(w.tree), "total", n, "cost", w.total)

	return log, nil
}

func (w *primWalker) addToTree(id string) {
	w.inTree[id] = true
	w.tree = append(w.tree, id)
}

// queueOutward pushes a candidate for every edge from u to a vertex outside
// the tree, in edge-insertion order.
func (w *primWalker) queueOutward(u string) {
	edges, err := w.graph.IncidentEdges(u)
	if err != nil {
		panic(err) // u is in the tree, so it is a graph vertex
	}
	for _, e := range edges {
		v := e.Other(u)
		if w.inTree[v] {
			continue
		}
		w.pq.push(step.Candidate{From: u, To: v, Weight: e.Weight, Edge: e})
		edge := e
		w.emit(step.Record{
			Kind:        step.KindCandidate,
			Description: fmt.Sprintf("Edge (%s → %s) added to the priority queue.", u, v),
			Node:        v,
			Edge:        &edge,
		})
	}
}

// emit fills the tree, MST and queue snapshots and records r.
func (w *primWalker) emit(r step.Record) {
	r.Candidates = w.pq
	if r.Candidates == nil {
		r.Candidates = []step.Candidate{}
	}
	r.Tree = w.tree
	r.Accepted = w.mst
	r.Cost = w.total
	w.rec.Emit(r)
}

func (w *primWalker) completion(root string, total int) string {
	if len(w.tree) == total {
		return "Prim's algorithm complete. Every node is in the MST."
	}
	var outside []string
	for _, id := range w.graph.Vertices() {
		if !w.inTree[id] {
			outside = append(outside, id)
		}
	}

	return fmt.Sprintf("Prim's algorithm complete. The tree spans %d of %d nodes; not reachable from %s: %s.",
		len(w.tree), total, root, strings.Join(outside, ", "))
}
