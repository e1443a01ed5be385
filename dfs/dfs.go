package dfs

import (
	"context"
	"fmt"
	"strings"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// Algorithm is the name recorded on DFS logs.
const Algorithm = "dfs"

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	ctx   context.Context
	stack []string       // bottom first, top last
	state map[string]int // White, Gray or Black
	order []string
	rec   *step.Recorder
}

// DFS performs an iterative depth-first search on g from startID and
// returns the full replay log.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, the context error when
// cancelled, or an OnVisit error; no partial log is ever returned.
func DFS(g *core.Graph, startID string, opts ...Option) (*step.Log, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		ctx:   dopts.Ctx,
		stack: make([]string, 0, n),
		state: make(map[string]int, n),
		order: make([]string, 0, n),
		rec:   step.NewRecorder(Algorithm, step.StructureStack),
	}

	w.rec.Emit(step.Record{Kind: step.KindInit, Description: "Mark all nodes as UNVISITED."})
	w.push(startID)
	w.rec.Emit(step.Record{
		Kind:        step.KindStart,
		Description: fmt.Sprintf("Start DFS at node %s. Push it onto the stack.", startID),
		Node:        startID,
		Items:       w.snapshot(),
	})

	if err := w.loop(); err != nil {
		return nil, err
	}

	w.rec.Emit(step.Record{Kind: step.KindComplete, Description: w.completion(startID, n)})
	log, err := w.rec.Finish(step.Summary{
		Start:   startID,
		Order:   w.order,
		Reached: len(w.order),
		Total:   n,
	})
	if err != nil {
		panic(err)
	}
	ctxlog.FromContext(w.ctx).Debug("dfs log generated",
		"start", startID, "records", log.Len(), "reached", len(w.order), "total", n)

	return log, nil
}

func (w *dfsWalker) push(id string) {
	w.state[id] = Gray
	w.stack = append(w.stack, id)
}

func (w *dfsWalker) pop() string {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	return top
}

// loop pops until the stack is empty. The visited check happens at pop
// time; the push guard keeps a vertex from being stacked twice.
func (w *dfsWalker) loop() error {
	for len(w.stack) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.pop()
		if w.state[u] == Black {
			w.rec.Emit(step.Record{
				Kind:        step.KindSkip,
				Description: fmt.Sprintf("Node %s is already processed. Skipping.", u),
				Node:        u,
				Items:       w.snapshot(),
			})
			continue
		}

		w.state[u] = Black
		w.order = append(w.order, u)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(u); err != nil {
				return fmt.Errorf("dfs: OnVisit error at %q: %w", u, err)
			}
		}
		w.rec.Emit(step.Record{
			Kind:        step.KindProcess,
			Description: fmt.Sprintf("Pop node %s from the stack. Node %s is PROCESSED.", u, u),
			Node:        u,
			Items:       w.snapshot(),
		})
		w.exploreReverse(u)
	}

	return nil
}

// exploreReverse examines incident edges last-inserted first, so the
// first-listed neighbor ends up on top of the stack.
func (w *dfsWalker) exploreReverse(u string) {
	edges, err := w.graph.IncidentEdges(u)
	if err != nil {
		panic(err) // u came from the graph
	}
	for i := len(edges) - 1; i >= 0; i-- {
		edge := edges[i]
		v := edge.Other(u)
		if w.state[v] == White {
			w.push(v)
			w.rec.Emit(step.Record{
				Kind:        step.KindDiscover,
				Description: fmt.Sprintf("Discover node %s from %s. Push %s onto the stack.", v, u, v),
				Node:        v,
				Edge:        &edge,
				Items:       w.snapshot(),
			})
			continue
		}
		w.rec.Emit(step.Record{
			Kind:        step.KindSkip,
			Description: fmt.Sprintf("Neighbor %s is already visited or on the stack. Skipping.", v),
			Node:        v,
			Edge:        &edge,
			Items:       w.snapshot(),
		})
	}
}

func (w *dfsWalker) snapshot() []string {
	out := make([]string, len(w.stack))
	copy(out, w.stack)

	return out
}

func (w *dfsWalker) completion(start string, total int) string {
	if len(w.order) == total {
		return "DFS traversal complete. Every node is PROCESSED."
	}
	var unreached []string
	for _, id := range w.graph.Vertices() {
		if w.state[id] == White {
			unreached = append(unreached, id)
		}
	}

	return fmt.Sprintf("DFS traversal complete. Processed %d of %d nodes; unreachable from %s: %s.",
		len(w.order), total, start, strings.Join(unreached, ", "))
}
