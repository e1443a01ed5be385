package bfs

import (
	"context"
	"fmt"
	"strings"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// Algorithm is the name recorded on BFS logs.
const Algorithm = "bfs"

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	order   []string
	rec     *step.Recorder
}

// BFS runs breadth-first search on g from startID and returns the full
// replay log. The graph is only read.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, or the context error when
// cancelled; no partial log is ever returned.
func BFS(g *core.Graph, startID string, opts ...Option) (*step.Log, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		order:   make([]string, 0, n),
		rec:     step.NewRecorder(Algorithm, step.StructureQueue),
	}

	w.rec.Emit(step.Record{Kind: step.KindInit, Description: "Mark all nodes as UNVISITED."})
	w.enqueue(startID, 0)
	w.rec.Emit(step.Record{
		Kind:        step.KindStart,
		Description: fmt.Sprintf("Start BFS at node %s. Enqueue it and mark it VISITED.", startID),
		Node:        startID,
		Items:       w.snapshot(),
	})

	if err := w.loop(); err != nil {
		return nil, err
	}

	w.rec.Emit(step.Record{Kind: step.KindComplete, Description: w.completion(n)})
	log, err := w.rec.Finish(step.Summary{
		Start:   startID,
		Order:   w.order,
		Reached: len(w.order),
		Total:   n,
	})
	if err != nil {
		panic(err) // init and complete are always emitted
	}
	ctxlog.FromContext(w.ctx).Debug("bfs log generated",
		"start", startID, "records", log.Len(), "reached", len(w.order), "total", n)

	return log, nil
}

// enqueue marks id visited at depth d and appends it to the queue.
// Visit order is fixed at enqueue time, so a vertex enters the queue once.
func (w *walker) enqueue(id string, d int) {
	w.visited[id] = true
	w.order = append(w.order, id)
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		w.rec.Emit(step.Record{
			Kind:        step.KindProcess,
			Description: fmt.Sprintf("Dequeue node %s and explore its neighbors. Node %s is PROCESSED.", item.id, item.id),
			Node:        item.id,
			Items:       w.snapshot(),
		})
		w.exploreNeighbors(item)
	}

	return nil
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// exploreNeighbors emits one record per incident edge in insertion order.
func (w *walker) exploreNeighbors(item queueItem) {
	edges, err := w.graph.IncidentEdges(item.id)
	if err != nil {
		panic(err) // item came from the graph
	}
	for _, e := range edges {
		nbr := e.Other(item.id)
		edge := e
		if w.visited[nbr] {
			w.rec.Emit(step.Record{
				Kind:        step.KindSkip,
				Description: fmt.Sprintf("Neighbor %s of %s is already visited. Skipping.", nbr, item.id),
				Node:        nbr,
				Edge:        &edge,
				Items:       w.snapshot(),
			})
			continue
		}
		w.enqueue(nbr, item.depth+1)
		w.rec.Emit(step.Record{
			Kind:        step.KindDiscover,
			Description: fmt.Sprintf("Discovered new neighbor %s from %s. Mark it VISITED and ENQUEUE it.", nbr, item.id),
			Node:        nbr,
			Edge:        &edge,
			Items:       w.snapshot(),
		})
	}
}

func (w *walker) snapshot() []string {
	out := make([]string, len(w.queue))
	for i, it := range w.queue {
		out[i] = it.id
	}

	return out
}

func (w *walker) completion(total int) string {
	if len(w.order) == total {
		return "BFS traversal complete. Every node was visited."
	}
	var unreached []string
	for _, id := range w.graph.Vertices() {
		if !w.visited[id] {
			unreached = append(unreached, id)
		}
	}

	return fmt.Sprintf("BFS traversal complete. Visited %d of %d nodes; unreachable from %s: %s.",
		len(w.order), total, w.order[0], strings.Join(unreached, ", "))
}
