package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/ctxlog"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/unionfind"
)

// Kruskal generates the replay log of Kruskal's algorithm over a weighted
// graph. Disconnected graphs are not an error: the result is a minimum
// spanning forest and the terminal record says so.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), at least one edge.
//  2. Sort a copy of the edges by ascending weight (sort.SliceStable, so
//     equal weights keep insertion order).
//  3. Emit the initial record: sorted list, index -1, all-singleton partition.
//  4. For every sorted edge emit KindConsider, then either union the two
//     components (KindAccept, cost updated) or emit KindReject.
//     Every edge is examined; there is no early stop at |V|-1 edges.
//  5. Emit KindComplete with index len(sorted).
//
// Each record carries the full sorted list, the current index, the edges
// accepted so far, and a value snapshot of the union-find partition.
//
// Complexity: O(E log E + E·V) including snapshots. Memory: O(R·(V+E)).
func Kruskal(graph *core.Graph, opts ...Option) (*step.Log, error) {
	if err := validate(graph); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	sorted := graph.Edges()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	uf := unionfind.New(graph.Vertices())
	rec := step.NewRecorder(MethodKruskal, step.StructurePartition)
	var (
		mst   []core.Edge
		total int64
	)
	emit := func(kind step.Kind, desc string, idx int, e *core.Edge) {
		rec.Emit(step.Record{
			Kind:        kind,
			Description: desc,
			Edge:        e,
			SortedEdges: sorted,
			EdgeIndex:   idx,
			Accepted:    mst,
			Partition:   uf.Snapshot(),
			Cost:        total,
		})
	}

	emit(step.KindInit, "Start Kruskal's algorithm. No edge has been considered yet. Sort all edges by ascending weight.", -1, nil)

	for i, e := range sorted {
		if err := cancelled(o.Ctx); err != nil {
			return nil, err
		}
		edge := e
		emit(step.KindConsider,
			fmt.Sprintf("Consider edge (%s-%s) with weight %d. Check whether it forms a cycle.", e.From, e.To, e.Weight),
			i, &edge)

		merged, err := uf.Union(e.From, e.To, e)
		if err != nil {
			panic(err) // endpoints are graph vertices
		}
		if merged {
			mst = append(mst, e)
			total += e.Weight
			emit(step.KindAccept,
				fmt.Sprintf("Edge (%s-%s) does not form a cycle. ACCEPT it into the MST. Total cost now: %d", e.From, e.To, total),
				i, &edge)
			continue
		}
		emit(step.KindReject,
			fmt.Sprintf("Edge (%s-%s) forms a cycle. REJECT it.", e.From, e.To),
			i, &edge)
	}

	desc := fmt.Sprintf("Kruskal's algorithm complete. MST constructed with %d edges. Final total cost: %d", len(mst), total)
	if uf.Count() > 1 {
		desc = fmt.Sprintf("Kruskal's algorithm complete. The graph is disconnected: spanning forest of %d components with %d edges. Final total cost: %d",
			uf.Count(), len(mst), total)
	}
	emit(step.KindComplete, desc, len(sorted), nil)

	log, err := rec.Finish(step.Summary{
		Edges:      mst,
		Cost:       total,
		Reached:    uf.Len(),
		Total:      uf.Len(),
		Components: uf.Count(),
	})
	if err != nil {
		panic(err)
	}
	ctxlog.FromContext(o.Ctx).Debug("kruskal log generated",
		"records", log.Len(), "accepted", len(mst), "cost", total, "components", uf.Count())

	return log, nil
}
