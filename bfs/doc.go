// Package bfs generates the replay log of a breadth-first traversal over a
// core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Every edge is bidirectional: (A,B) lets the walk move A→B or B→A.
//   - Instead of a result map, BFS returns a *step.Log: one step.Record per
//     decision, each holding a value snapshot of the FIFO queue.
//
// Record emission, in order
//
//  1. KindInit: every node unvisited, empty queue.
//  2. KindStart: start vertex enqueued.
//  3. For each dequeue, KindProcess with the post-dequeue queue, taken
//     before any neighbor is examined.
//  4. For each incident edge of that vertex, in edge-insertion order, either
//     KindDiscover (neighbor marked visited and enqueued, snapshot after the
//     enqueue) or KindSkip (already visited, nothing changes).
//  5. KindComplete with an empty queue. When the start vertex's component
//     does not span the graph, the description names the unreached nodes.
//
// Determinism
//
//	Neighbors are examined in the graph's edge-insertion order and the visited
//	set is updated at enqueue time, so a vertex is enqueued at most once and
//	two runs on the same graph produce identical logs.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·E) for IncidentEdges lookups plus O(R·V) for snapshots,
//     R = number of records. Graphs here have at most 20 vertices.
//   - Memory: O(R·V) for the snapshots.
//
// Usage
//
//	log, err := bfs.BFS(g, "1",
//	    bfs.WithContext(ctx),
//	    bfs.WithOnEnqueue(func(id string, depth int) { /* ... */ }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, or ctx.Err()
//	}
//	fmt.Println(log.Summary()) // Final order: 1 ➤ 2 ➤ 3 ➤ 4
package bfs
