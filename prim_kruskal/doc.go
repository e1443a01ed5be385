// Package prim_kruskal generates replay logs for the two classic Minimum
// Spanning Tree algorithms on a weighted *core.Graph: Kruskal's and Prim's.
//
// What & Why
//
//   - An MST of a connected, weighted graph is a subset of edges that
//     connects every vertex with minimum total weight. On a disconnected
//     graph Kruskal yields a minimum spanning forest and Prim a tree over
//     the root's component; neither treats this as an error.
//   - Rather than returning only the edge set, each generator records every
//     decision as a step.Record so a presenter can replay the run in both
//     directions.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...) (*step.Log, error)
//
//   - Strategy: stable-sort all edges by weight, then consider each in turn.
//     A unionfind.Set decides whether the endpoints are already connected.
//     Every edge is considered, even after |V|−1 acceptances.
//
//   - Records carry the sorted list, the index under consideration (-1 before
//     the first edge, len after the last), the accepted edges so far, and the
//     partition with the edges that built each component.
//
//   - Prim(g, root, opts...) (*step.Log, error)
//
//   - Strategy: grow a tree from root. Candidate edges to outside vertices
//     sit in a slice kept sorted by weight (ties in insertion order), which
//     is exactly what each record's Candidates snapshot shows.
//
//   - Deletion is lazy: a candidate whose target joined the tree through a
//     cheaper edge stays queued until popped, then yields KindStale.
//
//   - Compute(g, opts...) dispatches on WithMethod, defaulting to Kruskal.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil, unweighted, or has no edges (the last
//     case also matches core.ErrNoEdges).
//   - ErrEmptyRoot (Prim only): root == "".
//   - core.ErrVertexNotFound (Prim only): root does not exist.
//   - ErrUnknownMethod (Compute only).
//   - ctx.Err() when the context from WithContext is cancelled.
//
// Complexity
//
//   - Kruskal: O(E log E) sort plus O(E·(V+E)) for partition snapshots.
//   - Prim:    O(E² log E) worst case for re-sorting plus snapshots.
//     Graphs are bounded to core.MaxVertices vertices, so snapshots dominate.
package prim_kruskal
