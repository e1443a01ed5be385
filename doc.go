// Package algoviz records graph algorithms one decision at a time so they
// can be replayed, stepped and narrated for teaching.
//
// 🚀 What is algoviz?
//
//	A small, thread-safe toolkit that brings together:
//		• Authoring: numbered or labelled nodes, forgiving edge input, validation
//		• Step generators: BFS, DFS, Kruskal, Prim
//		• Replay logs: immutable records with structure snapshots
//		• Playback: cursor, manual stepping, timer and narration autoplay
//		• Presenters: terminal tables and a JSON/HTTP API
//
// ✨ How it fits together
//
//   - A generator reads a graph and returns a *step.Log; it never mutates
//     the graph and never returns a partial log.
//   - Every record carries a value copy of the working structure: the BFS
//     queue, the DFS stack, Prim's candidate queue or Kruskal's partition.
//   - A playback.Controller owns the cursor; observers render whatever the
//     cursor points at.
//   - A session.Session ties one graph, one log and one controller together.
//
// Packages:
//
//	core/         Graph, Edge, authoring input and validation
//	step/         Record, Log, Recorder, Summary
//	bfs/          breadth-first step generator
//	dfs/          depth-first step generator (explicit stack)
//	unionfind/    disjoint sets that remember their merging edges
//	prim_kruskal/ minimum spanning tree step generators
//	playback/     cursor and autoplay controller
//	session/      build pipeline and per-learner state
//	builder/      seeded practice graphs (path, cycle, grid, random, ...)
//	internal/     config, logging, graph files, narration, render, metrics, HTTP
//	cmd/algoviz/  CLI: run, steps, serve, generate, version
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3   4
//
//	BFS from 1 records 13 steps and ends with "Final order: 1 ➤ 2 ➤ 3 ➤ 4".
package algoviz
