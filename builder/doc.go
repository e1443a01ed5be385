// Package builder generates small preset graphs as authoring input.
//
// A preset is a composition of deterministic topology constructors (path,
// cycle, star, wheel, complete, grid, random sparse) applied in order to
// one vertex set, so "cycle:4+path:3" yields a seven-vertex forest of a
// square and a tail. The result is a session.Input that can be built
// directly or written out as an HCL graph file.
//
// Determinism: the same algorithm, options, seed and constructor order
// always produce the same vertices, edges and weights.
//
// Vertex IDs are "1".."n" by default, matching core.GenerateNodes; pass
// WithIDScheme(SymbolIDFn) for letters. Weights are drawn only for
// weighted algorithms (Kruskal, Prim); traversal presets carry none.
package builder
