// Package core provides the small, thread-safe, undirected Graph that the
// step generators run over.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are unique string labels kept in insertion order.
//   - Edges are undirected; an edge (A,B) is incident to both A and B.
//   - Edge.Index is the insertion position. Every query that lists edges
//     returns them in that order, which is what makes generated logs
//     reproducible.
//   - Weighted graphs (WithWeighted) require positive integer weights;
//     unweighted graphs require weight 0.
//   - Self-loops are rejected; parallel edges are allowed.
//   - The vertex count is bounded by MaxVertices (WithMaxVertices lowers it).
//   - A single sync.RWMutex guards all state.
//
// Authoring
//
//	GenerateNodes(n) creates vertices "1".."n". FromLabels accepts explicit
//	labels. AddEdges validates a batch of EdgeInput values, adding the valid
//	ones and returning the rest as Rejected, so one bad row never fails a
//	whole build. Labels are trimmed and upper-cased by NormalizeID.
//	Check validates a graph against a Requirement (start vertex present,
//	at least one edge) before generation.
//
// Errors
//
//	ErrGraphNil, ErrEmptyVertexID, ErrDuplicateVertex, ErrVertexNotFound,
//	ErrLoopNotAllowed, ErrBadWeight, ErrNodeCount, ErrNoEdges.
//	IsValidation reports whether an error is one of these.
//
// Generators treat the Graph as read-only: they call Vertices, Edges and
// IncidentEdges, all of which return copies.
package core
