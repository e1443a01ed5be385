// Package dfs generates the replay log of an iterative depth-first
// traversal over a core.Graph.
//
// The walk uses an explicit LIFO stack rather than recursion so every
// record can carry a snapshot of the stack a learner sees (bottom first,
// top last).
//
// Record emission:
//
//   - KindInit, then KindStart when the start vertex is pushed.
//   - Each pop either emits KindSkip (vertex already processed) or marks the
//     vertex processed and emits KindProcess.
//   - After KindProcess, incident edges are examined in reverse insertion
//     order: a neighbor that is neither processed nor on the stack is pushed
//     (KindDiscover), anything else yields KindSkip. Reversing means the
//     first-listed neighbor ends on top and is processed next.
//   - KindComplete once the stack is empty.
//
// Vertex states follow White (unvisited), Gray (on stack), Black
// (processed). The processed check happens at pop time, not at push time.
//
// Options:
//
//   - WithContext(ctx)  cancellation; also carries the logger.
//   - WithOnVisit(fn)   hook when a vertex is processed; error aborts.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs
