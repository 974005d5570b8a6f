// Package bfs walks a state graph breadth-first from an initial state.
//
// What
//
//   - Explore states in non-decreasing number of transitions from a start state.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: state → length of the shortest behaviour reaching it
//   - Parent: state → its predecessor on that behaviour
//   - Envisionment wraps Reachable and returns the induced sub-graph, i.e. the
//     attainable envisionment of the start state.
//
// Determinism
//
//	core.Graph returns successors in insertion order, and the walker enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |states|, E = |transitions|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Reachable(g, start.Key(),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(k state.Key, depth int) error { return nil }),
//	)
//	path, err := res.PathTo(goal.Key())
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start state is not a node.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for unreached states.
//   - Wrapped OnVisit errors and ctx.Err() on cancellation.
package bfs
