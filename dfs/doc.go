// Package dfs analyses the behaviour structure of a state graph with
// depth-first search.
//
// What:
//
//   - DetectCycles: cyclic behaviours (oscillations) closed by back edges,
//     found with White/Gray/Black colouring and canonicalised by minimal
//     rotation so each cycle is reported once.
//   - Steady: states with a self-loop, i.e. states that may persist.
//   - Terminals: states with no successor, where every behaviour ends.
//   - TopologicalSort: a linear order of an acyclic envisionment, ignoring
//     self-loops; ErrCycleDetected otherwise.
//
// Complexity:
//
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V+L_max)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - Steady, Terminals: Time O(V)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrCycleDetected   TopologicalSort met a cycle
//   - context.Canceled   traversal cancelled through WithContext
package dfs
