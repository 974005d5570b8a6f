// Package core provides the thread-safe, in-memory state graph that an
// envisionment run produces.
//
// A Graph G = (V,E) holds:
//
//   - V: distinct qualitative states, identified by their structural state.Key.
//   - E: distinct ordered pairs (from, to) of node keys. Self-loops are allowed;
//     parallel edges are not, so re-adding a transition is a no-op.
//
// The graph is agnostic of the quantity model: labels and names are resolved
// by the render package at the output boundary.
//
// Determinism:
//
//	Keys(), Nodes(), Edges(), Successors() and Predecessors() return results in
//	insertion order. A builder that inserts in a fixed order therefore gets a
//	byte-identical graph on every run.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(s state.State) (state.Key, bool, error)    // O(len(s))
//	HasNode(k state.Key) bool                          // O(1)
//	Node(k state.Key) (state.State, bool)              // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to state.Key) (bool, error)          // O(1)
//	HasEdge(from, to state.Key) bool                   // O(1)
//
//	// Queries
//	Keys(), Nodes(), Edges()                           // O(V) / O(E)
//	Successors(k), Predecessors(k)                     // O(deg)
//	OutDegree(k), InDegree(k), NodeCount(), EdgeCount()
//
//	// Views
//	Induced(keep []state.Key) *Graph                   // O(V+E)
//
// Concurrency:
//
//	A single sync.RWMutex guards the graph. Queries return copies, so callers
//	may keep and modify them freely.
package core
