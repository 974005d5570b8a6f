// Package core defines the state Graph produced by an envisionment run
// and the thread-safe primitives used to populate and query it.
//
// This file declares Edge, Graph, the sentinel errors and NewGraph.
//
// Errors:
//
//	ErrEmptyKey     - node key is the empty string.
//	ErrNodeNotFound - requested node does not exist.
//	ErrArity        - state does not match the graph's quantity count.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/envision/state"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyKey indicates a node key with no content.
	ErrEmptyKey = errors.New("core: node key is empty")

	// ErrNodeNotFound indicates an operation referenced a node that was never added.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrArity indicates a state with a different number of quantities than the graph holds.
	ErrArity = errors.New("core: state arity mismatch")
)

// Edge is a directed transition between two states.
type Edge struct {
	// From is the key of the source state.
	From state.Key

	// To is the key of the successor state. To == From marks a self-loop.
	To state.Key
}

type edgeKey struct{ from, to state.Key }

// Graph is a directed graph whose nodes are distinct legal states.
//
// Nodes are identified by state.Key. Edges are unique ordered pairs, so adding
// the same transition twice is a no-op. Self-loops are permitted.
// Queries return nodes and edges in insertion order, which makes the output of
// a deterministic builder reproducible byte for byte.
type Graph struct {
	mu sync.RWMutex // guards every field below

	arity int // quantities per state; -1 until the first node fixes it

	order []state.Key               // nodes in insertion order
	nodes map[state.Key]state.State // key → state
	out   map[state.Key][]state.Key // successors in insertion order
	in    map[state.Key][]state.Key // predecessors in insertion order
	edges map[edgeKey]struct{}      // edge set
	list  []Edge                    // edges in insertion order
}

// NewGraph creates an empty state graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		arity: -1,
		nodes: make(map[state.Key]state.State),
		out:   make(map[state.Key][]state.Key),
		in:    make(map[state.Key][]state.Key),
		edges: make(map[edgeKey]struct{}),
	}
}
