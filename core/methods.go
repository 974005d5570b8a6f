// File: methods.go
// Role: Node and edge lifecycle plus read-only queries on Graph.
// Determinism:
//   - Nodes(), Keys(), Edges(), Successors() and Predecessors() follow insertion order.
// Concurrency:
//   - Mutators take the write lock; queries take the read lock and return copies.

package core

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/envision/state"
)

// AddNode inserts s and returns its key. Adding an equal state again is a
// no-op and reports added == false.
// Returns ErrArity if s has a different length than the nodes already present.
// Complexity: O(len(s)).
func (g *Graph) AddNode(s state.State) (k state.Key, added bool, err error) {
	k = s.Key()
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.arity >= 0 && s.Len() != g.arity {
		return "", false, fmt.Errorf("AddNode: %d quantities, graph holds %d: %w", s.Len(), g.arity, ErrArity)
	}
	if _, exists := g.nodes[k]; exists {
		return k, false, nil
	}
	g.arity = s.Len()
	g.nodes[k] = s
	g.order = append(g.order, k)

	return k, true, nil
}

// AddEdge records the transition from → to. Both endpoints must already be nodes.
// A duplicate edge is a no-op and reports added == false.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to state.Key) (added bool, err error) {
	if from == "" || to == "" {
		return false, ErrEmptyKey
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return false, fmt.Errorf("AddEdge: source: %w", ErrNodeNotFound)
	}
	if _, ok := g.nodes[to]; !ok {
		return false, fmt.Errorf("AddEdge: target: %w", ErrNodeNotFound)
	}
	ek := edgeKey{from, to}
	if _, exists := g.edges[ek]; exists {
		return false, nil
	}
	g.edges[ek] = struct{}{}
	g.list = append(g.list, Edge{From: from, To: to})
	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)

	return true, nil
}

// HasNode reports whether k is a node of g.
func (g *Graph) HasNode(k state.Key) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[k]

	return ok
}

// HasEdge reports whether the transition from → to exists.
func (g *Graph) HasEdge(from, to state.Key) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[edgeKey{from, to}]

	return ok
}

// Node returns the state stored under k.
func (g *Graph) Node(k state.Key) (state.State, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.nodes[k]

	return s, ok
}

// Keys returns every node key in insertion order.
func (g *Graph) Keys() []state.Key {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.order)
}

// Nodes returns every state in insertion order.
func (g *Graph) Nodes() []state.State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]state.State, len(g.order))
	for i, k := range g.order {
		out[i] = g.nodes[k]
	}

	return out
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.list)
}

// Successors returns the targets of k's outgoing edges.
// Returns ErrNodeNotFound if k is absent.
func (g *Graph) Successors(k state.Key) ([]state.Key, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[k]; !ok {
		return nil, ErrNodeNotFound
	}

	return slices.Clone(g.out[k]), nil
}

// Predecessors returns the sources of k's incoming edges.
// Returns ErrNodeNotFound if k is absent.
func (g *Graph) Predecessors(k state.Key) ([]state.Key, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[k]; !ok {
		return nil, ErrNodeNotFound
	}

	return slices.Clone(g.in[k]), nil
}

// OutDegree counts k's outgoing edges, self-loop included.
func (g *Graph) OutDegree(k state.Key) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[k]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(g.out[k]), nil
}

// InDegree counts k's incoming edges, self-loop included.
func (g *Graph) InDegree(k state.Key) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[k]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(g.in[k]), nil
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.list)
}
