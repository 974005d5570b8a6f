// File: view.go
// Role: Non-mutating views over a Graph.
// Determinism:
//   - Views keep the source's insertion order for both nodes and edges.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

import "github.com/katalvlaran/envision/state"

// Induced returns the sub-graph of g containing only the nodes in keep and the
// edges whose endpoints are both kept. Keys not present in g are ignored.
//
// Complexity: O(V + E).
func (g *Graph) Induced(keep []state.Key) *Graph {
	want := make(map[state.Key]struct{}, len(keep))
	for _, k := range keep {
		want[k] = struct{}{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	out.arity = g.arity
	for _, k := range g.order {
		if _, ok := want[k]; !ok {
			continue
		}
		out.nodes[k] = g.nodes[k]
		out.order = append(out.order, k)
	}
	for _, e := range g.list {
		_, okFrom := out.nodes[e.From]
		_, okTo := out.nodes[e.To]
		if !okFrom || !okTo {
			continue
		}
		out.edges[edgeKey{e.From, e.To}] = struct{}{}
		out.list = append(out.list, e)
		out.out[e.From] = append(out.out[e.From], e.To)
		out.in[e.To] = append(out.in[e.To], e.From)
	}

	return out
}
