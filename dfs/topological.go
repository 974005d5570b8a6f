// Package dfs orders acyclic state graphs.
//
// TopologicalSort computes a linear ordering of states such that for every
// transition u→v with u ≠ v, u appears before v. Self-loops are steady states
// and do not prevent an ordering; any longer cycle yields ErrCycleDetected.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"slices"

	"github.com/katalvlaran/envision/core"
	"github.com/katalvlaran/envision/state"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  Options
	color map[state.Key]int
	order []state.Key // post-order
}

// TopologicalSort returns the states of g in topological order.
// Roots are tried in insertion order, so the result is deterministic.
// Returns ErrGraphNil, ErrCycleDetected or ctx.Err().
func TopologicalSort(g *core.Graph, opts ...Option) ([]state.Key, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	keys := g.Keys()
	t := &topoSorter{
		graph: g,
		opts:  resolve(opts),
		color: make(map[state.Key]int, len(keys)),
		order: make([]state.Key, 0, len(keys)),
	}
	for _, k := range keys {
		if t.color[k] == White {
			if err := t.visit(k); err != nil {
				return nil, err
			}
		}
	}
	slices.Reverse(t.order)

	return t.order, nil
}

func (t *topoSorter) visit(k state.Key) error {
	if err := t.opts.Ctx.Err(); err != nil {
		return err
	}
	switch t.color[k] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.color[k] = Gray

	succ, err := t.graph.Successors(k)
	if err != nil {
		return err
	}
	for _, nbr := range succ {
		if nbr == k {
			continue
		}
		if err = t.visit(nbr); err != nil {
			return err
		}
	}

	t.color[k] = Black
	t.order = append(t.order, k)

	return nil
}
