// Package dfs detects cyclic behaviours in a state graph.
// DetectCycles runs depth-first search with three-colour marking and records
// the cycle closed by every back edge. Each cycle is rotated to start at its
// smallest key (Booth's algorithm), deduplicated, and the final list is
// sorted for deterministic output. This is not an enumeration of every
// elementary cycle: with edges a→b, b→a, a→c, c→b only a→b→a is reported.
//
// Self-loops mark steady states rather than oscillations; they are reported
// by Steady and skipped here.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = #cycles, L = avg cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/envision/core"
	"github.com/katalvlaran/envision/state"
)

// cycleWalker holds the mutable state of one DetectCycles call.
type cycleWalker struct {
	graph  *core.Graph
	opts   Options
	color  map[state.Key]int
	path   []state.Key
	seen   map[string]struct{}
	cycles [][]state.Key
}

// DetectCycles reports the cycles of length ≥ 2 closed by back edges in g.
// Each cycle is closed: [v0, v1, ..., v0] with v0 the smallest key on it.
// Returns (false, nil, nil) for an acyclic or nil graph.
func DetectCycles(g *core.Graph, opts ...Option) (bool, [][]state.Key, error) {
	if g == nil {
		return false, nil, nil
	}
	keys := g.Keys()
	w := &cycleWalker{
		graph: g,
		opts:  resolve(opts),
		color: make(map[state.Key]int, len(keys)),
		path:  make([]state.Key, 0, len(keys)),
		seen:  make(map[string]struct{}),
	}
	// 1) launch from every unvisited node, in insertion order
	for _, k := range keys {
		if w.color[k] == White {
			if err := w.visit(k); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}
	// 2) deterministic order over the canonical key sequences
	slices.SortFunc(w.cycles, Compare[state.Key])
	if len(w.cycles) == 0 {
		return false, nil, nil
	}

	return true, w.cycles, nil
}

func (w *cycleWalker) visit(k state.Key) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.color[k] = Gray
	w.path = append(w.path, k)

	succ, err := w.graph.Successors(k)
	if err != nil {
		return err
	}
	for _, nbr := range succ {
		if nbr == k {
			continue // steady state
		}
		switch w.color[nbr] {
		case White:
			if err = w.visit(nbr); err != nil {
				return err
			}
		case Gray:
			w.record(nbr)
		}
	}

	w.path = w.path[:len(w.path)-1]
	w.color[k] = Black

	return nil
}

// record extracts the cycle path[idx(start):] + start and keeps it if new.
func (w *cycleWalker) record(start state.Key) {
	idx := IndexOf(w.path, start)
	base := MinimalRotation(w.path[idx:])
	closed := append(base, base[0])
	sig := signature(closed)
	if _, dup := w.seen[sig]; dup {
		return
	}
	w.seen[sig] = struct{}{}
	w.cycles = append(w.cycles, closed)
}

// signature length-prefixes every key, since keys are arbitrary bytes.
func signature(c []state.Key) string {
	var b strings.Builder
	for _, k := range c {
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(string(k))
	}
	return b.String()
}

// Steady returns the nodes that carry a self-loop, in insertion order.
func Steady(g *core.Graph) ([]state.Key, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out []state.Key
	for _, k := range g.Keys() {
		if g.HasEdge(k, k) {
			out = append(out, k)
		}
	}
	return out, nil
}

// Terminals returns the nodes without outgoing edges, in insertion order.
func Terminals(g *core.Graph) ([]state.Key, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out []state.Key
	for _, k := range g.Keys() {
		n, err := g.OutDegree(k)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			out = append(out, k)
		}
	}
	return out, nil
}
