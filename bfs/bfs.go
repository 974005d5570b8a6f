// Package bfs computes attainable envisionments: the states reachable from an
// initial state of a core.Graph, with shortest-behaviour depths and parent links.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/envision/core"
	"github.com/katalvlaran/envision/state"
)

// queueItem pairs a state key with its BFS depth.
type queueItem struct {
	key   state.Key
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[state.Key]bool
	res     *Result
}

// Reachable runs breadth-first search on g from start, applying any number of
// functional Options. Successors are followed in the graph's insertion order,
// so the visit sequence is reproducible.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or a wrapped OnVisit error.
func Reachable(g *core.Graph, start state.Key, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[state.Key]bool, n),
		res: &Result{
			Order:  make([]state.Key, 0, n),
			Depth:  make(map[state.Key]int, n),
			Parent: make(map[state.Key]state.Key, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// Envisionment returns the sub-graph of g attainable from start.
func Envisionment(g *core.Graph, start state.Key, opts ...Option) (*core.Graph, *Result, error) {
	res, err := Reachable(g, start, opts...)
	if err != nil {
		return nil, nil, err
	}
	return g.Induced(res.Order), res, nil
}

// enqueue marks k visited at depth d and records its parent.
func (w *walker) enqueue(k state.Key, d int, parent state.Key) {
	w.visited[k] = true
	w.res.Depth[k] = d
	if parent != "" {
		w.res.Parent[k] = parent
	}
	w.queue = append(w.queue, queueItem{key: k, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.key)
		if err := w.opts.OnVisit(item.key, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.depth, err)
		}
		if err := w.enqueueSuccessors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueSuccessors applies filtering and MaxDepth, then enqueues each unseen successor.
func (w *walker) enqueueSuccessors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	succ, err := w.graph.Successors(item.key)
	if err != nil {
		return fmt.Errorf("bfs: successors: %w", err)
	}
	for _, nbr := range succ {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.key, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.key)
	}
	return nil
}
