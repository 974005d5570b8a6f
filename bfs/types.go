// Package bfs provides tunable options and error definitions
// for breadth-first reachability over a state graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/envision/state"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start state is not a node of the graph.
	ErrStartVertexNotFound = errors.New("bfs: start state not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a state that was not reached.
	ErrNoPath = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Reachable is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a state. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(k state.Key, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many transitions.
	// 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip transitions by returning false.
	FilterNeighbor func(curr, next state.Key) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns background context, no depth limit,
// no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(state.Key, int) error { return nil },
		FilterNeighbor: func(_, _ state.Key) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited state; returning an
// error from it stops the traversal.
func WithOnVisit(fn func(k state.Key, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal to d transitions from the start.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips transitions for which fn returns false.
func WithFilterNeighbor(fn func(curr, next state.Key) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: states in visit sequence, start first.
//   - Depth: minimum number of transitions from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []state.Key
	Depth  map[state.Key]int
	Parent map[state.Key]state.Key
}

// Reached reports whether k was visited.
func (r *Result) Reached(k state.Key) bool {
	_, ok := r.Depth[k]
	return ok
}

// PathTo reconstructs a shortest behaviour from the start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest state.Key) ([]state.Key, error) {
	if !r.Reached(dest) {
		return nil, ErrNoPath
	}
	path := []state.Key{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
