// Package dfs defines the visitation colours, sentinel errors and options shared
// by cycle detection and topological sorting.
package dfs

import (
	"context"
	"errors"
)

// Visitation colours of a node during depth-first search.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that TopologicalSort met a cycle of length ≥ 2.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures a DetectCycles or TopologicalSort call.
type Option func(*Options)

// Options holds the traversal settings.
type Options struct {
	// Ctx allows cancellation; checked on every node entry.
	Ctx context.Context
}

// DefaultOptions returns a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
