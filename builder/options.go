// SPDX-License-Identifier: MIT
// Package: envision/builder
//
// options.go — functional options and the resolved builder configuration.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Constructors never panic; they return wrapped sentinels.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/envision/quantity"
)

// BuilderOption mutates the configuration before any constructor runs.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	idFn IDFn
	rng  *rand.Rand

	// landmarks is the magnitude space of endogenous quantities.
	landmarks []string

	// inflow is the magnitude space of exogenous quantities.
	inflow []string

	derivatives []int
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        ExcelColumnIDFn,
		landmarks:   []string{"0", "+", "max"},
		inflow:      []string{"0", "+"},
		derivatives: slices.Clone(quantity.Directions),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDScheme sets the quantity naming function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithSymbolIDs names quantities "A".."Z" (at most 26).
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithSymbNumb names quantities prefix0, prefix1, ...
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }

// WithRand supplies the RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLandmarks sets the magnitude space of endogenous quantities, lowest
// first. Corresponding constructors use the first and last landmark. Panics
// on fewer than two names.
func WithLandmarks(names ...string) BuilderOption {
	if len(names) < 2 {
		panic("builder: WithLandmarks needs at least two landmarks")
	}
	names = slices.Clone(names)
	return func(c *builderConfig) { c.landmarks = names }
}

// WithDerivatives sets the derivative space of every generated quantity.
// Panics on an empty list.
func WithDerivatives(ds ...int) BuilderOption {
	if len(ds) == 0 {
		panic("builder: WithDerivatives needs at least one value")
	}
	ds = slices.Clone(ds)
	return func(c *builderConfig) { c.derivatives = ds }
}
