// Package successor derives the legal one-step successors of a legal
// qualitative state.
//
// One step of qualitative change lets each quantity either stay at a non-floor
// landmark or move one landmark in its derivative's direction, and lets each
// derivative stay or change by one. The product of those per-quantity choices
// is filtered through a legality.Checker.
//
// A non-exogenous quantity whose step would leave its landmark range voids the
// whole successor set: the state is terminal. An exogenous quantity holds its
// magnitude instead.
package successor

import (
	"slices"

	"github.com/katalvlaran/envision/legality"
	"github.com/katalvlaran/envision/quantity"
	"github.com/katalvlaran/envision/state"
)

type slot struct {
	nMag      int
	exogenous bool
	derivs    []int
}

// Generator computes successor sets. It is immutable and safe for concurrent use.
type Generator struct {
	checker *legality.Checker
	slots   []slot
}

// New binds a generator to m and the checker compiled from the same model.
func New(m *quantity.Model, checker *legality.Checker) *Generator {
	g := &Generator{checker: checker, slots: make([]slot, m.Len())}
	for i, q := range m.Quantities() {
		g.slots[i] = slot{nMag: q.Len(), exogenous: q.Exogenous, derivs: q.Derivatives}
	}
	return g
}

// Magnitudes returns the candidate landmark indices of quantity qi in s, ascending.
// ok is false when the step is inadmissible and qi is not exogenous.
func (g *Generator) Magnitudes(s state.State, qi int) (cands []int, ok bool) {
	sl := g.slots[qi]
	v := s.At(qi)
	if v.Magnitude > 0 {
		cands = append(cands, v.Magnitude)
	}
	next := v.Magnitude + v.Derivative
	switch {
	case next >= 0 && next < sl.nMag:
		cands = append(cands, next)
	case sl.exogenous:
		cands = append(cands, v.Magnitude)
	default:
		return nil, false
	}
	slices.Sort(cands)
	return slices.Compact(cands), true
}

// Derivatives returns the candidate derivatives of quantity qi in s, ascending:
// the current derivative plus each neighbour d±1 that is declared and keeps the
// current magnitude in bounds.
func (g *Generator) Derivatives(s state.State, qi int) []int {
	v := s.At(qi)
	cands := []int{v.Derivative}
	for _, nd := range []int{v.Derivative - 1, v.Derivative + 1} {
		if g.checker.InBounds(qi, v.Magnitude, nd) {
			cands = append(cands, nd)
		}
	}
	slices.Sort(cands)
	return cands
}

// Successors returns the legal successors of s in odometer order (last quantity
// fastest, magnitude before derivative). An empty result marks a terminal state.
func (g *Generator) Successors(s state.State) []state.State {
	n := len(g.slots)
	if s.Len() != n || n == 0 {
		return nil
	}
	mags := make([][]int, n)
	ders := make([][]int, n)
	for qi := range g.slots {
		ms, ok := g.Magnitudes(s, qi)
		if !ok {
			return nil
		}
		mags[qi] = ms
		ders[qi] = g.Derivatives(s, qi)
	}

	var out []state.State
	// odometer over (magnitude index, derivative index) per quantity
	mi := make([]int, n)
	di := make([]int, n)
	for {
		vals := make([]state.Value, n)
		for qi := range vals {
			vals[qi] = state.Value{Magnitude: mags[qi][mi[qi]], Derivative: ders[qi][di[qi]]}
		}
		if cand := state.New(vals...); g.checker.Legal(cand) {
			out = append(out, cand)
		}
		if !advance(mags, ders, mi, di) {
			return out
		}
	}
}

// advance steps the odometer; it reports false once every combination was visited.
func advance(mags, ders [][]int, mi, di []int) bool {
	for qi := len(mi) - 1; qi >= 0; qi-- {
		di[qi]++
		if di[qi] < len(ders[qi]) {
			return true
		}
		di[qi] = 0
		mi[qi]++
		if mi[qi] < len(mags[qi]) {
			return true
		}
		mi[qi] = 0
	}
	return false
}
