// SPDX-License-Identifier: MIT
// Package: envision/state
//
// enumerate.go — streaming Cartesian product over (magnitude × derivative) per quantity.
//
// Order:
//   • Quantities are odometer digits, the last declared quantity turning fastest.
//   • Within a quantity, magnitudes are the slow axis and derivatives (in declared
//     order) the fast axis.
//   • Ordinal n in [0, CandidateCount) maps to exactly one candidate, which is what
//     lets the graph builder shard the space by ordinal ranges.

package state

import (
	"iter"

	"github.com/katalvlaran/envision/quantity"
)

// axis is one odometer digit: radix = |magnitudes| * |derivatives|.
type axis struct {
	nMag   int
	derivs []int
}

func (a axis) radix() uint64 { return uint64(a.nMag) * uint64(len(a.derivs)) }

func (a axis) value(digit uint64) Value {
	nd := uint64(len(a.derivs))
	return Value{Magnitude: int(digit / nd), Derivative: a.derivs[digit%nd]}
}

func axes(m *quantity.Model) []axis {
	out := make([]axis, m.Len())
	for i, q := range m.Quantities() {
		out[i] = axis{nMag: q.Len(), derivs: q.Derivatives}
	}
	return out
}

// Enumerate yields every candidate state of m, lazily. Each call returns a fresh,
// restartable sequence. Models without quantities yield nothing.
func Enumerate(m *quantity.Model) iter.Seq[State] {
	return EnumerateRange(m, 0, ^uint64(0))
}

// EnumerateRange yields the candidates with ordinals in [lo, hi), clamped to the
// candidate count. Concatenating adjacent ranges reproduces Enumerate exactly.
func EnumerateRange(m *quantity.Model, lo, hi uint64) iter.Seq[State] {
	ax := axes(m)
	return func(yield func(State) bool) {
		if len(ax) == 0 {
			return
		}
		total := uint64(1)
		for _, a := range ax {
			r := a.radix()
			if r == 0 {
				return
			}
			if total > ^uint64(0)/r {
				total = ^uint64(0)
				break
			}
			total *= r
		}
		if hi > total {
			hi = total
		}
		if lo >= hi {
			return
		}
		digits := decode(ax, lo)
		for n := lo; n < hi; n++ {
			vals := make([]Value, len(ax))
			for i, a := range ax {
				vals[i] = a.value(digits[i])
			}
			if !yield(State{vals: vals}) {
				return
			}
			increment(ax, digits)
		}
	}
}

// decode splits ordinal n into per-axis digits (last axis least significant).
func decode(ax []axis, n uint64) []uint64 {
	digits := make([]uint64, len(ax))
	for i := len(ax) - 1; i >= 0; i-- {
		r := ax[i].radix()
		digits[i] = n % r
		n /= r
	}
	return digits
}

// increment advances the odometer by one; overflow past the last ordinal wraps
// silently, which the caller never observes because it stops at hi.
func increment(ax []axis, digits []uint64) {
	for i := len(ax) - 1; i >= 0; i-- {
		digits[i]++
		if digits[i] < ax[i].radix() {
			return
		}
		digits[i] = 0
	}
}
