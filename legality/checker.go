// SPDX-License-Identifier: MIT
// Package: envision/legality
//
// checker.go — compiled model view and the ordered stage pipeline.

package legality

import (
	"fmt"

	"github.com/katalvlaran/envision/quantity"
	"github.com/katalvlaran/envision/state"
)

// Stage identifies the constraint family that rejected a state.
type Stage int

const (
	// StageNone means the state passed every stage.
	StageNone Stage = iota
	StageBounds
	StageCorrespondence
	StageInfluence
	StageProportionality
)

// Stages lists the rejecting stages in evaluation order.
var Stages = []Stage{StageBounds, StageCorrespondence, StageInfluence, StageProportionality}

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "legal"
	case StageBounds:
		return "bounds"
	case StageCorrespondence:
		return "correspondence"
	case StageInfluence:
		return "influence"
	case StageProportionality:
		return "proportionality"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// slot is the compiled per-quantity view.
type slot struct {
	nMag      int
	exogenous bool
	signs     []quantity.Sign
	derivs    map[int]struct{}
}

type contribution struct {
	source int
	weight int
}

type correspondence struct {
	q1, m1, q2, m2 int
}

type proportional struct {
	source, target, weight int
}

// Checker evaluates candidate states against a compiled model.
type Checker struct {
	slots           []slot
	incoming        [][]contribution // influences indexed by target
	correspondences []correspondence
	proportionals   []proportional
}

// New validates m and compiles it into index form. Any configuration error from
// quantity.Model.Validate is returned wrapped.
func New(m *quantity.Model) (*Checker, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("legality: %w", err)
	}
	c := &Checker{
		slots:    make([]slot, m.Len()),
		incoming: make([][]contribution, m.Len()),
	}
	for i, q := range m.Quantities() {
		s := slot{
			nMag:      q.Len(),
			exogenous: q.Exogenous,
			signs:     make([]quantity.Sign, q.Len()),
			derivs:    make(map[int]struct{}, len(q.Derivatives)),
		}
		for j, l := range q.Magnitudes {
			s.signs[j] = l.Sign
		}
		for _, d := range q.Derivatives {
			s.derivs[d] = struct{}{}
		}
		c.slots[i] = s
	}
	// Validate guarantees every name below resolves.
	idx := func(name string) int { i, _ := m.Index(name); return i }
	for _, r := range m.Influences() {
		t := idx(r.Target)
		c.incoming[t] = append(c.incoming[t], contribution{source: idx(r.Source), weight: r.Weight})
	}
	for _, r := range m.Proportionals() {
		c.proportionals = append(c.proportionals, proportional{source: idx(r.Source), target: idx(r.Target), weight: r.Weight})
	}
	for _, v := range m.Correspondences() {
		i1, i2 := idx(v.Q1), idx(v.Q2)
		c.correspondences = append(c.correspondences, correspondence{
			q1: i1, m1: m.Quantity(i1).MagnitudeIndex(v.M1),
			q2: i2, m2: m.Quantity(i2).MagnitudeIndex(v.M2),
		})
	}
	return c, nil
}

// Check runs the stages in order and returns the first one that rejects s,
// or StageNone if s is legal.
func (c *Checker) Check(s state.State) Stage {
	switch {
	case !c.Bounds(s):
		return StageBounds
	case !c.Correspondences(s):
		return StageCorrespondence
	case !c.Influences(s):
		return StageInfluence
	case !c.Proportionality(s):
		return StageProportionality
	}
	return StageNone
}

// Legal reports whether s passes every stage.
func (c *Checker) Legal(s state.State) bool { return c.Check(s) == StageNone }

// InBounds reports whether quantity qi may sit at landmark mag with derivative d:
// the landmark exists, d is declared, and mag+d is still a landmark index.
// Exogenous quantities are open-ended above their highest landmark, so only the
// lower end is enforced for them.
func (c *Checker) InBounds(qi, mag, d int) bool {
	sl := c.slots[qi]
	if mag < 0 || mag >= sl.nMag {
		return false
	}
	if _, ok := sl.derivs[d]; !ok {
		return false
	}
	next := mag + d
	if next < 0 {
		return false
	}
	return sl.exogenous || next <= sl.nMag-1
}

// Bounds is stage 1. A state with the wrong number of slots fails here too.
func (c *Checker) Bounds(s state.State) bool {
	if s.Len() != len(c.slots) {
		return false
	}
	for i := range c.slots {
		v := s.At(i)
		if !c.InBounds(i, v.Magnitude, v.Derivative) {
			return false
		}
	}
	return true
}

// Correspondences is stage 2: q1 = m1 ⇔ q2 = m2 for every correspondence.
func (c *Checker) Correspondences(s state.State) bool {
	for _, vc := range c.correspondences {
		left := s.At(vc.q1).Magnitude == vc.m1
		right := s.At(vc.q2).Magnitude == vc.m2
		if left != right {
			return false
		}
	}
	return true
}

// Influences is stage 3: every influenced quantity's derivative must lie in its
// permitted range.
func (c *Checker) Influences(s state.State) bool {
	for qi := range c.slots {
		lo, hi, constrained := c.PermittedRange(s, qi)
		if !constrained {
			continue
		}
		if d := s.At(qi).Derivative; d < lo || d > hi {
			return false
		}
	}
	return true
}

// PermittedRange resolves the influences targeting quantity qi in state s.
//
// Each influence contributes sign(source magnitude) * weight. When at least two
// contributions exist and some are non-zero, the zero contributions are dropped.
// The permitted derivatives are the inclusive range [min, max] of what remains.
// constrained is false when nothing influences qi; its declared space then applies.
// s must already pass Bounds.
func (c *Checker) PermittedRange(s state.State, qi int) (lo, hi int, constrained bool) {
	in := c.incoming[qi]
	if len(in) == 0 {
		return 0, 0, false
	}
	first := true
	for _, r := range in {
		v := c.contribution(s, r)
		if v == 0 && len(in) > 1 {
			continue
		}
		if first || v < lo {
			lo = v
		}
		if first || v > hi {
			hi = v
		}
		first = false
	}
	if first {
		// every contribution was zero
		return 0, 0, true
	}
	return lo, hi, true
}

func (c *Checker) contribution(s state.State, r contribution) int {
	mag := s.At(r.source).Magnitude
	return int(c.slots[r.source].signs[mag]) * r.weight
}

// Proportionality is stage 4: for non-negative weights the target derivative
// equals the source derivative; for negative weights it equals its negation.
func (c *Checker) Proportionality(s state.State) bool {
	for _, p := range c.proportionals {
		src := s.At(p.source).Derivative
		dst := s.At(p.target).Derivative
		if p.weight < 0 {
			src = -src
		}
		if src != dst {
			return false
		}
	}
	return true
}
