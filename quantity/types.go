// SPDX-License-Identifier: MIT
// Package: envision/quantity
//
// types.go — quantities, landmarks and relation records.

package quantity

import (
	"fmt"
	"strings"
)

// Sign is the qualitative sign of a landmark: Negative, Zero or Positive.
type Sign int

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// String renders the sign as "-", "0" or "+".
func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Zero:
		return "0"
	case Positive:
		return "+"
	default:
		return fmt.Sprintf("Sign(%d)", int(s))
	}
}

// valid reports whether s is one of the three qualitative signs.
func (s Sign) valid() bool {
	return s >= Negative && s <= Positive
}

// Directions is the usual derivative space {-1, 0, +1}.
var Directions = []int{-1, 0, 1}

// Landmark is a named, ordered magnitude value with a declared sign.
type Landmark struct {
	Name string
	Sign Sign
}

// String returns the landmark name.
func (l Landmark) String() string { return l.Name }

// Landmarks builds an ordered landmark sequence (low→high) from names,
// inferring each sign:
//   - "-" or any name starting with "-": Negative
//   - "0": Zero
//   - index 0 (lowest landmark), when not negative: Zero
//   - everything else: Positive
func Landmarks(names ...string) []Landmark {
	out := make([]Landmark, len(names))
	for i, name := range names {
		out[i] = Landmark{Name: name, Sign: inferSign(i, name)}
	}
	return out
}

func inferSign(idx int, name string) Sign {
	switch {
	case strings.HasPrefix(name, "-"):
		return Negative
	case name == "0", idx == 0:
		return Zero
	default:
		return Positive
	}
}

// Quantity is a modeled variable: an ordered magnitude space and a derivative space.
//
// Magnitude index 0 is the lowest landmark. A quantity flagged Exogenous has no
// upper legality bound on magnitude+derivative, and holds its magnitude when a
// successor step would leave the landmark range instead of voiding the
// successor set.
type Quantity struct {
	Name        string
	Magnitudes  []Landmark
	Derivatives []int
	Exogenous   bool
}

// Len returns the number of landmarks.
func (q Quantity) Len() int { return len(q.Magnitudes) }

// MagnitudeIndex returns the ordinal position of the named landmark, or -1.
func (q Quantity) MagnitudeIndex(name string) int {
	for i, l := range q.Magnitudes {
		if l.Name == name {
			return i
		}
	}
	return -1
}

// InRange reports whether idx addresses a landmark of q.
func (q Quantity) InRange(idx int) bool {
	return idx >= 0 && idx < len(q.Magnitudes)
}

// HasDerivative reports whether d belongs to the declared derivative space.
func (q Quantity) HasDerivative(d int) bool {
	for _, x := range q.Derivatives {
		if x == d {
			return true
		}
	}
	return false
}

// MagnitudeNames returns the landmark names in order.
func (q Quantity) MagnitudeNames() []string {
	names := make([]string, len(q.Magnitudes))
	for i, l := range q.Magnitudes {
		names[i] = l.Name
	}
	return names
}

// clone deep-copies the slices so callers cannot mutate model internals.
func (q Quantity) clone() Quantity {
	c := q
	c.Magnitudes = append([]Landmark(nil), q.Magnitudes...)
	c.Derivatives = append([]int(nil), q.Derivatives...)
	return c
}

// Influence: the sign of Source's magnitude scaled by Weight contributes a
// candidate derivative value to Target.
type Influence struct {
	Source string
	Target string
	Weight int
}

// Tag renders the relation the way causal-model diagrams label it, e.g. "I+1".
func (r Influence) Tag() string { return fmt.Sprintf("I%+d", r.Weight) }

// Proportional forces Target's derivative to follow Source's derivative
// (directly for weights ≥ 0, inverted for negative ones).
type Proportional struct {
	Source string
	Target string
	Weight int
}

// Tag renders the relation as "P+1" / "P-1".
func (r Proportional) Tag() string { return fmt.Sprintf("P%+d", r.Weight) }

// Correspondence is the biconditional Q1 = M1 ⇔ Q2 = M2.
type Correspondence struct {
	Q1, M1 string
	Q2, M2 string
}

// Tag renders the correspondence as "V(max=max)".
func (c Correspondence) Tag() string { return fmt.Sprintf("V(%s=%s)", c.M1, c.M2) }
