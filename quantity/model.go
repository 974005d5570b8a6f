// SPDX-License-Identifier: MIT
// Package: envision/quantity
//
// model.go — the causal Model and its additive builder API.
//
// Contract:
//   • Declarations are appended in call order; there is no removal.
//   • Each Add* call validates its own input and returns a wrapped sentinel.
//   • Accessors return copies; the Model never exposes its internal slices.

package quantity

import "math/bits"

// QuantityOption adjusts a quantity at declaration time.
type QuantityOption func(*Quantity)

// Exogenous marks the quantity as an external/boundary quantity. It relaxes two
// rules: legality no longer bounds magnitude+derivative from above, so the
// quantity may keep rising at its top landmark, and a successor step that would
// leave the landmark range holds the magnitude instead.
func Exogenous() QuantityOption {
	return func(q *Quantity) { q.Exogenous = true }
}

// Model is the ordered definition of quantities and relations.
type Model struct {
	name            string
	quantities      []Quantity
	index           map[string]int
	influences      []Influence
	proportionals   []Proportional
	correspondences []Correspondence
}

// NewModel returns an empty model with the given display name.
func NewModel(name string) *Model {
	return &Model{name: name, index: make(map[string]int)}
}

// Name returns the display name given at construction.
func (m *Model) Name() string { return m.name }

// AddQuantity declares a quantity with an ordered landmark sequence and a
// derivative space. Returns ErrEmptyName, ErrDuplicateQuantity, ErrEmptyMagnitudes,
// ErrDuplicateMagnitude, ErrBadSign, ErrEmptyDerivatives or ErrDuplicateDerivative.
// Complexity: O(|magnitudes|² + |derivatives|²), both tiny in practice.
func (m *Model) AddQuantity(name string, magnitudes []Landmark, derivatives []int, opts ...QuantityOption) error {
	const op = "AddQuantity"
	q := Quantity{
		Name:        name,
		Magnitudes:  append([]Landmark(nil), magnitudes...),
		Derivatives: append([]int(nil), derivatives...),
	}
	for _, opt := range opts {
		opt(&q)
	}
	if err := checkQuantity(q); err != nil {
		return modelErrorf(op, err, "%q", name)
	}
	if _, dup := m.index[name]; dup {
		return modelErrorf(op, ErrDuplicateQuantity, "%q", name)
	}
	m.index[name] = len(m.quantities)
	m.quantities = append(m.quantities, q)

	return nil
}

// AddInfluence declares source --I(weight)--> target.
func (m *Model) AddInfluence(source, target string, weight int) error {
	r := Influence{Source: source, Target: target, Weight: weight}
	if err := m.checkPair(source, target); err != nil {
		return modelErrorf("AddInfluence", err, "%s->%s", source, target)
	}
	m.influences = append(m.influences, r)
	return nil
}

// AddProportional declares source --P(weight)--> target.
func (m *Model) AddProportional(source, target string, weight int) error {
	r := Proportional{Source: source, Target: target, Weight: weight}
	if err := m.checkPair(source, target); err != nil {
		return modelErrorf("AddProportional", err, "%s->%s", source, target)
	}
	m.proportionals = append(m.proportionals, r)
	return nil
}

// AddCorrespondence declares q1 = m1 ⇔ q2 = m2.
func (m *Model) AddCorrespondence(q1, m1, q2, m2 string) error {
	c := Correspondence{Q1: q1, M1: m1, Q2: q2, M2: m2}
	if err := m.checkCorrespondence(c); err != nil {
		return modelErrorf("AddCorrespondence", err, "%s(%s)=%s(%s)", q1, m1, q2, m2)
	}
	m.correspondences = append(m.correspondences, c)
	return nil
}

// Len returns the number of declared quantities.
func (m *Model) Len() int { return len(m.quantities) }

// Quantity returns a copy of the i-th quantity in declaration order.
func (m *Model) Quantity(i int) Quantity { return m.quantities[i].clone() }

// Index returns the declaration position of the named quantity.
func (m *Model) Index(name string) (int, bool) {
	i, ok := m.index[name]
	return i, ok
}

// Quantities returns copies of all quantities in declaration order.
func (m *Model) Quantities() []Quantity {
	out := make([]Quantity, len(m.quantities))
	for i, q := range m.quantities {
		out[i] = q.clone()
	}
	return out
}

// Influences returns the influence relations in declaration order.
func (m *Model) Influences() []Influence {
	return append([]Influence(nil), m.influences...)
}

// Proportionals returns the proportional relations in declaration order.
func (m *Model) Proportionals() []Proportional {
	return append([]Proportional(nil), m.proportionals...)
}

// Correspondences returns the value correspondences in declaration order.
func (m *Model) Correspondences() []Correspondence {
	return append([]Correspondence(nil), m.correspondences...)
}

// CandidateCount returns Π |magnitudes|·|derivatives| over all quantities: the size
// of the full Cartesian product the enumerator walks. It is computed from the
// definitions alone. Returns ErrCountOverflow if the product exceeds uint64.
func (m *Model) CandidateCount() (uint64, error) {
	if len(m.quantities) == 0 {
		return 0, nil
	}
	total := uint64(1)
	for _, q := range m.quantities {
		radix := uint64(len(q.Magnitudes)) * uint64(len(q.Derivatives))
		hi, lo := bits.Mul64(total, radix)
		if hi != 0 {
			return 0, modelErrorf("CandidateCount", ErrCountOverflow, "at %q", q.Name)
		}
		total = lo
	}
	return total, nil
}

// Validate re-checks every quantity and relation. It is the reasoning-start
// counterpart of the per-call checks in Add*.
func (m *Model) Validate() error {
	for _, q := range m.quantities {
		if err := checkQuantity(q); err != nil {
			return modelErrorf("Validate", err, "quantity %q", q.Name)
		}
	}
	for _, r := range m.influences {
		if err := m.checkPair(r.Source, r.Target); err != nil {
			return modelErrorf("Validate", err, "influence %s->%s", r.Source, r.Target)
		}
	}
	for _, r := range m.proportionals {
		if err := m.checkPair(r.Source, r.Target); err != nil {
			return modelErrorf("Validate", err, "proportional %s->%s", r.Source, r.Target)
		}
	}
	for _, c := range m.correspondences {
		if err := m.checkCorrespondence(c); err != nil {
			return modelErrorf("Validate", err, "correspondence %s(%s)=%s(%s)", c.Q1, c.M1, c.Q2, c.M2)
		}
	}
	return nil
}
