// SPDX-License-Identifier: MIT
// Package: envision/quantity
//
// validators.go — structural checks shared by Add* and Validate.

package quantity

// checkQuantity enforces: non-empty name, at least one landmark, unique
// non-empty landmark names with valid signs, at least one unique derivative.
func checkQuantity(q Quantity) error {
	if q.Name == "" {
		return ErrEmptyName
	}
	if len(q.Magnitudes) == 0 {
		return ErrEmptyMagnitudes
	}
	seen := make(map[string]struct{}, len(q.Magnitudes))
	for _, l := range q.Magnitudes {
		if l.Name == "" {
			return ErrEmptyName
		}
		if !l.Sign.valid() {
			return ErrBadSign
		}
		if _, dup := seen[l.Name]; dup {
			return ErrDuplicateMagnitude
		}
		seen[l.Name] = struct{}{}
	}
	if len(q.Derivatives) == 0 {
		return ErrEmptyDerivatives
	}
	ds := make(map[int]struct{}, len(q.Derivatives))
	for _, d := range q.Derivatives {
		if _, dup := ds[d]; dup {
			return ErrDuplicateDerivative
		}
		ds[d] = struct{}{}
	}
	return nil
}

// checkPair validates a source/target relation against declared quantities.
// Any weight is accepted; a zero weight contributes 0 to the target.
func (m *Model) checkPair(source, target string) error {
	if _, ok := m.index[source]; !ok {
		return ErrUnknownQuantity
	}
	if _, ok := m.index[target]; !ok {
		return ErrUnknownQuantity
	}
	return nil
}

// checkCorrespondence validates both quantity names and both landmark names.
func (m *Model) checkCorrespondence(c Correspondence) error {
	i1, ok := m.index[c.Q1]
	if !ok {
		return ErrUnknownQuantity
	}
	i2, ok := m.index[c.Q2]
	if !ok {
		return ErrUnknownQuantity
	}
	if m.quantities[i1].MagnitudeIndex(c.M1) < 0 || m.quantities[i2].MagnitudeIndex(c.M2) < 0 {
		return ErrUnknownMagnitude
	}
	return nil
}
