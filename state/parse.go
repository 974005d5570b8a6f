package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/envision/quantity"
)

// ErrParse is returned for malformed state text.
var ErrParse = errors.New("state: cannot parse state")

// Parse reads the Compact form "Q=magnitude,derivative ..." with one entry per
// quantity of m, in any order. Every quantity must be assigned exactly once.
// Only membership is checked here; legality is the checker's business.
func Parse(m *quantity.Model, text string) (State, error) {
	fields := strings.Fields(text)
	vals := make([]Value, m.Len())
	set := make([]bool, m.Len())
	for _, f := range fields {
		name, rest, ok := strings.Cut(f, "=")
		if !ok {
			return State{}, fmt.Errorf("%w: %q: missing '='", ErrParse, f)
		}
		mag, der, ok := strings.Cut(rest, ",")
		if !ok {
			return State{}, fmt.Errorf("%w: %q: missing ','", ErrParse, f)
		}
		qi, ok := m.Index(name)
		if !ok {
			return State{}, fmt.Errorf("%w: %q: %w", ErrParse, name, quantity.ErrUnknownQuantity)
		}
		if set[qi] {
			return State{}, fmt.Errorf("%w: %q assigned twice", ErrParse, name)
		}
		q := m.Quantity(qi)
		mi := q.MagnitudeIndex(mag)
		if mi < 0 {
			return State{}, fmt.Errorf("%w: %s=%q: %w", ErrParse, name, mag, quantity.ErrUnknownMagnitude)
		}
		d, err := strconv.Atoi(der)
		if err != nil {
			return State{}, fmt.Errorf("%w: %s derivative %q: %v", ErrParse, name, der, err)
		}
		if !q.HasDerivative(d) {
			return State{}, fmt.Errorf("%w: %s derivative %d not declared", ErrParse, name, d)
		}
		vals[qi] = Value{Magnitude: mi, Derivative: d}
		set[qi] = true
	}
	for i, ok := range set {
		if !ok {
			return State{}, fmt.Errorf("%w: quantity %q not assigned", ErrParse, m.Quantity(i).Name)
		}
	}
	return State{vals: vals}, nil
}
