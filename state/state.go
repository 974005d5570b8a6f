// Package state defines the immutable qualitative state value, its structural
// identity key, its canonical label, and the streaming enumerator over the full
// candidate space of a quantity.Model.
//
// A State stores, per quantity in declaration order, the landmark index of the
// magnitude and the derivative. Names are resolved against the model only when
// a caller asks for Triples or a Label.
package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/envision/quantity"
)

// ErrBadKey is returned when a Key cannot be decoded.
var ErrBadKey = errors.New("state: malformed key")

// Value is one quantity's slot: landmark index and derivative.
type Value struct {
	Magnitude  int
	Derivative int
}

// State is an immutable assignment of a Value to every quantity.
// The zero State has no slots.
type State struct {
	vals []Value
}

// New returns a State holding a private copy of vals.
func New(vals ...Value) State {
	return State{vals: append([]Value(nil), vals...)}
}

// Len returns the number of slots.
func (s State) Len() int { return len(s.vals) }

// At returns the i-th slot.
func (s State) At(i int) Value { return s.vals[i] }

// Values returns a copy of all slots.
func (s State) Values() []Value { return append([]Value(nil), s.vals...) }

// Equal reports slot-wise equality.
func (s State) Equal(o State) bool {
	if len(s.vals) != len(o.vals) {
		return false
	}
	for i := range s.vals {
		if s.vals[i] != o.vals[i] {
			return false
		}
	}
	return true
}

// Key is the structural identity of a State, usable as a map key.
// Two states have the same Key iff they are Equal.
type Key string

// Key packs every slot as (uvarint magnitude, zig-zag varint derivative).
func (s State) Key() Key {
	buf := make([]byte, 0, 2*len(s.vals))
	for _, v := range s.vals {
		buf = binary.AppendUvarint(buf, uint64(v.Magnitude))
		buf = binary.AppendVarint(buf, int64(v.Derivative))
	}
	return Key(buf)
}

// Decode rebuilds the State encoded by k.
func (k Key) Decode() (State, error) {
	b := []byte(k)
	var vals []Value
	for len(b) > 0 {
		mag, n := binary.Uvarint(b)
		if n <= 0 {
			return State{}, ErrBadKey
		}
		b = b[n:]
		der, n := binary.Varint(b)
		if n <= 0 {
			return State{}, ErrBadKey
		}
		b = b[n:]
		vals = append(vals, Value{Magnitude: int(mag), Derivative: int(der)})
	}
	return State{vals: vals}, nil
}

// Triple is the named form of one slot.
type Triple struct {
	Quantity   string
	Magnitude  string
	Derivative int
}

// Triples resolves s against m. s must have m.Len() slots with in-range magnitudes.
func Triples(m *quantity.Model, s State) []Triple {
	out := make([]Triple, s.Len())
	for i, v := range s.vals {
		q := m.Quantity(i)
		out[i] = Triple{Quantity: q.Name, Magnitude: q.Magnitudes[v.Magnitude].Name, Derivative: v.Derivative}
	}
	return out
}

// Label renders the canonical label of s: one "q|m d" line per quantity in
// declaration order, the derivative right-aligned in a two-column field, lines
// joined by "\n". Equal states always produce byte-identical labels.
func Label(m *quantity.Model, s State) string {
	var sb strings.Builder
	for i, t := range Triples(m, s) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s|%s %2d", t.Quantity, t.Magnitude, t.Derivative)
	}
	return sb.String()
}

// Compact renders s in the single-line form accepted by Parse: "I=+,1 V=0,1".
func Compact(m *quantity.Model, s State) string {
	parts := make([]string, 0, s.Len())
	for _, t := range Triples(m, s) {
		parts = append(parts, fmt.Sprintf("%s=%s,%d", t.Quantity, t.Magnitude, t.Derivative))
	}
	return strings.Join(parts, " ")
}
