package modelfile

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/envision/quantity"
)

// MarshalYAML writes a bare name when the sign is inferred.
func (l LandmarkSpec) MarshalYAML() (any, error) {
	if l.Sign == "" {
		return l.Name, nil
	}
	type plain LandmarkSpec
	return plain(l), nil
}

// FromModel converts m back into a File. Signs that quantity.Landmarks would
// infer from the name are left implicit.
func FromModel(m *quantity.Model, run RunConfig) *File {
	f := &File{Name: m.Name(), Run: run}
	for _, q := range m.Quantities() {
		inferred := quantity.Landmarks(q.MagnitudeNames()...)
		qs := QuantitySpec{
			Name:        q.Name,
			Magnitudes:  make([]LandmarkSpec, len(q.Magnitudes)),
			Derivatives: q.Derivatives,
			Exogenous:   q.Exogenous,
		}
		for i, l := range q.Magnitudes {
			qs.Magnitudes[i].Name = l.Name
			if l.Sign != inferred[i].Sign {
				qs.Magnitudes[i].Sign = l.Sign.String()
			}
		}
		f.Quantities = append(f.Quantities, qs)
	}
	for _, r := range m.Influences() {
		f.Influences = append(f.Influences, RelationSpec{From: r.Source, To: r.Target, Weight: r.Weight})
	}
	for _, r := range m.Proportionals() {
		f.Proportionals = append(f.Proportionals, RelationSpec{From: r.Source, To: r.Target, Weight: r.Weight})
	}
	for _, c := range m.Correspondences() {
		f.Correspondences = append(f.Correspondences, Correspondence{Q1: c.Q1, M1: c.M1, Q2: c.Q2, M2: c.M2})
	}
	return f
}

// Marshal encodes m as a model file that Parse reads back unchanged.
func Marshal(m *quantity.Model, run RunConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(FromModel(m, run)); err != nil {
		return nil, fmt.Errorf("modelfile: Marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("modelfile: Marshal: %w", err)
	}
	return buf.Bytes(), nil
}
