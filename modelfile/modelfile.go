// SPDX-License-Identifier: MIT
// Package: envision/modelfile
//
// modelfile.go — YAML schema, validation and conversion to quantity.Model.

package modelfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/envision/quantity"
)

// ErrInvalidFile wraps every decode, validation or model-construction failure.
var ErrInvalidFile = errors.New("modelfile: invalid model file")

var validate = validator.New(validator.WithRequiredStructEnabled())

// File is the decoded document.
type File struct {
	Name            string           `yaml:"name"`
	Quantities      []QuantitySpec   `yaml:"quantities" validate:"required,min=1,dive"`
	Influences      []RelationSpec   `yaml:"influences,omitempty" validate:"dive"`
	Proportionals   []RelationSpec   `yaml:"proportionals,omitempty" validate:"dive"`
	Correspondences []Correspondence `yaml:"correspondences,omitempty" validate:"dive"`
	Run             RunConfig        `yaml:"run,omitempty"`
}

// QuantitySpec declares one quantity.
type QuantitySpec struct {
	Name        string         `yaml:"name" validate:"required"`
	Magnitudes  []LandmarkSpec `yaml:"magnitudes" validate:"required,min=1,dive"`
	Derivatives []int          `yaml:"derivatives" validate:"required,min=1,unique"`
	Exogenous   bool           `yaml:"exogenous,omitempty"`
}

// LandmarkSpec is one magnitude. Sign is empty when inferred.
type LandmarkSpec struct {
	Name string `yaml:"name" validate:"required"`
	Sign string `yaml:"sign,omitempty" validate:"omitempty,oneof=- 0 +"`
}

// UnmarshalYAML accepts a bare scalar name or a {name, sign} mapping.
func (l *LandmarkSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		l.Name = n.Value
		l.Sign = ""
		return nil
	}
	type plain LandmarkSpec
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*l = LandmarkSpec(p)
	return nil
}

// RelationSpec declares an influence or a proportional.
type RelationSpec struct {
	From   string `yaml:"from" validate:"required"`
	To     string `yaml:"to" validate:"required"`
	Weight int    `yaml:"weight"`
}

// Correspondence declares Q1 = M1 <=> Q2 = M2.
type Correspondence struct {
	Q1 string `yaml:"q1" validate:"required"`
	M1 string `yaml:"m1" validate:"required"`
	Q2 string `yaml:"q2" validate:"required"`
	M2 string `yaml:"m2" validate:"required"`
}

// RunConfig holds build settings. Zero values mean "use the library default".
type RunConfig struct {
	Workers       int    `yaml:"workers,omitempty" validate:"gte=0"`
	MaxCandidates uint64 `yaml:"max_candidates,omitempty"`
}

// Load reads and parses the file at path. A missing name defaults to the
// file's base name without extension.
func Load(path string) (*quantity.Model, RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, RunConfig{}, fmt.Errorf("modelfile: Load %s: %w", path, err)
	}
	f, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, RunConfig{}, fmt.Errorf("modelfile: Load %s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	m, err := f.Model()
	if err != nil {
		return nil, RunConfig{}, fmt.Errorf("modelfile: Load %s: %w", path, err)
	}
	return m, f.Run, nil
}

// Parse decodes a model file held in memory.
func Parse(data []byte) (*quantity.Model, RunConfig, error) {
	f, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, RunConfig{}, err
	}
	m, err := f.Model()
	if err != nil {
		return nil, RunConfig{}, err
	}
	return m, f.Run, nil
}

// Decode reads and validates a File without building the model.
func Decode(r io.Reader) (*File, error) {
	return decode(r)
}

func decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidFile)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return &f, nil
}

// Model converts f into a quantity.Model, declaring quantities first and
// relations in file order.
func (f *File) Model() (*quantity.Model, error) {
	m := quantity.NewModel(f.Name)
	for _, q := range f.Quantities {
		var opts []quantity.QuantityOption
		if q.Exogenous {
			opts = append(opts, quantity.Exogenous())
		}
		if err := m.AddQuantity(q.Name, landmarks(q.Magnitudes), q.Derivatives, opts...); err != nil {
			return nil, errors.Join(ErrInvalidFile, err)
		}
	}
	for _, r := range f.Influences {
		if err := m.AddInfluence(r.From, r.To, r.Weight); err != nil {
			return nil, errors.Join(ErrInvalidFile, err)
		}
	}
	for _, r := range f.Proportionals {
		if err := m.AddProportional(r.From, r.To, r.Weight); err != nil {
			return nil, errors.Join(ErrInvalidFile, err)
		}
	}
	for _, c := range f.Correspondences {
		if err := m.AddCorrespondence(c.Q1, c.M1, c.Q2, c.M2); err != nil {
			return nil, errors.Join(ErrInvalidFile, err)
		}
	}
	return m, nil
}

// landmarks applies explicit signs over the inferred ones.
func landmarks(specs []LandmarkSpec) []quantity.Landmark {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	out := quantity.Landmarks(names...)
	for i, s := range specs {
		switch s.Sign {
		case "-":
			out[i].Sign = quantity.Negative
		case "0":
			out[i].Sign = quantity.Zero
		case "+":
			out[i].Sign = quantity.Positive
		}
	}
	return out
}
