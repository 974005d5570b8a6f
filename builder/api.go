package builder

import (
	"fmt"

	"github.com/katalvlaran/envision/quantity"
)

// Constructor declares quantities and relations on m.
type Constructor func(m *quantity.Model, cfg builderConfig) error

// BuildModel creates a model named name and applies cons in order with one
// shared configuration.
func BuildModel(name string, opts []BuilderOption, cons ...Constructor) (*quantity.Model, error) {
	m := quantity.NewModel(name)
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildModel: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildModel: %w", err)
		}
	}
	return m, nil
}

// declare wraps a quantity-builder failure with the constructor method.
func declare(method string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
}
