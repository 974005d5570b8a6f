package builder

import (
	"fmt"

	"github.com/katalvlaran/envision/quantity"
)

const (
	methodRandom   = "Random"
	minRandomNodes = 1
)

// Random returns a Constructor for n endogenous quantities where each ordered
// pair i<j receives a proportional i→j with probability p and a weight of ±1,
// both drawn from the configured RNG. Pairs are visited in (i, j) order, so a
// fixed seed always yields the same model.
func Random(n int, p float64) Constructor {
	return func(m *quantity.Model, cfg builderConfig) error {
		switch {
		case n < minRandomNodes:
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomNodes, ErrTooFewQuantities)
		case p < 0 || p > 1:
			return fmt.Errorf("%s: p=%g: %w", methodRandom, p, ErrInvalidProbability)
		case cfg.rng == nil:
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		for i := range n {
			if err := m.AddQuantity(cfg.idFn(i), quantity.Landmarks(cfg.landmarks...), cfg.derivatives); err != nil {
				return declare(methodRandom, err)
			}
		}
		for i := range n {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				w := 1
				if cfg.rng.Intn(2) == 0 {
					w = -1
				}
				if err := m.AddProportional(cfg.idFn(i), cfg.idFn(j), w); err != nil {
					return declare(methodRandom, err)
				}
			}
		}
		return nil
	}
}
