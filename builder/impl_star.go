package builder

import (
	"fmt"

	"github.com/katalvlaran/envision/quantity"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a hub (idx 0) influenced by n-1 exogenous
// spokes. Spoke i has weight +1 when i is odd and -1 when even, so Star(3) is
// one inflow and one outflow.
func Star(n int) Constructor {
	return func(m *quantity.Model, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewQuantities)
		}
		hub := cfg.idFn(0)
		if err := m.AddQuantity(hub, quantity.Landmarks(cfg.landmarks...), cfg.derivatives); err != nil {
			return declare(methodStar, err)
		}
		for i := 1; i < n; i++ {
			if err := m.AddQuantity(cfg.idFn(i), quantity.Landmarks(cfg.inflow...), cfg.derivatives, quantity.Exogenous()); err != nil {
				return declare(methodStar, err)
			}
		}
		for i := 1; i < n; i++ {
			w := 1
			if i%2 == 0 {
				w = -1
			}
			if err := m.AddInfluence(cfg.idFn(i), hub, w); err != nil {
				return declare(methodStar, err)
			}
		}
		return nil
	}
}
