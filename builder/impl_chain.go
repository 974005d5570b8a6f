// SPDX-License-Identifier: MIT
// Package: envision/builder
//
// impl_chain.go — Chain(n): inflow, reservoir and a proportional stage chain.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewQuantities).
//   - idx 0 is the exogenous inflow, idx 1 the reservoir, idx 2..n-1 the stages.
//   - Relations are declared in this order: inflow influence, stage
//     proportionals (1→2→…→n-1), drain influence (n-1 → 1, only when n ≥ 3),
//     then the max and 0 correspondences of each stage against the reservoir.

package builder

import (
	"fmt"

	"github.com/katalvlaran/envision/quantity"
)

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor for the n-quantity container chain.
func Chain(n int) Constructor {
	return func(m *quantity.Model, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewQuantities)
		}

		in, res := cfg.idFn(0), cfg.idFn(1)
		if err := m.AddQuantity(in, quantity.Landmarks(cfg.inflow...), cfg.derivatives, quantity.Exogenous()); err != nil {
			return declare(methodChain, err)
		}
		for i := 1; i < n; i++ {
			if err := m.AddQuantity(cfg.idFn(i), quantity.Landmarks(cfg.landmarks...), cfg.derivatives); err != nil {
				return declare(methodChain, err)
			}
		}

		if err := m.AddInfluence(in, res, 1); err != nil {
			return declare(methodChain, err)
		}
		for i := 2; i < n; i++ {
			if err := m.AddProportional(cfg.idFn(i-1), cfg.idFn(i), 1); err != nil {
				return declare(methodChain, err)
			}
		}
		if n < 3 {
			return nil
		}
		if err := m.AddInfluence(cfg.idFn(n-1), res, -1); err != nil {
			return declare(methodChain, err)
		}

		lo, hi := cfg.landmarks[0], cfg.landmarks[len(cfg.landmarks)-1]
		for _, mark := range []string{hi, lo} {
			for i := 2; i < n; i++ {
				if err := m.AddCorrespondence(res, mark, cfg.idFn(i), mark); err != nil {
					return declare(methodChain, err)
				}
			}
		}
		return nil
	}
}
