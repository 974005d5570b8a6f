// SPDX-License-Identifier: MIT
// Package: envision/builder
//
// errors.go — sentinel errors for model generators.

package builder

import "errors"

var (
	// ErrTooFewQuantities indicates a size parameter below the topology minimum.
	ErrTooFewQuantities = errors.New("builder: too few quantities")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor run without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a rejected declaration.
	ErrConstructFailed = errors.New("builder: construction failed")
)
