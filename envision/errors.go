// SPDX-License-Identifier: MIT
// Package: envision
//
// errors.go — sentinel errors for the graph builder.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Model configuration errors keep their quantity sentinels and gain an
//     "envision: Build" prefix through %w wrapping.
//   • A cancelled context surfaces as ctx.Err(), wrapped the same way.

package envision

import (
	"errors"
	"fmt"
)

// ErrCombinatorialLimit indicates that the candidate space exceeds the
// configured ceiling (or overflows uint64). It is raised before any
// enumeration work starts.
var ErrCombinatorialLimit = errors.New("envision: candidate space exceeds limit")

// ErrOptionViolation indicates that an Option received a meaningless value,
// such as a non-positive worker count.
var ErrOptionViolation = errors.New("envision: option violation")

// ErrNilModel indicates that Build received a nil model.
var ErrNilModel = errors.New("envision: nil model")

// buildErrorf wraps err with the Build prefix and a formatted detail.
func buildErrorf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("envision: Build: %s: %w", fmt.Sprintf(format, args...), err)
}
