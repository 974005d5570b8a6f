// SPDX-License-Identifier: MIT
// Package: envision/quantity
//
// errors.go — sentinel errors for model construction and validation.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context (quantity/relation names) is attached with %w at the call site.
//   • Every sentinel here is a configuration error: it aborts the run.

package quantity

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName indicates a quantity or landmark with an empty name.
	ErrEmptyName = errors.New("quantity: empty name")

	// ErrDuplicateQuantity indicates a second declaration of the same quantity name.
	ErrDuplicateQuantity = errors.New("quantity: duplicate quantity")

	// ErrDuplicateMagnitude indicates a landmark name repeated within one quantity.
	ErrDuplicateMagnitude = errors.New("quantity: duplicate magnitude")

	// ErrDuplicateDerivative indicates a derivative value repeated within one quantity.
	ErrDuplicateDerivative = errors.New("quantity: duplicate derivative")

	// ErrEmptyMagnitudes indicates a quantity declared without landmarks.
	ErrEmptyMagnitudes = errors.New("quantity: empty magnitude space")

	// ErrEmptyDerivatives indicates a quantity declared without derivative values.
	ErrEmptyDerivatives = errors.New("quantity: empty derivative space")

	// ErrBadSign indicates a landmark sign outside {-1,0,+1}.
	ErrBadSign = errors.New("quantity: sign out of range")

	// ErrUnknownQuantity indicates a relation referencing an undeclared quantity.
	ErrUnknownQuantity = errors.New("quantity: unknown quantity")

	// ErrUnknownMagnitude indicates a value correspondence naming a landmark
	// that does not exist in the referenced quantity.
	ErrUnknownMagnitude = errors.New("quantity: unknown magnitude")

	// ErrCountOverflow indicates that the candidate-state product does not fit in uint64.
	ErrCountOverflow = errors.New("quantity: candidate count overflows uint64")
)

// modelErrorf prefixes a sentinel with the operation that raised it,
// e.g. "AddInfluence(I->X): quantity: unknown quantity".
func modelErrorf(op string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
