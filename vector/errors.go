// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All functions return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is. No function panics on user input.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a vector would have length <= 0.
	ErrInvalidLength = errors.New("vector: length must be > 0")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of incompatible lengths,
	// e.g. Add of a 2-vector and a 3-vector, or CrossProduct outside 3D.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilVector indicates a nil *Vector receiver or argument.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrEmpty indicates an empty input set (LinearCombination of nothing).
	ErrEmpty = errors.New("vector: empty input")

	// ErrZeroNorm indicates a zero-length vector where a direction is needed
	// (AngleCos).
	ErrZeroNorm = errors.New("vector: zero norm")
)

// Operation tags for error wrapping.
const (
	opAdd               = "Add"
	opSub               = "Sub"
	opDot               = "Dot"
	opLinearCombination = "LinearCombination"
	opAngleCos          = "AngleCos"
	opCrossProduct      = "CrossProduct"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
