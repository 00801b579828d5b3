// SPDX-License-Identifier: MIT

// Package vector - fixed-length storage & safe accessors.
//
// Purpose:
//   - Own a contiguous []T whose length is fixed at construction.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep value semantics: constructors and Clone copy, Data returns a copy.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone: O(n); At/Set/Len: O(1); String: O(n).

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/minimat/core"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]\n"
	_fmtSep   = ", "
)

// Vector is an ordered sequence of n scalars; n never changes after construction.
type Vector[T core.Scalar] struct {
	data []T // owned storage, len(data) >= 1
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[float64])(nil)

// New returns a zero-filled vector of length n.
//
// Errors:
//   - ErrInvalidLength when n <= 0.
//
// Complexity: O(n).
func New[T core.Scalar](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// FromSlice returns a vector holding a copy of vals.
// Later mutations of vals do not affect the vector.
//
// Errors:
//   - ErrInvalidLength when vals is empty.
//
// Complexity: O(n).
func FromSlice[T core.Scalar](vals []T) (*Vector[T], error) {
	if len(vals) == 0 {
		return nil, ErrInvalidLength
	}
	buf := make([]T, len(vals))
	copy(buf, vals)

	return &Vector[T]{data: buf}, nil
}

// Len returns the number of elements; zero for a nil vector.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// At returns element i or ErrOutOfRange.
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if v == nil {
		return core.Zero[T](), fmt.Errorf("Vector.At(%d): %w", i, ErrNilVector)
	}
	if i < 0 || i >= len(v.data) {
		return core.Zero[T](), fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns element i or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	if v == nil {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrNilVector)
	}
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Clone returns an independent copy, or nil for a nil vector.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	buf := make([]T, len(v.data))
	copy(buf, v.data)

	return &Vector[T]{data: buf}
}

// Data returns a copy of the elements.
func (v *Vector[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// String renders the vector as "[v0, v1, ...]\n" with one decimal place.
// Intended for diagnostics only.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(core.FormatScalar(x))
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// sameLen checks both vectors are non-nil and of equal length.
func sameLen[T core.Scalar](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.data) != len(b.data) {
		return ErrDimensionMismatch
	}

	return nil
}
