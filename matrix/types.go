// SPDX-License-Identifier: MIT

// Package matrix: the container contract consumed by every kernel.
// This file intentionally contains ONLY the public Matrix interface.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "github.com/katalvlaran/minimat/core"

// Matrix represents a two-dimensional mutable array of scalars whose shape is
// fixed at construction.
//
// Kernels accept any Matrix[T]; implementations other than *Dense[T] are
// materialized into a *Dense[T] copy before the kernel runs.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T core.Scalar] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
