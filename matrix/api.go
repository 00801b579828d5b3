// SPDX-License-Identifier: MIT
// Package matrix: constructors and public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Use FromRows for literals: it is the only constructor that detects ragged input.
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/minimat/core"
)

// ---------- Constructors & Utilities ----------

// FromRows builds a *Dense[T] from a nested literal, copying every value.
// MAIN DESCRIPTION:
//   - The row count is len(rows); the column count is len(rows[0]).
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions).
//   - Stage 2: reject ragged input (ErrBadShape), checked with lo.EveryBy.
//   - Stage 3: copy row by row through Set so the numeric policy applies.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape, ErrNaNInf (policy on, float T only).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Later mutation of rows does not affect the result.
func FromRows[T core.Scalar](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	if !lo.EveryBy(rows, func(row []T) bool { return len(row) == cols }) {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	m, err := NewDense[T](len(rows), cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	var i, j int
	for i = 0; i < len(rows); i++ {
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}

// NewZeros returns a new zero-initialized *Dense[T] of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros[T core.Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element for Mul and as the expected value of A·A⁻¹.
func NewIdentity[T core.Scalar](n int, opts ...Option) (*Dense[T], error) {
	id, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	one := core.One[T]()
	for i := 0; i < n; i++ {
		id.data[i*n+i] = one
	}

	return id, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense[T]).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix[T core.Scalar](m Matrix[T]) Matrix[T] {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrNilMatrix.
//
// AI-Hints: Useful for staging buffers or accumulating into fresh containers.
func ZerosLike[T core.Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func IdentityLike[T core.Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return NewIdentity[T](m.Rows())
}

// ---------- Facades (map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T core.Scalar](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T core.Scalar](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T core.Scalar](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy[T core.Scalar](m Matrix[T], alpha T) (*Dense[T], error) { return Scale(m, alpha) }

// InverseOf is an alias for Inverse.
func InverseOf[T core.Scalar](m Matrix[T]) (*Dense[T], error) { return Inverse(m) }

// RREF is an alias for RowEchelon: reduced row-echelon form.
func RREF[T core.Scalar](m Matrix[T]) (*Dense[T], error) { return RowEchelon(m) }
