// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Closed-form determinants for N ≤ 4 (Determinant).
//   - Minor extraction (Minor) and signed minors (Cofactor), the building
//     blocks of the adjugate and of the 4×4 expansion.
//
// Determinism & Policy:
//   - No elimination, no pivoting: every result is a fixed polynomial in the
//     entries, so integer instantiations are exact (modulo overflow).
//   - Sizes beyond the closed-form ceiling return ErrUnsupportedDimension.

package matrix

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/minimat/core"
)

// Closed-form ceilings.
const (
	maxDeterminantDim = 4 // Determinant: 1×1 … 4×4
	maxAdjugateDim    = 5 // Adjugate: minors stay within maxDeterminantDim
	maxInverseDim     = 3 // Inverse: 1×1 … 3×3
	minMinorDim       = 2 // Minor needs at least 2 rows and 2 cols
)

// Determinant returns det(m) for a square matrix of size 1…4.
// MAIN DESCRIPTION:
//   - 1×1: the element. 2×2: a00·a11 − a01·a10. 3×3: first-row cofactor
//     expansion. 4×4: expansion along row 0 into four 3×3 minors with signs
//     (+, −, +, −).
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: dispatch on N; N > 4 fails with ErrUnsupportedDimension.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrUnsupportedDimension (N > 4).
//
// Complexity:
//   - Time O(1) for the supported sizes, Space O(1) (4×4 allocates four 3×3 minors).
//
// AI-Hints:
//   - det(I_N) == 1 and det(2·I_3) == 8 are cheap sanity checks.
func Determinant[T core.Scalar](m Matrix[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return core.Zero[T](), matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return core.Zero[T](), matrixErrorf(opDeterminant, err)
	}
	det, err := determinant(d)
	if err != nil {
		return core.Zero[T](), matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// determinant dispatches on the size of a validated square *Dense[T].
func determinant[T core.Scalar](d *Dense[T]) (T, error) {
	a := d.data
	switch d.r {
	case 1:
		return a[0], nil
	case 2:
		return a[0]*a[3] - a[1]*a[2], nil
	case 3:
		return det3(a), nil
	case maxDeterminantDim:
		return det4(d)
	default:
		return core.Zero[T](), ErrUnsupportedDimension
	}
}

// det3 expands a row-major 3×3 buffer along its first row.
func det3[T core.Scalar](a []T) T {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// det4 expands along row 0: Σ_j (−1)^j · a0j · det(Minor(0, j)).
func det4[T core.Scalar](d *Dense[T]) (T, error) {
	acc := core.Zero[T]()
	for j := 0; j < d.c; j++ {
		a0j := d.data[j]
		if core.IsZero(a0j) {
			continue
		}
		minor, err := d.minor(0, j)
		if err != nil {
			return core.Zero[T](), err
		}
		term := a0j * det3(minor.data)
		if j%2 == 1 {
			term = core.Negate(term)
		}
		acc += term
	}

	return acc, nil
}

// Minor returns m with row `row` and column `col` removed, as a new
// (Rows−1)×(Cols−1) matrix. Remaining entries keep their relative order.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (Rows < 2 or Cols < 2), ErrOutOfRange.
//
// Complexity: Time O(r*c), Space O(r*c).
func Minor[T core.Scalar](m Matrix[T], row, col int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.Rows() < minMinorDim || m.Cols() < minMinorDim {
		return nil, matrixErrorf(opMinor, ErrBadShape)
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return nil, matrixErrorf(opMinor, ErrOutOfRange)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	res, err := d.minor(row, col)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// minor is Induced over every row except `row` and every column except `col`.
// Callers validate shape and indices.
func (m *Dense[T]) minor(row, col int) (*Dense[T], error) {
	rowsIdx := lo.Without(lo.Range(m.r), row)
	colsIdx := lo.Without(lo.Range(m.c), col)

	return m.Induced(rowsIdx, colsIdx)
}

// Cofactor returns C[i,j] = (−1)^(i+j) · det(Minor(m, i, j)).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrBadShape (1×1),
//     ErrOutOfRange, ErrUnsupportedDimension (minor larger than 4×4).
func Cofactor[T core.Scalar](m Matrix[T], i, j int) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return core.Zero[T](), matrixErrorf(opCofactor, err)
	}
	if m.Rows() < minMinorDim {
		return core.Zero[T](), matrixErrorf(opCofactor, ErrBadShape)
	}
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return core.Zero[T](), matrixErrorf(opCofactor, ErrOutOfRange)
	}
	d, err := asDense(m)
	if err != nil {
		return core.Zero[T](), matrixErrorf(opCofactor, err)
	}
	c, err := d.cofactor(i, j)
	if err != nil {
		return core.Zero[T](), matrixErrorf(opCofactor, err)
	}

	return c, nil
}

// cofactor computes the signed minor determinant on a validated square *Dense[T].
func (m *Dense[T]) cofactor(i, j int) (T, error) {
	minor, err := m.minor(i, j)
	if err != nil {
		return core.Zero[T](), err
	}
	det, err := determinant(minor)
	if err != nil {
		return core.Zero[T](), err
	}
	if (i+j)%2 == 1 {
		return core.Unsign(core.Negate(det)), nil
	}

	return det, nil
}
