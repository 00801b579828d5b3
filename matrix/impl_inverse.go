// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Adjugate (transposed cofactor matrix) and the inverse built from it:
//     A⁻¹ = adj(A) / det(A).
//
// Determinism & Policy:
//   - Singularity is an EXACT test (det == 0). Near-singular float input is
//     inverted as-is and may produce huge entries.
//   - Inverse is limited to N ≤ 3; the size check runs before the determinant,
//     so a 4×4 singular matrix reports ErrUnsupportedDimension, not ErrSingular.

package matrix

import "github.com/katalvlaran/minimat/core"

// Adjugate returns adj(m) = Cᵀ where C[i,j] = (−1)^(i+j)·det(Minor(m, i, j)).
// MAIN DESCRIPTION:
//   - 1×1 input yields [1] (the empty product convention); N ≤ 5 supported.
//
// Implementation:
//   - Stage 1: validate non-nil, square, N ≤ 5.
//   - Stage 2: fill adj[j][i] = cofactor(i, j) in i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnsupportedDimension (N > 5).
//
// Complexity:
//   - Time O(N²·cost(det_{N−1})), Space O(N²).
//
// AI-Hints:
//   - m · Adjugate(m) == det(m) · I holds exactly for integer T.
func Adjugate[T core.Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	if m.Rows() > maxAdjugateDim {
		return nil, matrixErrorf(opAdjugate, ErrUnsupportedDimension)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := adjugate(d)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// adjugate builds the transposed cofactor matrix of a validated square *Dense[T].
func adjugate[T core.Scalar](d *Dense[T]) (*Dense[T], error) {
	n := d.r
	adj := newDenseLike(d, n, n)
	if n == 1 {
		adj.data[0] = core.One[T]()

		return adj, nil
	}
	var (
		i, j int
		c    T
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if c, err = d.cofactor(i, j); err != nil {
				return nil, err
			}
			adj.data[j*n+i] = c // transpose on write
		}
	}

	return adj, nil
}

// Inverse returns m⁻¹ for a nonsingular square matrix of size 1…3.
// MAIN DESCRIPTION:
//   - Cofactor construction: entry (i,j) of the cofactor matrix is
//     (−1)^(i+j)·det(Minor(i,j)) / det; its transpose is the inverse.
//
// Implementation:
//   - Stage 1: validate non-nil and square; reject N > 3.
//   - Stage 2: det = Determinant(m); exact zero fails with ErrSingular.
//   - Stage 3: N == 1 → [1/det]; otherwise adj(m) scaled by 1/det entry-wise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square),
//     ErrUnsupportedDimension (N > 3), ErrSingular (det == 0).
//
// Determinism:
//   - Fixed cofactor order; no pivoting.
//
// Complexity:
//   - Time O(1) for the supported sizes, Space O(N²).
//
// Notes:
//   - Integer instantiations divide with truncation; the result is exact only
//     for unimodular input (det = ±1).
//
// AI-Hints:
//   - Check with AllClose(Mul(A, Inverse(A)), I).
func Inverse[T core.Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if m.Rows() > maxInverseDim {
		return nil, matrixErrorf(opInverse, ErrUnsupportedDimension)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := determinant(d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if core.IsZero(det) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	if d.r == 1 {
		inv := newDenseLike(d, 1, 1)
		inv.data[0] = core.One[T]() / det

		return inv, nil
	}
	inv, err := adjugate(d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for idx := range inv.data {
		inv.data[idx] = core.Unsign(inv.data[idx] / det)
	}

	return inv, nil
}
