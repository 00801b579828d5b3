// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// matrix-vector product, transpose, trace and scalar scaling. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Declare the arithmetic kernels consumed by the decomposition engine and the CLI.
//   - Define operation tags and shared helpers for determinism and error reporting.
//
// Notes:
//   - Every kernel runs on *Dense[T] flat buffers; other Matrix[T]
//     implementations are copied first by asDense.
//   - Results are always freshly allocated; inputs are never mutated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/minimat/core"
	"github.com/katalvlaran/minimat/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFromRows     = "FromRows"
	opZerosLike    = "ZerosLike"
	opIdentityLike = "IdentityLike"
	opAdd          = "Add"
	opSub          = "Sub"
	opScale        = "Scale"
	opMul          = "Mul"
	opMatVec       = "MatVec"
	opTranspose    = "Transpose"
	opTrace        = "Trace"
	opAllClose     = "AllClose"
	opRowEchelon   = "RowEchelon"
	opDeterminant  = "Determinant"
	opMinor        = "Minor"
	opCofactor     = "Cofactor"
	opAdjugate     = "Adjugate"
	opInverse      = "Inverse"
	opRank         = "Rank"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error; call only when err != nil.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: materialize both operands as *Dense[T] and allocate the result.
//   - Stage 3: single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T core.Scalar](a, b Matrix[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDenseLike(da, da.r, da.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T core.Scalar](a, b Matrix[T]) (*Dense[T], error) {
	return addSub(a, b, core.One[T](), opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T core.Scalar](a, b Matrix[T]) (*Dense[T], error) {
	return addSub(a, b, core.Negate(core.One[T]()), opSub)
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T core.Scalar](m Matrix[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDenseLike(d, d.r, d.c)
	for idx, v := range d.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides; zero A[i,k] entries are skipped.
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense[T]: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
func Mul[T core.Scalar](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res := newDenseLike(da, aRows, bCols)
	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// da.data layout: i*aCols + k; db.data layout: k*bCols + j.
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if core.IsZero(av) {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; x.Len() == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - Skipping zero x[j] helps when x is sparse-ish.
func MatVec[T core.Scalar](m Matrix[T], x *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	xs := x.Data()
	y := make([]T, d.r)
	var i, j, base int
	var acc T
	for i = 0; i < d.r; i++ {
		acc = core.Zero[T]()
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if !core.IsZero(xs[j]) {
				acc += d.data[base+j] * xs[j]
			}
		}
		y[i] = acc
	}

	return vector.FromSlice(y)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T core.Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := newDenseLike(d, d.c, d.r)
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i] of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square input).
//
// Complexity: Time O(n), Space O(1).
func Trace[T core.Scalar](m Matrix[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return core.Zero[T](), matrixErrorf(opTrace, err)
	}
	d, err := asDense(m)
	if err != nil {
		return core.Zero[T](), matrixErrorf(opTrace, err)
	}

	acc := core.Zero[T]()
	for i := 0; i < d.r; i++ {
		acc += d.data[i*d.c+i]
	}

	return acc, nil
}
