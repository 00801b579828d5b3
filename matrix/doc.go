// Package matrix offers a fixed-shape dense matrix over core.Scalar and the
// small decomposition engine built on it.
//
// The matrix package provides:
//
//   - Dense[T], a row-major container behind the Matrix[T] contract, with
//     safe accessors, Induced sub-matrices and an optional NaN/Inf policy.
//   - Arithmetic kernels (Add, Sub, Scale, Mul, MatVec, Transpose, Trace)
//     and AllClose for approximate comparison.
//   - RowEchelon (Gauss–Jordan to reduced row-echelon form) and Rank.
//   - Determinant (closed forms up to 4×4), Minor, Cofactor, Adjugate and
//     Inverse (cofactor construction up to 3×3).
//
// Every kernel returns a fresh matrix and leaves its inputs untouched.
// Errors are package sentinels wrapped with the operation name; match them
// with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
