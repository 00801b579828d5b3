// SPDX-License-Identifier: MIT
// Package core - Scalar field contract and numeric helpers.
//
// Purpose:
//   - Declare the one constraint (Scalar) used across vector/ and matrix/.
//   - Provide identity elements and ordering helpers in generic form.
//
// Determinism:
//   - All helpers are pure and allocation-free.

package core

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Scalar is the field contract for every container element.
// Signed integers and floats only; see the package doc.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// formatPrecision is the number of decimals used by FormatScalar.
const formatPrecision = 1

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Scalar]() T {
	return T(0)
}

// One returns the multiplicative identity of T.
// Complexity: O(1).
func One[T Scalar]() T {
	return T(1)
}

// IsZero reports whether x equals the additive identity exactly.
// No tolerance is applied; pivot search and rank depend on that.
func IsZero[T Scalar](x T) bool {
	return x == T(0)
}

// Abs returns |x|.
// For the most negative integer the result overflows back to itself,
// matching two's complement arithmetic.
func Abs[T Scalar](x T) T {
	if x < T(0) {
		return -x
	}

	return x
}

// Max returns the larger of a and b (a on ties).
func Max[T Scalar](a, b T) T {
	if b > a {
		return b
	}

	return a
}

// Negate returns -x. It exists so sign flips read the same at call sites
// that work with cofactor signs.
func Negate[T Scalar](x T) T { return -x }

// IsFinite reports whether x is neither NaN nor ±Inf.
// Integer types are always finite.
func IsFinite[T Scalar](x T) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Unsign maps a negative zero to +0 and returns every other value unchanged.
func Unsign[T Scalar](x T) T {
	if x == 0 {
		return Zero[T]()
	}

	return x
}

// FormatScalar renders x with one decimal place ("3.0", "-0.5", "NaN").
// Negative zero prints as "0.0".
// Complexity: O(1).
func FormatScalar[T Scalar](x T) string {
	return strconv.FormatFloat(float64(Unsign(x)), 'f', formatPrecision, 64)
}
