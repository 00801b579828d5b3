// Package core provides the numeric foundation shared by the vector and
// matrix packages: a single Scalar constraint and a handful of helpers that
// express the field operations every kernel relies on.
//
// The Scalar contract covers signed integers and floating-point types:
//
//   - + - * / and == come from the Go operators on the type set.
//   - Zero and One expose the additive and multiplicative identities.
//   - Abs and Max cover the ordering needs of norms and comparisons.
//   - IsZero is the exact zero test used by pivot search and rank.
//
// Unsigned integers are deliberately absent: cofactor signs and negation
// need an additive inverse.
//
// Why a single constraint?
//
//   - Every function in vector/ and matrix/ constrains on core.Scalar and
//     nothing else, so instantiations stay uniform (int64, float64, ...).
//   - Distinct instantiations never convert implicitly: a Dense[int64] and a
//     Dense[float64] are unrelated types.
//
// Formatting:
//
//	FormatScalar renders any Scalar with one decimal place ("2.0", "-0.5"),
//	the diagnostic format used by Vector.String and Dense.String.
package core
