// SPDX-License-Identifier: MIT

// Package vector - element-wise arithmetic and the dot product.
//
// Add, Sub and Scl mutate the receiver in place; length checks run before
// the first write so a failed call leaves the receiver untouched.

package vector

import "github.com/katalvlaran/minimat/core"

// Add performs v += o element-wise.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch (receiver unchanged).
//
// Complexity: O(n).
func (v *Vector[T]) Add(o *Vector[T]) error {
	if err := sameLen(v, o); err != nil {
		return vectorErrorf(opAdd, err)
	}
	for i := range v.data {
		v.data[i] += o.data[i]
	}

	return nil
}

// Sub performs v -= o element-wise.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch (receiver unchanged).
//
// Complexity: O(n).
func (v *Vector[T]) Sub(o *Vector[T]) error {
	if err := sameLen(v, o); err != nil {
		return vectorErrorf(opSub, err)
	}
	for i := range v.data {
		v.data[i] -= o.data[i]
	}

	return nil
}

// Scl multiplies every element by s in place; a nil receiver is a no-op.
// Complexity: O(n).
func (v *Vector[T]) Scl(s T) {
	if v == nil {
		return
	}
	for i := range v.data {
		v.data[i] *= s
	}
}

// Neg returns a new vector with every sign flipped, or nil for a nil receiver.
func (v *Vector[T]) Neg() *Vector[T] {
	if v == nil {
		return nil
	}
	out := v.Clone()
	for i := range out.data {
		out.data[i] = core.Negate(out.data[i])
	}

	return out
}

// Dot returns Σ a[i]*b[i].
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//
// Complexity: O(n).
func Dot[T core.Scalar](a, b *Vector[T]) (T, error) {
	if err := sameLen(a, b); err != nil {
		return core.Zero[T](), vectorErrorf(opDot, err)
	}
	acc := core.Zero[T]()
	for i := range a.data {
		acc += a.data[i] * b.data[i]
	}

	return acc, nil
}
