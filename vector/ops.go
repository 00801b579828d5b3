// SPDX-License-Identifier: MIT

// Package vector - multi-vector operations.
//
// Purpose:
//   - LinearCombination: Σ coefs[k]·vs[k].
//   - AngleCos: cos θ = (u·v) / (‖u‖‖v‖).
//   - CrossProduct: u × v for 3D vectors.
//
// All functions validate fully before allocating the result.

package vector

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/minimat/core"
)

// crossDim is the only dimension for which CrossProduct is defined.
const crossDim = 3

// LinearCombination returns Σ coefs[k]·vs[k] as a new vector.
//
// Errors:
//   - ErrEmpty (no vectors), ErrDimensionMismatch (len(vs) != len(coefs) or
//     vectors of different lengths), ErrNilVector.
//
// Complexity: O(k·n) for k vectors of length n.
func LinearCombination[T core.Scalar](vs []*Vector[T], coefs []T) (*Vector[T], error) {
	if len(vs) == 0 {
		return nil, vectorErrorf(opLinearCombination, ErrEmpty)
	}
	if len(vs) != len(coefs) {
		return nil, vectorErrorf(opLinearCombination, ErrDimensionMismatch)
	}
	if lo.Contains(vs, nil) {
		return nil, vectorErrorf(opLinearCombination, ErrNilVector)
	}
	n := vs[0].Len()
	if !lo.EveryBy(vs, func(v *Vector[T]) bool { return v.Len() == n }) {
		return nil, vectorErrorf(opLinearCombination, ErrDimensionMismatch)
	}

	out := &Vector[T]{data: make([]T, n)}
	for k, v := range vs {
		c := coefs[k]
		for i, x := range v.data {
			out.data[i] += x * c
		}
	}

	return out, nil
}

// AngleCos returns the cosine of the angle between u and v.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch, ErrZeroNorm (either vector is zero).
//
// Complexity: O(n).
func AngleCos[T core.Scalar](u, v *Vector[T]) (float64, error) {
	dot, err := Dot(u, v)
	if err != nil {
		return 0, vectorErrorf(opAngleCos, err)
	}
	nu, nv := u.Norm(), v.Norm()
	if nu == 0 || nv == 0 {
		return 0, vectorErrorf(opAngleCos, ErrZeroNorm)
	}

	return float64(dot) / (nu * nv), nil
}

// CrossProduct returns u × v = [u1v2−u2v1, u2v0−u0v2, u0v1−u1v0].
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch (either operand is not 3D).
func CrossProduct[T core.Scalar](u, v *Vector[T]) (*Vector[T], error) {
	if err := sameLen(u, v); err != nil {
		return nil, vectorErrorf(opCrossProduct, err)
	}
	if u.Len() != crossDim {
		return nil, vectorErrorf(opCrossProduct, ErrDimensionMismatch)
	}
	a, b := u.data, v.data

	return &Vector[T]{data: []T{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}
