// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/minimat/core"
)

// Norm1 returns the Manhattan norm Σ|x_i|.
// All three norms treat a nil vector as empty and return zero.
func (v *Vector[T]) Norm1() T {
	acc := core.Zero[T]()
	if v == nil {
		return acc
	}
	for _, x := range v.data {
		acc += core.Abs(x)
	}

	return acc
}

// Norm returns the Euclidean norm √(Σx_i²).
// Squares are accumulated in float64, so narrow integer types cannot overflow.
func (v *Vector[T]) Norm() float64 {
	if v == nil {
		return 0
	}
	var acc, f float64
	for _, x := range v.data {
		f = float64(x)
		acc += f * f
	}

	return math.Sqrt(acc)
}

// NormInf returns the supremum norm max|x_i|, folded from zero.
func (v *Vector[T]) NormInf() T {
	acc := core.Zero[T]()
	if v == nil {
		return acc
	}
	for _, x := range v.data {
		acc = core.Max(acc, core.Abs(x))
	}

	return acc
}
