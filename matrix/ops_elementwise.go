// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Approximate element-wise comparison (AllClose) used by tests, examples and
//     the CLI to check A·A⁻¹ ≈ I and similar identities.
//
// Determinism & Performance:
//   - Flat 0..n-1 loop over the row-major buffers; early exit on first violation.
//   - Differences are evaluated in float64 regardless of T.

package matrix

import (
	"math"

	"github.com/katalvlaran/minimat/core"
)

// AllClose reports whether |a[i,j] − b[i,j]| ≤ eps + rtol·|b[i,j]| for every cell.
// MAIN DESCRIPTION:
//   - Tolerances come from WithEpsilon (default DefaultEpsilon) and
//     WithRelTolerance (default DefaultRelTolerance).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape mismatch).
//
// Determinism:
//   - Fixed flat order; the first violation short-circuits.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
//
// AI-Hints:
//   - For integer T the default eps makes AllClose an exact comparison.
func AllClose[T core.Scalar](a, b Matrix[T], opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return ewAllClose(a, b, o.rtol, o.eps)
}

// ewAllClose is the tolerance kernel behind AllClose. Tolerances are already
// validated by the option constructors.
func ewAllClose[T core.Scalar](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var diff, absb float64
	for idx := range da.data {
		diff = float64(da.data[idx]) - float64(db.data[idx])
		if diff < 0 {
			diff = -diff
		}
		absb = float64(core.Abs(db.data[idx]))
		if math.IsNaN(diff) || diff > atol+rtol*absb { // NaN never compares close
			return false, nil
		}
	}

	return true, nil
}
