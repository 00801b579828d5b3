// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Gauss–Jordan reduction to reduced row-echelon form (RowEchelon) and the
//     rank estimate derived from it (Rank).
//
// Determinism & Policy:
//   - Pivot search is "first nonzero scanning downward" with EXACT comparison
//     against zero. No partial pivoting, no tolerance.
//   - The input is never mutated; all work happens on a private copy.
//
// AI-Hints:
//   - For integer T every division truncates toward zero, so the result is the
//     integer image of the float reduction only when every pivot divides its row.
//   - Float results may contain tiny residues (1e-17) instead of zeros; Rank
//     counts such rows as nonzero.

package matrix

import "github.com/katalvlaran/minimat/core"

// RowEchelon returns the reduced row-echelon form of m as a new matrix of the same shape.
// MAIN DESCRIPTION:
//   - Every pivot is 1, every other entry of a pivot column is 0, pivots move
//     strictly right going down, and zero rows collect at the bottom.
//
// Implementation:
//   - Stage 1: validate non-nil; copy m into a private *Dense[T].
//   - Stage 2: for each row r, scan column `lead` downward from r for the first
//     nonzero entry; when the column has none, advance `lead` and retry the
//     same r. Stop when lead reaches Cols.
//   - Stage 3: swap the found row into r, divide row r by its pivot, then
//     subtract m[i][lead]·row r from every other row i.
//
// Behavior highlights:
//   - All-zero columns are skipped without consuming a row.
//   - Extra rows end as zero rows at the bottom.
//
// Inputs:
//   - m: any shape.
//
// Returns:
//   - *Dense[T]: RREF(m), fresh allocation.
//
// Errors:
//   - ErrNilMatrix. Any non-nil matrix reduces successfully.
//
// Determinism:
//   - Fixed r→lead→i order; identical input yields identical output.
//
// Complexity:
//   - Time O(M·N·min(M,N)), Space O(M·N).
//
// AI-Hints:
//   - RowEchelon is idempotent: RowEchelon(RowEchelon(A)) == RowEchelon(A).
func RowEchelon[T core.Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}
	out := d.clone()
	reduceInPlace(out)
	out.unsignZeros()

	return out, nil
}

// reduceInPlace runs Gauss–Jordan elimination on d's buffer.
func reduceInPlace[T core.Scalar](d *Dense[T]) {
	rows, cols := d.r, d.c
	lead := 0
	var r, i, j int
	var pivot, factor T
	for r = 0; r < rows; r++ {
		if lead >= cols {
			return
		}
		// First nonzero at or below r in column lead; empty columns advance lead only.
		i = r
		for core.IsZero(d.data[i*cols+lead]) {
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return
				}
			}
		}
		d.swapRows(i, r)

		pivot = d.data[r*cols+lead]
		for j = 0; j < cols; j++ {
			d.data[r*cols+j] /= pivot
		}

		for i = 0; i < rows; i++ {
			if i == r {
				continue
			}
			factor = d.data[i*cols+lead]
			if core.IsZero(factor) {
				continue
			}
			for j = 0; j < cols; j++ {
				d.data[i*cols+j] -= factor * d.data[r*cols+j]
			}
		}
		lead++
	}
}

// unsignZeros rewrites every -0 entry as +0.
func (m *Dense[T]) unsignZeros() {
	for k, v := range m.data {
		m.data[k] = core.Unsign(v)
	}
}

// swapRows exchanges rows a and b in place (no-op when a == b).
func (m *Dense[T]) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// Rank returns the number of nonzero rows of RowEchelon(m).
// MAIN DESCRIPTION:
//   - Rank = Rows − #rows whose every entry is exactly zero.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(M·N·min(M,N)), Space O(M·N) for the reduced copy.
//
// Notes:
//   - Works for any shape; 0 ≤ Rank ≤ min(Rows, Cols).
func Rank[T core.Scalar](m Matrix[T]) (int, error) {
	red, err := RowEchelon(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	zeroRows := 0
	for i := 0; i < red.r; i++ {
		if red.rowIsZero(i) {
			zeroRows++
		}
	}

	return red.r - zeroRows, nil
}

// rowIsZero reports whether every entry of row i is exactly zero.
func (m *Dense[T]) rowIsZero(i int) bool {
	for _, v := range m.data[i*m.c : (i+1)*m.c] {
		if !core.IsZero(v) {
			return false
		}
	}

	return true
}
