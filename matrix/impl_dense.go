// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced), the building block of Minor.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) per instance.
//
// AI-Hints:
//   - Kernels operate on the flat data slice of *Dense[T] directly; any other
//     Matrix[T] is first copied by asDense.
//   - Use Induced(rows, cols) to materialize a submatrix with independent lifetime.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/minimat/core"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxAtIndex  = "AtIndex"  // flat accessor tag
	ctxSetIndex = "SetIndex" // flat accessor tag
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxInduce   = "Induced"  // ctor/tag for Dense.Induced
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of scalars of type T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set/Apply (no-op for integer T).
type Dense[T core.Scalar] struct {
	r, c           int  // row and column counts (>=1 for public constructors)
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int64]   = (*Dense[int64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (numeric policy).
//   - Stage 3: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Empty shapes are rejected: every public matrix has at least one cell.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T core.Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseLike allocates a zero rows×cols matrix that inherits the numeric
// policy of src. Internal: callers guarantee positive dimensions.
func newDenseLike[T core.Scalar](src *Dense[T], rows, cols int) *Dense[T] {
	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		validateNaNInf: src.validateNaNInf,
	}
}

// asDense returns m itself when it is a *Dense[T], otherwise a *Dense[T]
// copy populated through the interface accessors.
// Callers must have validated m with ValidateNotNil.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense[T core.Scalar](m Matrix[T]) (*Dense[T], error) {
	if d, ok := m.(*Dense[T]); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	out := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), validateNaNInf: DefaultValidateNaNInf}
	var (
		i, j int
		v    T
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// IsNil reports whether m is a nil *Dense[T]. Safe on a nil receiver.
func (m *Dense[T]) IsNil() bool { return m == nil }

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare sentinel; public methods add context.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped with "Dense.At(i,j)").
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return core.Zero[T](), denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values under policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !core.IsFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// AtIndex reads the element at flat row-major position k (k = i*cols + j).
// Errors: ErrOutOfRange when k ∉ [0, rows*cols).
func (m *Dense[T]) AtIndex(k int) (T, error) {
	if k < 0 || k >= len(m.data) {
		return core.Zero[T](), fmt.Errorf("Dense.%s(%d): %w", ctxAtIndex, k, ErrOutOfRange)
	}

	return m.data[k], nil
}

// SetIndex writes v at flat row-major position k, honoring the numeric policy.
// Errors: ErrOutOfRange, ErrNaNInf.
func (m *Dense[T]) SetIndex(k int, v T) error {
	if k < 0 || k >= len(m.data) {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetIndex, k, ErrOutOfRange)
	}
	if m.validateNaNInf && !core.IsFinite(v) {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetIndex, k, ErrNaNInf)
	}
	m.data[k] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// The returned dynamic type is *Dense[T].
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] {
	return m.clone()
}

// clone is the typed variant used by kernels that need *Dense[T] back.
func (m *Dense[T]) clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// RawRows returns the contents as a freshly allocated slice of rows.
// Mutating the result does not affect m.
// Complexity: O(r*c).
func (m *Dense[T]) RawRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders one line per row: "[a, b, c]\n", every value with one
// decimal place ("1.0", "-0.5").
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(core.FormatScalar(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed, order kept).
//
// Implementation:
//   - Stage 1: reject empty index sets (public matrices are never empty).
//   - Stage 2: allocate result inheriting the base numeric policy.
//   - Stage 3: nested loops with direct offset math; bounds-check each index.
//
// Errors:
//   - ErrInvalidDimensions (empty index set), ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
//
// AI-Hints:
//   - Minor(m, i, j) is Induced with row i and column j left out.
func (m *Dense[T]) Induced(rowsIdx, colsIdx []int) (*Dense[T], error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	if rp == 0 || cp == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, ErrInvalidDimensions)
	}
	res := newDenseLike(m, rp, cp)

	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only; stops early when f returns false.
// Complexity: O(r*c) time, O(1) space.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value under policy.
//
// Notes:
//   - For all-or-nothing semantics, transform a clone and swap on success.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	var i, j, base int
	var nv T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && !core.IsFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
