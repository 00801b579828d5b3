// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/minimat/core"
	"github.com/katalvlaran/minimat/matrix"
)

// closeTol is the default float tolerance for identity checks in tests.
const closeTol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix[T] to forward all methods.
//   - Stage 2: Use hide[T]{X} in tests to force the copy-through-At path.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense.
type hide[T core.Scalar] struct{ matrix.Matrix[T] }

// MustDense ALLOCATES an r×c *Dense[float64] or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a *Dense[T] from a nested literal or fails the test.
// Implementation:
//   - Stage 1: matrix.FromRows(rows).
//   - Stage 2: t.Fatalf on error.
//
// Determinism:
//   - Deterministic fill order.
//
// AI-Hints:
//   - Use with CompareExact for integer matrices and CompareClose for floats.
func MustRows[T core.Scalar](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity *Dense[T].
func IdentityDense[T core.Scalar](t *testing.T, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewIdentity[T](n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// RandomFill FILLS a float Matrix with deterministic U(-1,1) values by seed.
// Complexity: Time O(r*c), Space O(1) extra.
func RandomFill(t *testing.T, m matrix.Matrix[float64], seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}
}

// MustSet WRITES v at (i,j) or fails the test.
func MustSet[T core.Scalar](t *testing.T, m matrix.Matrix[T], i, j int, v T) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS (i,j) or fails the test.
func MustAt[T core.Scalar](t *testing.T, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS m equals want cell by cell, reporting a go-cmp diff.
// Notes:
//   - Exact equality; suitable for integer T and float results that are
//     exactly representable (0.5, 2.0, ...).
func CompareExact[T core.Scalar](t *testing.T, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	if diff := cmp.Diff(want, m.RawRows()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// CompareClose ASSERTS m ≈ want within an absolute tolerance, via go-cmp.
func CompareClose(t *testing.T, want [][]float64, m *matrix.Dense[float64], atol float64) {
	t.Helper()
	if diff := cmp.Diff(want, m.RawRows(), cmpopts.EquateApprox(0, atol)); diff != "" {
		t.Fatalf("matrix mismatch beyond %g (-want +got):\n%s", atol, diff)
	}
}

// AssertErrorIs FAILS the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}

// ExpectPanic FAILS the test unless fn panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// mustDenseB is the benchmark twin of MustDense, filled with U(-1,1) by seed.
func mustDenseB(b *testing.B, r, c int, seed int64) *matrix.Dense[float64] {
	b.Helper()
	m, err := matrix.NewDense[float64](r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for k := 0; k < r*c; k++ {
		_ = m.SetIndex(k, rng.Float64()*2-1)
	}

	return m
}
