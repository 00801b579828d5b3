// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for Adjugate and Inverse.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minimat/matrix"
)

func TestInverse_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]float64
		want [][]float64
	}{
		{"1x1", [][]float64{{4}}, [][]float64{{0.25}}},
		{"2·I2", [][]float64{{2, 0}, {0, 2}}, [][]float64{{0.5, 0}, {0, 0.5}}},
		{"2x2 unimodular", [][]float64{{2, 1}, {1, 1}}, [][]float64{{1, -1}, {-1, 2}}},
		{"3x3 unimodular", [][]float64{{1, 2, 0}, {0, 1, 0}, {3, 0, 1}}, [][]float64{{1, -2, 0}, {0, 1, 0}, {-3, 6, 1}}},
		{"3x3", [][]float64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}}, [][]float64{
			{0.649425287356322, 0.097701149425287, -0.655172413793103},
			{-0.781609195402299, -0.126436781609195, 0.965517241379310},
			{0.143678160919540, 0.074712643678161, -0.206896551724138},
		}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Inverse[float64](MustRows(t, tc.in))
			require.NoError(t, err)
			CompareClose(t, tc.want, got, 1e-12)
		})
	}
}

// TestInverse_Identities: A·A⁻¹ ≈ I and (A⁻¹)⁻¹ ≈ A on random float data.
func TestInverse_Identities(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 3; n++ {
		a := MustDense(t, n, n)
		RandomFill(t, a, int64(100+n))
		// Diagonal dominance keeps the random sample well away from singular.
		for i := 0; i < n; i++ {
			MustSet(t, a, i, i, MustAt(t, a, i, i)+4)
		}

		inv, err := matrix.InverseOf[float64](a)
		require.NoError(t, err)

		prod, err := matrix.Mul[float64](a, inv)
		require.NoError(t, err)
		ok, err := matrix.AllClose[float64](prod, IdentityDense[float64](t, n))
		require.NoError(t, err)
		require.Truef(t, ok, "A·A⁻¹ != I for n=%d:\n%s", n, prod)

		back, err := matrix.Inverse[float64](inv)
		require.NoError(t, err)
		ok, err = matrix.AllClose[float64](back, a)
		require.NoError(t, err)
		require.Truef(t, ok, "(A⁻¹)⁻¹ != A for n=%d", n)
	}
}

// TestInverse_IntegerUnimodular: exact integer inverses when det = ±1.
func TestInverse_IntegerUnimodular(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]int64{{1, 2, 0}, {0, 1, 0}, {3, 0, 1}})
	inv, err := matrix.Inverse[int64](a)
	require.NoError(t, err)
	CompareExact(t, [][]int64{{1, -2, 0}, {0, 1, 0}, {-3, 6, 1}}, inv)

	prod, err := matrix.Mul[int64](a, inv)
	require.NoError(t, err)
	CompareExact(t, IdentityDense[int64](t, 3).RawRows(), prod)
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Inverse[float64](MustRows(t, [][]float64{{1, -1}, {-1, 1}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Contains(t, err.Error(), "Inverse:")

	_, err = matrix.Inverse[float64](MustRows(t, [][]float64{{0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse[float64](MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// The size ceiling wins over singularity: a 4×4 zero matrix is unsupported, not singular.
	_, err = matrix.Inverse[float64](MustDense(t, 4, 4))
	require.ErrorIs(t, err, matrix.ErrUnsupportedDimension)

	_, err = matrix.Inverse[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdjugate(t *testing.T) {
	t.Parallel()

	adj, err := matrix.Adjugate[int64](MustRows(t, [][]int64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}}))
	require.NoError(t, err)
	CompareExact(t, [][]int64{{-113, -17, 114}, {136, 22, -168}, {-25, -13, 36}}, adj)

	one, err := matrix.Adjugate[int64](MustRows(t, [][]int64{{9}}))
	require.NoError(t, err)
	CompareExact(t, [][]int64{{1}}, one)

	a4 := MustRows(t, [][]int64{{1, 2, 3, 4}, {0, 1, 0, 2}, {2, 0, 1, 0}, {1, 1, 1, 1}})
	adj4, err := matrix.Adjugate[int64](a4)
	require.NoError(t, err)
	CompareExact(t, [][]int64{{-1, 2, 3, 0}, {-2, -1, -4, 10}, {2, -4, -1, 0}, {1, 3, 2, -5}}, adj4)

	// A·adj(A) == det(A)·I.
	prod, err := matrix.Mul[int64](a4, adj4)
	require.NoError(t, err)
	want, err := matrix.Scale[int64](IdentityDense[int64](t, 4), 5)
	require.NoError(t, err)
	CompareExact(t, want.RawRows(), prod)

	a5 := MustRows(t, [][]int64{{2, 0, 0, 0, 0}, {0, 3, 0, 0, 0}, {0, 0, 1, 0, 0}, {0, 0, 0, 1, 0}, {1, 0, 0, 0, 1}})
	adj5, err := matrix.Adjugate[int64](a5)
	require.NoError(t, err)
	CompareExact(t, [][]int64{{3, 0, 0, 0, 0}, {0, 2, 0, 0, 0}, {0, 0, 6, 0, 0}, {0, 0, 0, 6, 0}, {-3, 0, 0, 0, 6}}, adj5)

	_, err = matrix.Adjugate[int64](IdentityDense[int64](t, 6))
	require.ErrorIs(t, err, matrix.ErrUnsupportedDimension)
	_, err = matrix.Adjugate[int64](MustRows(t, [][]int64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestKernels_UnsignedZeros: zero entries produced by division or cofactor
// signs come out as +0 and print as "0.0".
func TestKernels_UnsignedZeros(t *testing.T) {
	t.Parallel()

	noNegZero := func(t *testing.T, m *matrix.Dense[float64]) {
		t.Helper()
		for i, row := range m.RawRows() {
			for j, v := range row {
				require.Falsef(t, v == 0 && math.Signbit(v), "entry (%d,%d) is -0", i, j)
			}
		}
	}

	rref, err := matrix.RowEchelon[float64](MustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	noNegZero(t, rref)
	require.Equal(t, "[1.0, 0.0]\n[0.0, 1.0]\n", rref.String())

	inv, err := matrix.Inverse[float64](MustRows(t, [][]float64{{2, 0}, {0, 2}}))
	require.NoError(t, err)
	noNegZero(t, inv)
	require.Equal(t, "[0.5, 0.0]\n[0.0, 0.5]\n", inv.String())

	adj, err := matrix.Adjugate[float64](MustRows(t, [][]float64{{3, 0, 0}, {0, 2, 0}, {0, 0, 1}}))
	require.NoError(t, err)
	noNegZero(t, adj)

	c, err := matrix.Cofactor[float64](IdentityDense[float64](t, 2), 0, 1)
	require.NoError(t, err)
	require.False(t, math.Signbit(c))
}
