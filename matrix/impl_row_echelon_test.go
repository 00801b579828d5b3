// SPDX-License-Identifier: MIT
// Package matrix_test contains tests for RowEchelon and Rank.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/minimat/matrix"
)

// EchelonSuite groups the reduced row-echelon and rank scenarios.
type EchelonSuite struct {
	suite.Suite
}

func TestEchelonSuite(t *testing.T) {
	suite.Run(t, new(EchelonSuite))
}

func (s *EchelonSuite) TestKnownForms() {
	tests := []struct {
		name string
		in   [][]float64
		want [][]float64
	}{
		{"identity 3x3", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
		{"full rank 2x2", [][]float64{{1, 2}, {3, 4}}, [][]float64{{1, 0}, {0, 1}}},
		{"dependent rows", [][]float64{{1, 2}, {2, 4}}, [][]float64{{1, 2}, {0, 0}}},
		{"zero first column", [][]float64{{0, 2}, {0, 4}}, [][]float64{{0, 1}, {0, 0}}},
		{"swap needed", [][]float64{{0, 1}, {1, 0}}, [][]float64{{1, 0}, {0, 1}}},
		{"all zero", [][]float64{{0, 0}, {0, 0}}, [][]float64{{0, 0}, {0, 0}}},
		{"1x1 scale", [][]float64{{5}}, [][]float64{{1}}},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			got, err := matrix.RowEchelon[float64](MustRows(s.T(), tc.in))
			s.Require().NoError(err)
			CompareExact(s.T(), tc.want, got)
		})
	}
}

// TestWideMatrix reduces a 3×5 system whose second column has no pivot.
func (s *EchelonSuite) TestWideMatrix() {
	in := MustRows(s.T(), [][]float64{
		{8, 5, -2, 4, 28},
		{4, 2.5, 20, 4, -4},
		{8, 5, 1, 4, 17},
	})
	got, err := matrix.RowEchelon[float64](in)
	s.Require().NoError(err)
	CompareClose(s.T(), [][]float64{
		{1, 0.625, 0, 0, -12.1666666666666667},
		{0, 0, 1, 0, -3.6666666666666667},
		{0, 0, 0, 1, 29.5},
	}, got, closeTol)
}

// TestTallMatrix: extra rows end as zero rows at the bottom.
func (s *EchelonSuite) TestTallMatrix() {
	got, err := matrix.RowEchelon[float64](MustRows(s.T(), [][]float64{{0, 1}, {1, 0}, {1, 1}}))
	s.Require().NoError(err)
	CompareExact(s.T(), [][]float64{{1, 0}, {0, 1}, {0, 0}}, got)
}

// TestInputUntouched: RowEchelon works on a private copy.
func (s *EchelonSuite) TestInputUntouched() {
	in := MustRows(s.T(), [][]float64{{2, 4}, {1, 3}})
	_, err := matrix.RowEchelon[float64](in)
	s.Require().NoError(err)
	CompareExact(s.T(), [][]float64{{2, 4}, {1, 3}}, in)
}

// TestIdempotent: RowEchelon(RowEchelon(A)) == RowEchelon(A) on random data.
func (s *EchelonSuite) TestIdempotent() {
	for _, shape := range [][2]int{{3, 3}, {2, 5}, {5, 2}, {4, 4}} {
		s.Run(fmt.Sprintf("%dx%d", shape[0], shape[1]), func() {
			a := MustDense(s.T(), shape[0], shape[1])
			RandomFill(s.T(), a, int64(shape[0]*10+shape[1]))

			once, err := matrix.RREF[float64](a)
			s.Require().NoError(err)
			twice, err := matrix.RowEchelon[float64](once)
			s.Require().NoError(err)
			CompareClose(s.T(), once.RawRows(), twice, closeTol)
		})
	}
}

// TestNonDenseInput runs the reduction through the copy path.
func (s *EchelonSuite) TestNonDenseInput() {
	got, err := matrix.RowEchelon[float64](hide[float64]{MustRows(s.T(), [][]float64{{1, 2}, {2, 4}})})
	s.Require().NoError(err)
	CompareExact(s.T(), [][]float64{{1, 2}, {0, 0}}, got)
}

func (s *EchelonSuite) TestNil() {
	_, err := matrix.RowEchelon[float64](nil)
	s.Require().ErrorIs(err, matrix.ErrNilMatrix)
	_, err = matrix.Rank[float64](nil)
	s.Require().ErrorIs(err, matrix.ErrNilMatrix)
}

func (s *EchelonSuite) TestRank() {
	tests := []struct {
		name string
		in   [][]float64
		want int
	}{
		{"identity 3", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 3},
		{"3x4 rank 2", [][]float64{{1, 2, 0, 0}, {2, 4, 0, 0}, {-1, 2, 1, 1}}, 2},
		{"4x3 full", [][]float64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}, {21, 18, 7}}, 3},
		{"zero 2x3", [][]float64{{0, 0, 0}, {0, 0, 0}}, 0},
		{"single row", [][]float64{{0, 3, 0}}, 1},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			got, err := matrix.Rank[float64](MustRows(s.T(), tc.in))
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

// TestRankIdentityAndZeros covers Rank(I_N) == N and Rank(0) == 0.
func (s *EchelonSuite) TestRankIdentityAndZeros() {
	for n := 1; n <= 5; n++ {
		r, err := matrix.Rank[float64](IdentityDense[float64](s.T(), n))
		s.Require().NoError(err)
		s.Equal(n, r)

		r, err = matrix.Rank[float64](MustDense(s.T(), n, n+1))
		s.Require().NoError(err)
		s.Equal(0, r)
	}
}

// TestIntegerReduction: integer matrices reduce exactly when pivots divide their rows.
func TestIntegerReduction(t *testing.T) {
	got, err := matrix.RowEchelon[int64](MustRows(t, [][]int64{{2, 4}, {3, 6}}))
	require.NoError(t, err)
	CompareExact(t, [][]int64{{1, 2}, {0, 0}}, got)

	rank, err := matrix.Rank[int64](MustRows(t, [][]int64{{1, 0}, {0, 1}}))
	require.NoError(t, err)
	require.Equal(t, 2, rank)
}
