package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minimat/core"
	"github.com/katalvlaran/minimat/matrix"
	"github.com/katalvlaran/minimat/vector"
)

// matrixUnary parses args[0] as a matrix, applies op and prints the result.
func matrixUnary[T core.Scalar](cmd *cobra.Command, lit string, op func(*matrix.Dense[T]) (*matrix.Dense[T], error)) error {
	m, err := parseMatrix[T](lit)
	if err != nil {
		return err
	}
	out, err := op(m)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	return nil
}

func runDet[T core.Scalar](cmd *cobra.Command, args []string) error {
	m, err := parseMatrix[T](args[0])
	if err != nil {
		return err
	}
	d, err := matrix.Determinant[T](m)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), core.FormatScalar(d))

	return nil
}

func runTrace[T core.Scalar](cmd *cobra.Command, args []string) error {
	m, err := parseMatrix[T](args[0])
	if err != nil {
		return err
	}
	tr, err := matrix.Trace[T](m)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), core.FormatScalar(tr))

	return nil
}

func runRank[T core.Scalar](cmd *cobra.Command, args []string) error {
	m, err := parseMatrix[T](args[0])
	if err != nil {
		return err
	}
	r, err := matrix.Rank[T](m)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r)

	return nil
}

func runInv[T core.Scalar](cmd *cobra.Command, args []string) error {
	return matrixUnary(cmd, args[0], func(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return matrix.Inverse[T](m)
	})
}

func runRREF[T core.Scalar](cmd *cobra.Command, args []string) error {
	return matrixUnary(cmd, args[0], func(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return matrix.RowEchelon[T](m)
	})
}

func runTranspose[T core.Scalar](cmd *cobra.Command, args []string) error {
	return matrixUnary(cmd, args[0], func(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return matrix.Transpose[T](m)
	})
}

func runAdj[T core.Scalar](cmd *cobra.Command, args []string) error {
	return matrixUnary(cmd, args[0], func(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return matrix.Adjugate[T](m)
	})
}

func runMinor[T core.Scalar](cmd *cobra.Command, args []string) error {
	row, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	col, err := parseIndex(args[2])
	if err != nil {
		return err
	}

	return matrixUnary(cmd, args[0], func(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return matrix.Minor[T](m, row, col)
	})
}

// runMul multiplies A by B, or computes A·x when the second literal is a flat array.
func runMul[T core.Scalar](cmd *cobra.Command, args []string) error {
	a, err := parseMatrix[T](args[0])
	if err != nil {
		return err
	}
	if isVectorLiteral(args[1]) {
		x, err := parseVector[T](args[1])
		if err != nil {
			return err
		}
		y, err := matrix.MatVec[T](a, x)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), y)

		return nil
	}
	b, err := parseMatrix[T](args[1])
	if err != nil {
		return err
	}
	p, err := matrix.Mul[T](a, b)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), p)

	return nil
}

// vectorPair parses two vector literals.
func vectorPair[T core.Scalar](args []string) (*vector.Vector[T], *vector.Vector[T], error) {
	u, err := parseVector[T](args[0])
	if err != nil {
		return nil, nil, err
	}
	v, err := parseVector[T](args[1])
	if err != nil {
		return nil, nil, err
	}

	return u, v, nil
}

func runDot[T core.Scalar](cmd *cobra.Command, args []string) error {
	u, v, err := vectorPair[T](args)
	if err != nil {
		return err
	}
	d, err := vector.Dot(u, v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), core.FormatScalar(d))

	return nil
}

func runCross[T core.Scalar](cmd *cobra.Command, args []string) error {
	u, v, err := vectorPair[T](args)
	if err != nil {
		return err
	}
	w, err := vector.CrossProduct(u, v)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), w)

	return nil
}

func runAngle[T core.Scalar](cmd *cobra.Command, args []string) error {
	u, v, err := vectorPair[T](args)
	if err != nil {
		return err
	}
	c, err := vector.AngleCos(u, v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), c)

	return nil
}

func runNorms[T core.Scalar](cmd *cobra.Command, args []string) error {
	u, err := parseVector[T](args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "norm_1   %s\n", core.FormatScalar(u.Norm1()))
	fmt.Fprintf(w, "norm     %s\n", core.FormatScalar(u.Norm()))
	fmt.Fprintf(w, "norm_inf %s\n", core.FormatScalar(u.NormInf()))

	return nil
}

// runLinComb computes Σ coefs[k]·vs[k]; VECTORS is a JSON list of arrays.
func runLinComb[T core.Scalar](cmd *cobra.Command, args []string) error {
	var raw [][]float64
	if err := json.Unmarshal([]byte(args[0]), &raw); err != nil {
		return fmt.Errorf("%w: vectors %q: %v", errParse, args[0], err)
	}
	vs := make([]*vector.Vector[T], len(raw))
	for k, r := range raw {
		conv, err := convert[T](r)
		if err != nil {
			return fmt.Errorf("vector %d: %w", k, err)
		}
		if vs[k], err = vector.FromSlice(conv); err != nil {
			return fmt.Errorf("vector %d: %w", k, err)
		}
	}
	coefs, err := parseVector[T](args[1])
	if err != nil {
		return err
	}
	out, err := vector.LinearCombination(vs, coefs.Data())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	return nil
}
