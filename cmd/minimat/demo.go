package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minimat/core"
	"github.com/katalvlaran/minimat/matrix"
	"github.com/katalvlaran/minimat/vector"
)

// demoStep is one labelled computation of the demo walk-through.
type demoStep struct {
	title string
	run   func(w io.Writer) error
}

// demoCommand prints a fixed walk-through of the library on known inputs.
func demoCommand(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a fixed walk-through of every decomposition (always float64)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return logged(cfg, cmd, args, func(cmd *cobra.Command, _ []string) error {
				return runDemo(cmd.OutOrStdout(), demoSteps())
			})
		},
	}
}

func runDemo(w io.Writer, steps []demoStep) error {
	for _, s := range steps {
		fmt.Fprintf(w, "# %s\n", s.title)
		if err := s.run(w); err != nil {
			return fmt.Errorf("%s: %w", s.title, err)
		}
	}

	return nil
}

func demoSteps() []demoStep {
	return []demoStep{
		{"rref [[1,2],[3,4]]", printMatrix(matrix.RowEchelon[float64], [][]float64{{1, 2}, {3, 4}})},
		{"rref [[1,2],[2,4]]", printMatrix(matrix.RowEchelon[float64], [][]float64{{1, 2}, {2, 4}})},
		{"rref 3x5", printMatrix(matrix.RowEchelon[float64], [][]float64{
			{8, 5, -2, 4, 28},
			{4, 2.5, 20, 4, -4},
			{8, 5, 1, 4, 17},
		})},
		{"det [[1,-1],[-1,1]]", printDet([][]float64{{1, -1}, {-1, 1}})},
		{"det 2·I3", printDet([][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}})},
		{"det 3x3", printDet([][]float64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}})},
		{"det 4x4", printDet([][]float64{{8, 5, -2, 4}, {4, 2.5, 20, 4}, {8, 5, 1, 4}, {28, -4, 17, 1}})},
		{"inverse 2·I2", printMatrix(matrix.Inverse[float64], [][]float64{{2, 0}, {0, 2}})},
		{"inverse 3x3", printMatrix(matrix.Inverse[float64], [][]float64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}})},
		{"rank [[1,2,0,0],[2,4,0,0],[-1,2,1,1]]", printRank([][]float64{{1, 2, 0, 0}, {2, 4, 0, 0}, {-1, 2, 1, 1}})},
		{"cross [4,2,-3]×[-2,-5,16]", printCross([]float64{4, 2, -3}, []float64{-2, -5, 16})},
	}
}

func printMatrix(op func(matrix.Matrix[float64]) (*matrix.Dense[float64], error), rows [][]float64) func(io.Writer) error {
	return func(w io.Writer) error {
		m, err := matrix.FromRows(rows)
		if err != nil {
			return err
		}
		out, err := op(m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)

		return err
	}
}

func printDet(rows [][]float64) func(io.Writer) error {
	return func(w io.Writer) error {
		m, err := matrix.FromRows(rows)
		if err != nil {
			return err
		}
		d, err := matrix.Determinant[float64](m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, core.FormatScalar(d))

		return err
	}
}

func printRank(rows [][]float64) func(io.Writer) error {
	return func(w io.Writer) error {
		m, err := matrix.FromRows(rows)
		if err != nil {
			return err
		}
		r, err := matrix.Rank[float64](m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, r)

		return err
	}
}

func printCross(a, b []float64) func(io.Writer) error {
	return func(w io.Writer) error {
		u, err := vector.FromSlice(a)
		if err != nil {
			return err
		}
		v, err := vector.FromSlice(b)
		if err != nil {
			return err
		}
		x, err := vector.CrossProduct(u, v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, x)

		return err
	}
}
