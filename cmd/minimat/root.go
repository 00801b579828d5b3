package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"
)

// runner executes one subcommand for a fixed scalar type.
type runner func(cmd *cobra.Command, args []string) error

// newRootCmd assembles the command tree writing results to stdout and logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := newConfig()

	root := &cobra.Command{
		Use:           "minimat",
		Short:         "Small linear-algebra toolkit: determinants, inverses, rank, RREF, vector ops",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.resolve(cmd.Flags(), stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	cfg.bindFlags(root.PersistentFlags())

	root.AddCommand(
		scalarCommand(cfg, "det MATRIX", "Determinant of a square matrix (N ≤ 4)", 1, runDet[float64], runDet[int64]),
		scalarCommand(cfg, "inv MATRIX", "Inverse of a nonsingular square matrix (N ≤ 3)", 1, runInv[float64], runInv[int64]),
		scalarCommand(cfg, "rank MATRIX", "Rank of a matrix of any shape", 1, runRank[float64], runRank[int64]),
		scalarCommand(cfg, "rref MATRIX", "Reduced row-echelon form", 1, runRREF[float64], runRREF[int64]),
		scalarCommand(cfg, "trace MATRIX", "Sum of the diagonal of a square matrix", 1, runTrace[float64], runTrace[int64]),
		scalarCommand(cfg, "transpose MATRIX", "Transpose of a matrix", 1, runTranspose[float64], runTranspose[int64]),
		scalarCommand(cfg, "minor MATRIX ROW COL", "Matrix without the given row and column", 3, runMinor[float64], runMinor[int64]),
		scalarCommand(cfg, "adj MATRIX", "Adjugate (transposed cofactor matrix, N ≤ 5)", 1, runAdj[float64], runAdj[int64]),
		scalarCommand(cfg, "mul A B", "Matrix product A×B, or matrix-vector product when B is a flat array", 2, runMul[float64], runMul[int64]),
		scalarCommand(cfg, "dot U V", "Dot product of two vectors", 2, runDot[float64], runDot[int64]),
		scalarCommand(cfg, "cross U V", "Cross product of two 3D vectors", 2, runCross[float64], runCross[int64]),
		scalarCommand(cfg, "norms U", "Manhattan, Euclidean and supremum norms", 1, runNorms[float64], runNorms[int64]),
		scalarCommand(cfg, "angle U V", "Cosine of the angle between two vectors", 2, runAngle[float64], runAngle[int64]),
		scalarCommand(cfg, "lincomb VECTORS COEFS", "Linear combination Σ c_k·v_k of a JSON list of vectors", 2, runLinComb[float64], runLinComb[int64]),
		demoCommand(cfg),
	)

	return root
}

// scalarCommand builds a subcommand that dispatches to the float64 or int64
// runner depending on --int, and logs the outcome.
func scalarCommand(cfg *config, use, short string, nargs int, f64, i64 runner) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			run := f64
			if cfg.intMode {
				run = i64
			}

			return logged(cfg, cmd, args, run)
		},
	}
}

// logged runs fn and reports its outcome through the configured logger.
func logged(cfg *config, cmd *cobra.Command, args []string, fn runner) error {
	start := time.Now()
	cfg.logger.Debug("command started", "cmd", cmd.Name(), "args", args, "int", cfg.intMode)
	if err := fn(cmd, args); err != nil {
		cfg.logger.Error("command failed", "cmd", cmd.Name(), "err", err)

		return err
	}
	cfg.logger.Info("command finished", "cmd", cmd.Name(), "elapsed", time.Since(start))

	return nil
}
