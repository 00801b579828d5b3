// Package minimat is a small linear-algebra toolkit over generic scalars:
// fixed-length vectors, fixed-shape matrices and a closed-form
// decomposition engine.
//
// What is inside:
//
//	core/        the Scalar contract (signed integers and floats) + helpers
//	vector/      Vector[T]: arithmetic, dot product, norms, cross product
//	matrix/      Dense[T]: arithmetic, RowEchelon, Determinant, Inverse, Rank
//	cmd/minimat  command-line harness over matrix/ and vector/
//
// Design rules:
//
//   - Shapes are fixed at construction and validated once.
//   - No panics on user data: every failure is a sentinel error.
//   - Deterministic: fixed loop orders, exact pivot and singularity tests.
//   - Integer instantiations are exact except for division, which truncates.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{2, 0}, {0, 2}})
//	inv, _ := matrix.Inverse(a) // [[0.5, 0.0], [0.0, 0.5]]
//
//	go get github.com/katalvlaran/minimat
package minimat
