// SPDX-License-Identifier: MIT

// Package matrix is a small dense-matrix algebra library.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix sized exactly to rows×cols, behind
//     the Matrix interface (Rows/Cols/At/Set/Clone).
//   - Element-wise and structural kernels: Add, Sub, Mul, Scale, Transpose.
//   - Square-matrix kernels: Det (cofactor expansion), Inverse (adjugate),
//     Trace, plus the Minor/Cofactor/Adjugate building blocks.
//   - Rank via Gaussian elimination with partial pivoting, for any shape.
//   - Fprint/Format for the fixed-width diagnostic dump ("%-8.2f" per cell).
//   - Engine, a facade that logs failed preconditions to an injected slog
//     sink, records Prometheus metrics and always returns a well-formed
//     sentinel (0×0 matrix or 0) next to the structured error.
//
// Every kernel takes its operands by interface, never mutates them, and
// returns a freshly allocated *Dense. Errors are package sentinels wrapped
// with the operation name; match them with errors.Is or classify them with
// KindOf.
//
// Det and Inverse are intentionally O(n!) and O(n²·n!): they reproduce the
// rounding of textbook Laplace expansion and are meant for small matrices.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	inv, err := matrix.Inverse(a) // [[-2, 1], [1.5, -0.5]]
package matrix
