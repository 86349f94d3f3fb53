// SPDX-License-Identifier: MIT

// Package algebra is a small dense-matrix toolkit: construction, arithmetic,
// transpose, determinant, inverse, rank, trace and a fixed-width report.
//
// What is inside?
//
//	matrix/        Dense storage, kernels, the Engine facade with slog
//	               diagnostics and Prometheus metrics, gonum interop
//	config/        YAML configuration: logging, tolerances, named matrices
//	logging/       construction of the structured *slog.Logger
//	cmd/algebra/   cobra command line over configured matrices
//
// Why these algorithms?
//
//   - Determinant and inverse use cofactor (Laplace) expansion and the
//     adjugate. Results match textbook rounding exactly; the cost is O(n!),
//     so keep n small (n ≤ 10 is comfortable).
//   - Rank uses Gaussian elimination with partial pivoting on a copy.
//   - For large systems convert with matrix.ToGonum and use gonum's LU/QR.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	inv, _ := matrix.Inverse(a)
//	_ = matrix.Fprint(os.Stdout, inv)
//	// -2.00   1.00
//	// 1.50    -0.50
//
//	go get github.com/katalvlaran/algebra
package algebra
