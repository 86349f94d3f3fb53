// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand matrices to gonum for work this package deliberately does not do
//     (LU/QR, eigen-solvers, BLAS-backed products) and bring results back.
//   - Both directions copy; no storage is shared across the boundary.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// A zero-area m yields an empty (zero-value) *mat.Dense, since gonum does
// not allocate 0-length matrices.
//
// Errors:
//   - ErrNilMatrix; At failures for non-Dense inputs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return new(mat.Dense), nil
	}

	d, err := denseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	// d is already a private copy; gonum may own its buffer.
	return mat.NewDense(rows, cols, d.data), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// An empty gonum matrix yields the 0×0 Dense.
//
// Errors:
//   - ErrNilMatrix when g is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("nil gonum matrix: %w", ErrNilMatrix))
	}
	if e, ok := g.(interface{ IsEmpty() bool }); ok && e.IsEmpty() {
		return Empty(), nil
	}

	rows, cols := g.Dims()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = g.At(i, j)
		}
	}

	return out, nil
}
