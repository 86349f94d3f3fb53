// SPDX-License-Identifier: MIT

// Package matrix: conversions between Matrix implementations.
package matrix

import "fmt"

// DenseOf returns an independent *Dense copy of any Matrix.
// A *Dense input is cloned directly; other implementations are read via At.
//
// Errors:
//   - ErrNilMatrix for nil input; At failures are wrapped with coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func DenseOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	return denseCopyOf(m)
}

// denseCopyOf is DenseOf without the nil guard; callers validate first.
func denseCopyOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opDenseOf, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
