// SPDX-License-Identifier: MIT

package matrix

import "math"

// Rank returns the numerical rank of m (any shape) by Gaussian elimination
// with partial pivoting on a private copy.
// Implementation:
//   - Stage 1: validate non-nil; copy m into a scratch *Dense.
//   - Stage 2: for col = 0.. while rank < rows:
//     pivot = first row in [rank, rows) with the strictly largest |a[row][col]|;
//     |pivot| < tol → skip the column (rank unchanged);
//     otherwise swap the pivot row into position `rank` (columns col..cols-1),
//     subtract multiples of it from every row below, rank++.
//
// Behavior highlights:
//   - The input is never mutated.
//   - tol defaults to DefaultRankTolerance (1e-6); override with WithRankTolerance.
//   - 0×N and N×0 matrices have rank 0.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r*c).
func Rank(m Matrix, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	return rank(m, o.rankTol)
}

// rank is Rank with a resolved tolerance.
func rank(m Matrix, tol float64) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	a, err := denseCopyOf(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	rows, cols := a.r, a.c
	d := a.data
	var (
		r, col, i, j, pivot int
		factor              float64
	)
	for col = 0; col < cols && r < rows; col++ {
		pivot = r
		for i = r; i < rows; i++ {
			if math.Abs(d[i*cols+col]) > math.Abs(d[pivot*cols+col]) {
				pivot = i
			}
		}
		if math.Abs(d[pivot*cols+col]) < tol {
			continue
		}
		if pivot != r {
			for j = col; j < cols; j++ {
				d[r*cols+j], d[pivot*cols+j] = d[pivot*cols+j], d[r*cols+j]
			}
		}
		for i = r + 1; i < rows; i++ {
			factor = d[i*cols+col] / d[r*cols+col]
			for j = col; j < cols; j++ {
				d[i*cols+j] -= factor * d[r*cols+j]
			}
		}
		r++
	}

	return r, nil
}
