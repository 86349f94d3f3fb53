// SPDX-License-Identifier: MIT

// Package matrix - cofactor kernels: Minor, Cofactor, Det, Adjugate, Inverse.
//
// Purpose:
//   - Determinant by Laplace (cofactor) expansion along row 0, recursively.
//   - Inverse by the classical adjugate method: inv[j][i] = C(i,j) / det.
//
// Determinism & numeric policy:
//   - Fixed k-loop order; the expansion term is evaluated as (sign*a[0][k])*det(minor).
//   - The recursion allocates one (n-1)×(n-1) minor per term.
//   - No LU shortcut: results reproduce textbook cofactor rounding exactly.
//
// Complexity quicksheet:
//   - Det: O(n!) time, O(n²) live memory along one recursion path.
//   - Inverse/Adjugate: O(n² · (n-1)!) time.
//   - Do not call these on large matrices.

package matrix

import (
	"fmt"
	"math"
)

// minorOf returns the (n-1)×(n-1) matrix obtained by deleting row and col
// from the square d. Indices must already be valid.
func minorOf(d *Dense, row, col int) *Dense {
	n := d.r
	m := n - 1
	out := &Dense{r: m, c: m, data: make([]float64, m*m), validateNaNInf: d.validateNaNInf}
	var i, j, mi, mj int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		mj = 0
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			out.data[mi*m+mj] = d.data[i*n+j]
			mj++
		}
		mi++
	}

	return out
}

// cofactorSign returns +1 when p is even and -1 otherwise.
func cofactorSign(p int) float64 {
	if p%2 == 0 {
		return 1
	}
	return -1
}

// det is the recursive Laplace expansion along row 0 over a square *Dense.
// The 0×0 matrix has determinant 1 (empty product); 1×1 returns its element.
func det(d *Dense) float64 {
	n := d.r
	switch n {
	case 0:
		return 1
	case 1:
		return d.data[0]
	}

	acc := 0.0
	for k := 0; k < n; k++ {
		acc += cofactorSign(k) * d.data[k] * det(minorOf(d, 0, k))
	}

	return acc
}

// cofactorOf returns (-1)^(i+j) * det(minor(i,j)).
func cofactorOf(d *Dense, i, j int) float64 {
	return cofactorSign(i+j) * det(minorOf(d, i, j))
}

// Minor returns the submatrix of a square m with row i and column j deleted.
// Implementation:
//   - Stage 1: validate non-nil, square, and 0≤i,j<n.
//   - Stage 2: materialize via Dense.Induced with the complement index sets.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Minor(m Matrix, i, j int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, i, j); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	d, err := denseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	n := d.r
	keepRows := make([]int, 0, n-1)
	keepCols := make([]int, 0, n-1)
	for k := 0; k < n; k++ {
		if k != i {
			keepRows = append(keepRows, k)
		}
		if k != j {
			keepCols = append(keepCols, k)
		}
	}
	out, err := d.Induced(keepRows, keepCols)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return out, nil
}

// Cofactor returns C(i,j) = (-1)^(i+j) · det(Minor(m,i,j)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
//
// Complexity:
//   - Time O((n-1)!).
func Cofactor(m Matrix, i, j int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if err := ValidateIndex(m, i, j); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	d, err := denseCopyOf(m)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactorOf(d, i, j), nil
}

// Det computes the determinant by cofactor expansion along the first row.
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: take a private *Dense copy (inputs are never touched).
//   - Stage 3: recurse: det = Σ_k (±1)·a[0][k]·det(minor(0,k)), '+' for even k.
//
// Behavior highlights:
//   - 1×1 → the sole element; 0×0 → 1.
//   - NaN/Inf entries propagate per IEEE arithmetic.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion path.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := denseCopyOf(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return det(d), nil
}

// Adjugate returns adj(m), the transpose of the cofactor matrix:
// adj[j][i] = C(i,j).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Adjugate(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	d, err := denseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	n := d.r
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[j*n+i] = cofactorOf(d, i, j)
		}
	}

	return out, nil
}

// Inverse returns m⁻¹ by the adjugate method.
// Implementation:
//   - Stage 1: validate non-nil and square; copy to a private *Dense.
//   - Stage 2: det via cofactor expansion; |det| < singular tolerance → ErrSingular.
//   - Stage 3: for each (i,j): inv[j][i] = C(i,j) / det. Writing at the
//     transposed position yields adj(m)/det without a separate transpose pass.
//
// Behavior highlights:
//   - The tolerance defaults to DefaultSingularTolerance (1e-6) and can be
//     changed with WithSingularTolerance.
//   - Each cell is a division by det, not a multiplication by 1/det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	return inverse(m, o.singularTol)
}

// inverse is Inverse with a resolved tolerance.
func inverse(m Matrix, tol float64) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := denseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	dt := det(d)
	if math.Abs(dt) < tol {
		return nil, matrixErrorf(opInverse, fmt.Errorf("|det|=%g < %g: %w", math.Abs(dt), tol, ErrSingular))
	}

	n := d.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			inv.data[j*n+i] = cofactorOf(d, i, j) / dt
		}
	}

	return inv, nil
}
