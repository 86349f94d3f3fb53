// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Numeric comparison of whole matrices (AllClose, Equal) used by tests,
//     the CLI `check` command, and callers validating round-trips such as
//     Mul(A, Inverse(A)) ≈ I.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 for Dense, i→j otherwise); early exit
//     on the first violating element.

package matrix

import (
	"fmt"
	"math"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN is never close to anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				if !isClose(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !isClose(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports exact element-wise equality of two same-shaped matrices.
// Shape mismatch or a nil operand is simply "not equal".
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	ok, err := AllClose(a, b, 0, 0)

	return err == nil && ok
}

// isClose is the scalar predicate behind AllClose.
func isClose(a, b, rtol, atol float64) bool {
	if a == b { // covers equal infinities
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
