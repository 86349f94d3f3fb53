// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	return NewIdentity(m.Rows())
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// InverseOf is an alias for Inverse with default tolerance.
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }
