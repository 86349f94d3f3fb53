// SPDX-License-Identifier: MIT
// Package matrix: centralized precondition validators.
//
// Purpose:
//   - Keep every shape/nil check in one place so kernels report identical
//     sentinels for identical violations.
//   - Validators return sentinels wrapped with their own tag; kernels add the
//     operation tag on top via matrixErrorf.
//
// Error mapping:
//   - nil operand            → ErrNilMatrix
//   - Add/Sub shape mismatch → ErrDimensionMismatch
//   - Mul inner mismatch     → ErrDimensionMismatch
//   - square required        → ErrNonSquare

package matrix

import "fmt"

// validatorErrorf provides consistent error tagging for all validation errors.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil fails with ErrNilMatrix when m is nil, including a typed
// nil *Dense stored in the interface.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape requires a.Rows()==b.Rows() and a.Cols()==b.Cols().
// Both operands must already be known non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare requires Rows()==Cols().
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape is the Add/Sub precondition: both non-nil, same shape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is the Det/Inverse/Trace precondition.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible is the Mul precondition: both non-nil, a.Cols()==b.Rows().
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex requires 0 <= i < Rows() and 0 <= j < Cols().
func ValidateIndex(m Matrix, i, j int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", i, j), ErrOutOfRange)
	}

	return nil
}
