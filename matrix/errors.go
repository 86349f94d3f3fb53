// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and error classification.
// All kernels MUST return these sentinels (optionally wrapped with %w) and
// tests MUST check them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, err) so the
// final text reads "Op: <validator>: matrix: <reason>".

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when literal input is not rectangular.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when |det| is below the singular tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// ErrorKind classifies an error returned by this package.
type ErrorKind int

const (
	// KindNone means no error.
	KindNone ErrorKind = iota
	// KindShapeMismatch: operand shapes violate Add/Sub/Mul preconditions.
	KindShapeMismatch
	// KindNotSquare: Det, Inverse or Trace received a non-square matrix.
	KindNotSquare
	// KindSingular: Inverse of a matrix with |det| below tolerance.
	KindSingular
	// KindInvalidInput: nil operands, bad indices, bad dimensions, NaN/Inf.
	KindInvalidInput
	// KindUnknown: an error that did not originate from this package.
	KindUnknown
)

var kindNames = [...]string{
	KindNone:          "none",
	KindShapeMismatch: "shape_mismatch",
	KindNotSquare:     "not_square",
	KindSingular:      "singular",
	KindInvalidInput:  "invalid_input",
	KindUnknown:       "unknown",
}

// String returns the snake_case name used in logs and metric labels.
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}

	return kindNames[k]
}

// KindOf maps err onto the package error taxonomy.
// nil maps to KindNone; foreign errors map to KindUnknown.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrDimensionMismatch):
		return KindShapeMismatch
	case errors.Is(err, ErrNonSquare):
		return KindNotSquare
	case errors.Is(err, ErrSingular):
		return KindSingular
	case errors.Is(err, ErrNilMatrix),
		errors.Is(err, ErrInvalidDimensions),
		errors.Is(err, ErrBadShape),
		errors.Is(err, ErrOutOfRange),
		errors.Is(err, ErrNaNInf):
		return KindInvalidInput
	default:
		return KindUnknown
	}
}
