// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Size storage exactly to rows×cols; there is no compile-time capacity ceiling.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support copy-based submatrix extraction (Induced), the primitive behind minors.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
	ctxFrom   = "NewDenseFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel stays matchable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of exactly rows*cols cells.
//
// Behavior highlights:
//   - 0×N, N×0 and 0×0 are legal; 0×0 doubles as the failure sentinel (see Empty).
//   - The runtime zero-fills the buffer, so every cell has a defined value.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom builds a Dense from row slices (copied, never aliased).
// Implementation:
//   - Stage 1: derive cols from the first row; reject ragged input.
//   - Stage 2: copy each row into the flat buffer.
//
// Behavior highlights:
//   - nil or empty input yields the 0×0 matrix.
//   - Values are copied verbatim; the numeric policy is not applied here so
//     literal fixtures may contain NaN/Inf on purpose.
//
// Errors:
//   - ErrBadShape when rows differ in length.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return Empty(), nil
	}
	c := len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFrom, i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Empty returns a fresh 0×0 matrix, the sentinel result of failed engine calls.
func Empty() *Dense {
	return &Dense{data: []float64{}, validateNaNInf: DefaultValidateNaNInf}
}

// IsEmpty reports whether m is non-nil and has shape 0×0.
func IsEmpty(m Matrix) bool {
	return m != nil && m.Rows() == 0 && m.Cols() == 0
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfRange; At/Set add method context and coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// SetValidateNaNInf toggles the per-instance numeric policy used by Set.
func (m *Dense) SetValidateNaNInf(on bool) { m.validateNaNInf = on }

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant used by kernels that need a private *Dense copy.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// RawRowCopy returns a copy of row i, or ErrOutOfRange.
func (m *Dense) RawRowCopy(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.RawRowCopy(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String is a human-readable dump of rows for diagnostics ("[1, 2]\n[3, 4]\n").
// For the fixed-width report format use Format/Fprint.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// Implementation:
//   - Stage 1: allocate the len(rowsIdx)×len(colsIdx) result (zero-area is legal).
//   - Stage 2: nested loops with direct offset math; bounds-check each index.
//
// Behavior highlights:
//   - Policy is preserved from the base (validateNaNInf).
//   - Duplicates in index sets are allowed (repeated rows/cols in the result).
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j int
	var ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}
