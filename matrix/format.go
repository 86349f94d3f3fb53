// SPDX-License-Identifier: MIT

// Package matrix - fixed-width diagnostic rendering.
//
// Format contract:
//   - one line per row, terminated by "\n";
//   - each cell rendered with "%-8.2f" (2 fractional digits, left-aligned,
//     padded to at least 8 characters), cells concatenated with no separator;
//   - an r×0 matrix prints r empty lines; 0×c prints nothing.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// cellFormat is the per-cell verb of the report format.
const cellFormat = "%-8.2f"

// Fprint writes m to w in the fixed-width report format.
//
// Errors:
//   - ErrNilMatrix; At failures; the first write error from w.
//
// Complexity:
//   - Time O(r*c).
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opPrint, err)
	}

	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return matrixErrorf(opPrint, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if _, err = fmt.Fprintf(bw, cellFormat, v); err != nil {
				return matrixErrorf(opPrint, err)
			}
		}
		if err = bw.WriteByte('\n'); err != nil {
			return matrixErrorf(opPrint, err)
		}
	}
	if err = bw.Flush(); err != nil {
		return matrixErrorf(opPrint, err)
	}

	return nil
}

// Format returns the fixed-width report of m as a string.
// A nil matrix renders as the empty string.
func Format(m Matrix) string {
	var b strings.Builder
	_ = Fprint(&b, m) // strings.Builder never fails; nil yields ""

	return b.String()
}
