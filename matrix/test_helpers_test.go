// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/matrix"
)

// Default tolerance for floating comparisons in property tests.
const tol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Kernels then take the At/Set fallback path instead of the *Dense fast path.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFrom BUILDS a *Dense from literal rows or fails the test.
func MustFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// IdentityDense RETURNS an n×n identity *Dense.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
//
// Determinism:
//   - Deterministic per seed; identical seeds reproduce identical matrices.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// CompareExact asserts got has the shape of want and bit-identical cells.
func CompareExact(t testing.TB, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols(), "cols")
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, got, i, j), "cell [%d,%d]", i, j)
		}
	}
}

// CompareClose asserts got has the shape of want and cells within eps.
func CompareClose(t testing.TB, want [][]float64, got matrix.Matrix, eps float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols(), "cols")
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, got, i, j), eps, "cell [%d,%d]", i, j)
		}
	}
}

// RequireAllClose asserts AllClose(a, b, 0, eps) holds.
func RequireAllClose(t testing.TB, a, b matrix.Matrix, eps float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, 0, eps)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ beyond %g:\n%v\n%v", eps, a, b)
}

// Shared 2×2 fixtures.
var (
	rowsA        = [][]float64{{1, 2}, {3, 4}}
	rowsB        = [][]float64{{5, 6}, {7, 8}}
	rowsSingular = [][]float64{{1, 2}, {2, 4}}
)
