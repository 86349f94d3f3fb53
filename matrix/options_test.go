// SPDX-License-Identifier: MIT
package matrix_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/matrix"
)

// TestDefaultOptions_Documented verifies that an empty option list equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	if o.SingularTol != matrix.DefaultSingularTolerance {
		t.Fatalf("singularTol default mismatch: got %v, want %v", o.SingularTol, matrix.DefaultSingularTolerance)
	}
	if o.RankTol != matrix.DefaultRankTolerance {
		t.Fatalf("rankTol default mismatch: got %v, want %v", o.RankTol, matrix.DefaultRankTolerance)
	}
	if o.ValidateNaNInf != matrix.DefaultValidateNaNInf {
		t.Fatalf("validateNaNInf default mismatch: got %v, want %v", o.ValidateNaNInf, matrix.DefaultValidateNaNInf)
	}
	if o.HasMetrics {
		t.Fatalf("metrics must be disabled by default")
	}
}

// TestOptions_LastWriterWins ensures setters apply in order.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithSingularTolerance(1e-3),
		matrix.WithSingularTolerance(1e-9),
		matrix.WithRankTolerance(0),
		matrix.WithNoValidateNaNInf(),
		nil,
	)
	require.Equal(t, 1e-9, o.SingularTol)
	require.Zero(t, o.RankTol)
	require.False(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf)
}

func TestOptions_Metrics(t *testing.T) {
	m, err := matrix.NewMetrics(nil)
	require.NoError(t, err)
	require.True(t, matrix.GatherOptionsSnapshot_TestOnly(matrix.WithMetrics(m)).HasMetrics)
	require.False(t, matrix.GatherOptionsSnapshot_TestOnly(matrix.WithMetrics(nil)).HasMetrics)
}

// TestPanics validates parameter guards in the WithX constructors.
func TestPanics(t *testing.T) {
	for _, bad := range []float64{math.NaN(), -1, math.Inf(1), math.Inf(-1)} {
		bad := bad
		require.PanicsWithValue(t, matrix.PanicSingularTolInvalid, func() { _ = matrix.WithSingularTolerance(bad) })
		require.PanicsWithValue(t, matrix.PanicRankTolInvalid, func() { _ = matrix.WithRankTolerance(bad) })
	}
	require.PanicsWithValue(t, matrix.PanicNilWriter, func() { _ = matrix.WithOutput(nil) })
	require.PanicsWithValue(t, matrix.PanicNilLogger, func() { _ = matrix.WithLogger(nil) })

	require.NotPanics(t, func() {
		_ = matrix.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
		_ = matrix.WithOutput(io.Discard)
	})
}
