// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebra/matrix"
)

// logRecord is the subset of a slog JSON line the tests inspect.
type logRecord struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
	Op    string `json:"op"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// captureEngine returns an Engine whose diagnostics and Print output are buffered.
func captureEngine(t *testing.T, opts ...matrix.Option) (*matrix.Engine, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	logs, out := new(bytes.Buffer), new(bytes.Buffer)
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	base := []matrix.Option{matrix.WithLogger(logger), matrix.WithOutput(out)}

	return matrix.NewEngine(append(base, opts...)...), logs, out
}

// records decodes every JSON line in buf.
func records(t *testing.T, buf *bytes.Buffer) []logRecord {
	t.Helper()
	var out []logRecord
	dec := json.NewDecoder(strings.NewReader(buf.String()))
	for {
		var r logRecord
		err := dec.Decode(&r)
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, r)
	}
}

// errorRecords filters records down to ERROR level.
func errorRecords(t *testing.T, buf *bytes.Buffer) []logRecord {
	t.Helper()
	var out []logRecord
	for _, r := range records(t, buf) {
		if r.Level == "ERROR" {
			out = append(out, r)
		}
	}

	return out
}

func TestEngine_Scenarios(t *testing.T) {
	t.Parallel()
	e, logs, out := captureEngine(t)
	a, b := MustFrom(t, rowsA), MustFrom(t, rowsB)

	sum, err := e.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{6, 8}, {10, 12}}, sum)

	prod, err := e.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, prod)

	d, err := e.Det(a)
	require.NoError(t, err)
	require.Equal(t, -2.0, d)

	inv, err := e.Inverse(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-2, 1}, {1.5, -0.5}}, inv)

	tr, err := e.Trace(a)
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	r, err := e.Rank(a)
	require.NoError(t, err)
	require.Equal(t, 2, r)

	require.NoError(t, e.Print(a))
	require.Equal(t, "1.00    2.00    \n3.00    4.00    \n", out.String())

	require.Empty(t, errorRecords(t, logs))
	require.NotEmpty(t, records(t, logs), "debug records expected for successful operations")
}

func TestEngine_CreateTransposeScaleSub(t *testing.T) {
	t.Parallel()
	e, _, _ := captureEngine(t)

	z, err := e.Create(2, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z)

	tt, err := e.Transpose(MustFrom(t, [][]float64{{1, 2, 3}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}, {2}, {3}}, tt)

	s, err := e.Scale(MustFrom(t, rowsA), -1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-1, -2}, {-3, -4}}, s)

	d, err := e.Sub(MustFrom(t, rowsB), MustFrom(t, rowsA))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 4}, {4, 4}}, d)
}

// TestEngine_Sentinels checks "report and degrade": one ERROR record plus a
// well-formed sentinel for every failed precondition.
func TestEngine_Sentinels(t *testing.T) {
	t.Parallel()
	sq := MustFrom(t, rowsA)
	wide := MustDense(t, 2, 3)

	matrixCases := []struct {
		name string
		run  func(e *matrix.Engine) (*matrix.Dense, error)
		msg  string
		kind string
		want error
	}{
		{"add", func(e *matrix.Engine) (*matrix.Dense, error) { return e.Add(sq, wide) },
			matrix.MsgSameShape, "shape_mismatch", matrix.ErrDimensionMismatch},
		{"sub", func(e *matrix.Engine) (*matrix.Dense, error) { return e.Sub(sq, wide) },
			matrix.MsgSameShape, "shape_mismatch", matrix.ErrDimensionMismatch},
		{"mul", func(e *matrix.Engine) (*matrix.Dense, error) { return e.Mul(wide, wide) },
			matrix.MsgInnerDims, "shape_mismatch", matrix.ErrDimensionMismatch},
		{"inverse_non_square", func(e *matrix.Engine) (*matrix.Dense, error) { return e.Inverse(wide) },
			matrix.MsgNotSquare, "not_square", matrix.ErrNonSquare},
		{"inverse_singular", func(e *matrix.Engine) (*matrix.Dense, error) { return e.Inverse(MustFrom(t, rowsSingular)) },
			matrix.MsgSingular, "singular", matrix.ErrSingular},
		{"create_negative", func(e *matrix.Engine) (*matrix.Dense, error) { return e.Create(-1, 2) },
			matrix.MsgInvalidArgs, "invalid_input", matrix.ErrInvalidDimensions},
		{"transpose_nil", func(e *matrix.Engine) (*matrix.Dense, error) { return e.Transpose(nil) },
			matrix.MsgInvalidArgs, "invalid_input", matrix.ErrNilMatrix},
	}
	for _, tc := range matrixCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			e, logs, _ := captureEngine(t)
			res, err := tc.run(e)
			require.ErrorIs(t, err, tc.want)
			require.NotNil(t, res, "sentinel must be non-nil")
			require.True(t, matrix.IsEmpty(res), "sentinel must be 0×0")

			recs := errorRecords(t, logs)
			require.Len(t, recs, 1)
			require.Equal(t, tc.msg, recs[0].Msg)
			require.Equal(t, tc.kind, recs[0].Kind)
			require.Equal(t, err.Error(), recs[0].Error)
		})
	}

	scalarCases := []struct {
		name string
		run  func(e *matrix.Engine) (float64, error)
	}{
		{"det", func(e *matrix.Engine) (float64, error) { return e.Det(wide) }},
		{"trace", func(e *matrix.Engine) (float64, error) { return e.Trace(wide) }},
	}
	for _, tc := range scalarCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			e, logs, _ := captureEngine(t)
			v, err := tc.run(e)
			require.ErrorIs(t, err, matrix.ErrNonSquare)
			require.Zero(t, v)

			recs := errorRecords(t, logs)
			require.Len(t, recs, 1)
			require.Equal(t, matrix.MsgNotSquare, recs[0].Msg)
		})
	}
}

func TestEngine_RankNil(t *testing.T) {
	t.Parallel()
	e, logs, _ := captureEngine(t)
	r, err := e.Rank(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Zero(t, r)
	require.Len(t, errorRecords(t, logs), 1)
}

func TestEngine_PrintNil(t *testing.T) {
	t.Parallel()
	e, logs, out := captureEngine(t)
	require.ErrorIs(t, e.Print(nil), matrix.ErrNilMatrix)
	require.Empty(t, out.String())
	require.Len(t, errorRecords(t, logs), 1)
}

func TestEngine_Tolerances(t *testing.T) {
	t.Parallel()
	nearly := MustFrom(t, [][]float64{{1, 0}, {0, 1e-7}})

	strict, _, _ := captureEngine(t)
	require.Equal(t, matrix.DefaultSingularTolerance, strict.SingularTolerance())
	require.Equal(t, matrix.DefaultRankTolerance, strict.RankTolerance())
	_, err := strict.Inverse(nearly)
	require.ErrorIs(t, err, matrix.ErrSingular)
	r, err := strict.Rank(nearly)
	require.NoError(t, err)
	require.Equal(t, 1, r)

	loose, _, _ := captureEngine(t, matrix.WithSingularTolerance(1e-12), matrix.WithRankTolerance(1e-12))
	_, err = loose.Inverse(nearly)
	require.NoError(t, err)
	r, err = loose.Rank(nearly)
	require.NoError(t, err)
	require.Equal(t, 2, r)
}

// TestEngine_NaNInfPolicy: results carry the engine's Set policy.
func TestEngine_NaNInfPolicy(t *testing.T) {
	t.Parallel()
	e, _, _ := captureEngine(t, matrix.WithNoValidateNaNInf())
	m, err := e.Create(1, 1)
	require.NoError(t, err)
	require.False(t, matrix.ValidatesNaNInf_TestOnly(m))

	strict, _, _ := captureEngine(t)
	m, err = strict.Create(1, 1)
	require.NoError(t, err)
	require.True(t, matrix.ValidatesNaNInf_TestOnly(m))
}

func TestEngine_LoggerAccessor(t *testing.T) {
	t.Parallel()
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := matrix.NewEngine(matrix.WithLogger(l))
	require.Same(t, l, e.Logger())
}
