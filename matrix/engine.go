// SPDX-License-Identifier: MIT

// Package matrix - Engine facade with diagnostics, metrics and sentinels.
//
// Purpose:
//   - Wrap every kernel with the "report and degrade" policy: a failed
//     precondition is logged to the injected slog sink, counted in metrics,
//     and turned into a well-formed sentinel (0×0 matrix, or 0) that is
//     returned together with the structured error.
//   - Route Print output to an injected writer instead of a global stream.
//
// Behavior highlights:
//   - Callers that check err get errors.Is-compatible sentinels and KindOf.
//   - Callers that ignore err still receive a non-nil, usable value.
//   - Engine holds only immutable configuration; it is safe for concurrent use.

package matrix

import (
	"log/slog"
	"time"
)

// Diagnostic messages logged for failed preconditions.
const (
	msgSameShape   = "matrix a and b must have the same rows and cols"
	msgInnerDims   = "the number of cols of matrix a must equal the number of rows of matrix b"
	msgNotSquare   = "the matrix must be a square matrix"
	msgSingular    = "the matrix is singular"
	msgInvalidArgs = "invalid matrix argument"
)

// Engine runs matrix operations with a diagnostic sink.
type Engine struct {
	opts Options
}

// NewEngine builds an Engine from the defaults plus opts.
// Defaults: text slog handler on os.Stderr, Print to os.Stdout, no metrics,
// singular and rank tolerances of 1e-6.
func NewEngine(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// Logger exposes the diagnostic sink.
func (e *Engine) Logger() *slog.Logger { return e.opts.logger }

// SingularTolerance returns the |det| threshold used by Inverse.
func (e *Engine) SingularTolerance() float64 { return e.opts.singularTol }

// RankTolerance returns the pivot threshold used by Rank.
func (e *Engine) RankTolerance() float64 { return e.opts.rankTol }

// report logs a failed operation with its human message and error kind.
func (e *Engine) report(op string, err error) {
	kind := KindOf(err)
	e.opts.logger.Error(messageFor(op, kind),
		slog.String("op", op),
		slog.String("kind", kind.String()),
		slog.Any("error", err),
	)
}

// messageFor picks the diagnostic text for a failure.
func messageFor(op string, kind ErrorKind) string {
	switch kind {
	case KindShapeMismatch:
		if op == opMul {
			return msgInnerDims
		}
		return msgSameShape
	case KindNotSquare:
		return msgNotSquare
	case KindSingular:
		return msgSingular
	default:
		return msgInvalidArgs
	}
}

// finishMatrix applies the sentinel policy to a matrix-valued result.
func (e *Engine) finishMatrix(op string, started time.Time, res *Dense, err error) (*Dense, error) {
	e.opts.metrics.observe(op, started, err)
	if err != nil {
		e.report(op, err)
		return Empty(), err
	}
	res.validateNaNInf = e.opts.validateNaNInf
	e.opts.logger.Debug("matrix operation",
		slog.String("op", op),
		slog.Int("rows", res.r),
		slog.Int("cols", res.c),
	)

	return res, nil
}

// finishScalar applies the sentinel policy to a scalar result.
func (e *Engine) finishScalar(op string, started time.Time, v float64, err error) (float64, error) {
	e.opts.metrics.observe(op, started, err)
	if err != nil {
		e.report(op, err)
		return 0, err
	}
	e.opts.logger.Debug("matrix operation", slog.String("op", op), slog.Float64("value", v))

	return v, nil
}

// Create returns a zero rows×cols matrix (create_matrix).
// Negative dimensions yield the 0×0 sentinel and ErrInvalidDimensions.
func (e *Engine) Create(rows, cols int) (*Dense, error) {
	started := time.Now()
	m, err := NewDense(rows, cols)
	if err != nil {
		err = matrixErrorf(opCreate, err)
	}
	return e.finishMatrix(opCreate, started, m, err)
}

// Add returns a+b, or the 0×0 sentinel with ErrDimensionMismatch.
func (e *Engine) Add(a, b Matrix) (*Dense, error) {
	started := time.Now()
	res, err := Add(a, b)
	return e.finishMatrix(opAdd, started, res, err)
}

// Sub returns a-b, or the 0×0 sentinel with ErrDimensionMismatch.
func (e *Engine) Sub(a, b Matrix) (*Dense, error) {
	started := time.Now()
	res, err := Sub(a, b)
	return e.finishMatrix(opSub, started, res, err)
}

// Mul returns a×b, or the 0×0 sentinel with ErrDimensionMismatch.
func (e *Engine) Mul(a, b Matrix) (*Dense, error) {
	started := time.Now()
	res, err := Mul(a, b)
	return e.finishMatrix(opMul, started, res, err)
}

// Scale returns k·a. Only a nil operand can fail.
func (e *Engine) Scale(a Matrix, k float64) (*Dense, error) {
	started := time.Now()
	res, err := Scale(a, k)
	return e.finishMatrix(opScale, started, res, err)
}

// Transpose returns aᵀ. Only a nil operand can fail.
func (e *Engine) Transpose(a Matrix) (*Dense, error) {
	started := time.Now()
	res, err := Transpose(a)
	return e.finishMatrix(opTranspose, started, res, err)
}

// Det returns det(a), or 0 with ErrNonSquare.
func (e *Engine) Det(a Matrix) (float64, error) {
	started := time.Now()
	v, err := Det(a)
	return e.finishScalar(opDet, started, v, err)
}

// Inverse returns a⁻¹, or the 0×0 sentinel with ErrNonSquare / ErrSingular.
func (e *Engine) Inverse(a Matrix) (*Dense, error) {
	started := time.Now()
	res, err := inverse(a, e.opts.singularTol)
	return e.finishMatrix(opInverse, started, res, err)
}

// Rank returns rank(a), or 0 for a nil operand.
func (e *Engine) Rank(a Matrix) (int, error) {
	started := time.Now()
	r, err := rank(a, e.opts.rankTol)
	v, err := e.finishScalar(opRank, started, float64(r), err)
	return int(v), err
}

// Trace returns tr(a), or 0 with ErrNonSquare.
func (e *Engine) Trace(a Matrix) (float64, error) {
	started := time.Now()
	v, err := Trace(a)
	return e.finishScalar(opTrace, started, v, err)
}

// Print renders a to the configured output in the fixed-width report format.
func (e *Engine) Print(a Matrix) error {
	if err := Fprint(e.opts.out, a); err != nil {
		e.report(opPrint, err)
		return err
	}

	return nil
}
