// SPDX-License-Identifier: MIT

package matrix

import "github.com/prometheus/client_golang/prometheus"

// Test-Bridge (White-Box) for private kernels, options and collectors.
//
// Purpose:
//   - Expose unexported state to matrix_test ONLY (this file ends in _test.go).
//   - Let tests read the resolved Options and Metrics collectors without
//     widening the production API.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// Panic messages of the WithX constructors.
const (
	PanicSingularTolInvalid = panicSingularTolInvalid
	PanicRankTolInvalid     = panicRankTolInvalid
	PanicNilWriter          = panicNilWriter
	PanicNilLogger          = panicNilLogger
)

// Diagnostic messages logged by the Engine.
const (
	MsgSameShape   = msgSameShape
	MsgInnerDims   = msgInnerDims
	MsgNotSquare   = msgNotSquare
	MsgSingular    = msgSingular
	MsgInvalidArgs = msgInvalidArgs
)

// OptionsSnapshot is a read-only view of the numeric part of Options.
type OptionsSnapshot struct {
	SingularTol    float64
	RankTol        float64
	ValidateNaNInf bool
	HasMetrics     bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		SingularTol:    o.singularTol,
		RankTol:        o.rankTol,
		ValidateNaNInf: o.validateNaNInf,
		HasMetrics:     o.metrics != nil,
	}
}

// ValidatesNaNInf_TestOnly reports the per-instance Set policy of d.
func ValidatesNaNInf_TestOnly(d *Dense) bool { return d.validateNaNInf }

// OperationsCounter_TestOnly returns the operations_total child for op.
func OperationsCounter_TestOnly(m *Metrics, op string) prometheus.Counter {
	return m.operations.WithLabelValues(op)
}

// ErrorsCounter_TestOnly returns the errors_total child for (op, kind).
func ErrorsCounter_TestOnly(m *Metrics, op string, kind ErrorKind) prometheus.Counter {
	return m.errors.WithLabelValues(op, kind.String())
}
