// SPDX-License-Identifier: MIT

package matrix

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric naming.
const (
	metricsNamespace = "algebra"
	metricsSubsystem = "matrix"
)

// Metrics holds the Prometheus collectors updated by an Engine.
// All collectors are goroutine-safe; one Metrics may back several engines.
type Metrics struct {
	operations *prometheus.CounterVec
	errors     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the engine collectors and registers them with reg.
// If reg is nil the collectors are created but not registered.
//
// Registered series:
//   - algebra_matrix_operations_total{op}
//   - algebra_matrix_errors_total{op,kind}
//   - algebra_matrix_operation_duration_seconds{op}
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "operations_total",
				Help:      "Total number of matrix operations by operation name.",
			},
			[]string{"op"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "errors_total",
				Help:      "Total number of failed matrix operations by operation and error kind.",
			},
			[]string{"op", "kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "operation_duration_seconds",
				Help:      "Matrix operation latency in seconds.",
				// Cofactor kernels span microseconds (2×2) to seconds (n≈10).
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
			},
			[]string{"op"},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.operations, m.errors, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// observe records one finished operation. Safe on a nil receiver.
func (m *Metrics) observe(op string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(started).Seconds())
	if err != nil {
		m.errors.WithLabelValues(op, KindOf(err).String()).Inc()
	}
}
