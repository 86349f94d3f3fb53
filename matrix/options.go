// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and the
// Engine facade. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Kernels that depend on a tolerance (Inverse, Rank) accept ...Option;
//     NewEngine accepts the same options plus the sink/metrics setters.
package matrix

import (
	"io"
	"log/slog"
	"math"
	"os"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularTolerance: Inverse reports ErrSingular when |det| is below it.
	DefaultSingularTolerance = 1e-6

	// DefaultRankTolerance: Rank treats a pivot with |p| below it as zero.
	DefaultRankTolerance = 1e-6

	// DefaultValidateNaNInf toggles strict finite-value validation in Dense.Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSingularTolInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
	panicRankTolInvalid     = "matrix: WithRankTolerance: tol must be finite, non-negative"
	panicNilWriter          = "matrix: WithOutput: writer must not be nil"
	panicNilLogger          = "matrix: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	// numeric policy
	singularTol    float64 // >= 0; DefaultSingularTolerance
	rankTol        float64 // >= 0; DefaultRankTolerance
	validateNaNInf bool    // DefaultValidateNaNInf

	// engine wiring
	logger  *slog.Logger // diagnostic sink
	out     io.Writer    // Print destination
	metrics *Metrics     // optional; nil disables recording
}

// ---------- Constructors (WithX) ----------

// WithSingularTolerance sets the |det| threshold under which Inverse fails
// with ErrSingular. Panics when tol is NaN, ±Inf or negative.
func WithSingularTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithRankTolerance sets the pivot magnitude under which Rank skips a column.
// Panics when tol is NaN, ±Inf or negative.
func WithRankTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithValidateNaNInf makes matrices created by the Engine reject NaN/±Inf in Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets matrices created by the Engine accept NaN/±Inf in Set.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithLogger injects the diagnostic sink used by the Engine.
// Panics on a nil logger; use a handler writing to io.Discard to silence it.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithOutput sets the writer Engine.Print renders into. Panics on nil.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicNilWriter)
	}

	return func(o *Options) { o.out = w }
}

// WithMetrics attaches a Prometheus collector set to the Engine.
// A nil m disables recording.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		singularTol:    DefaultSingularTolerance,
		rankTol:        DefaultRankTolerance,
		validateNaNInf: DefaultValidateNaNInf,
		logger:         slog.New(slog.NewTextHandler(os.Stderr, nil)),
		out:            os.Stdout,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
