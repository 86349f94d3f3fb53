// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/algebra/logging"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "numeric.rank_tolerance").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate checks the whole configuration and returns a ValidationError
// collecting every failed rule, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateNumeric(&cfg.Numeric)...)

	for _, name := range cfg.Names() {
		errs = append(errs, validateMatrix(name, cfg.Matrices[name])...)
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError

	if _, err := logging.ParseLevel(cfg.Level); err != nil {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("%v (must be debug, info, warn or error)", err),
		})
	}
	if _, err := logging.ParseFormat(cfg.Format); err != nil {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("%v (must be text or json)", err),
		})
	}

	return errs
}

func validateNumeric(cfg *NumericConfig) []FieldError {
	var errs []FieldError
	if msg := checkTolerance(cfg.SingularTolerance); msg != "" {
		errs = append(errs, FieldError{Field: "numeric.singular_tolerance", Message: msg})
	}
	if msg := checkTolerance(cfg.RankTolerance); msg != "" {
		errs = append(errs, FieldError{Field: "numeric.rank_tolerance", Message: msg})
	}

	return errs
}

// checkTolerance returns "" for an acceptable tolerance.
func checkTolerance(tol *float64) string {
	if tol == nil {
		return ""
	}
	switch v := *tol; {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "must be finite"
	case v < 0:
		return fmt.Sprintf("must be non-negative, got %g", v)
	}

	return ""
}

func validateMatrix(name string, rows [][]float64) []FieldError {
	var errs []FieldError
	field := "matrices." + name

	if strings.TrimSpace(name) == "" {
		errs = append(errs, FieldError{Field: "matrices", Message: "matrix name cannot be empty"})
		field = "matrices.<empty>"
	}
	if len(rows) == 0 {
		return errs
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: fmt.Sprintf("row has %d columns, want %d", len(row), width),
			})
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("%s[%d][%d]", field, i, j),
					Message: "value must be finite",
				})
			}
		}
	}

	return errs
}
