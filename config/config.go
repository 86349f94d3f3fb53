// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/algebra/logging"
	"github.com/katalvlaran/algebra/matrix"
)

// Config is the root configuration structure.
type Config struct {
	// Logging configures the diagnostic sink.
	Logging LoggingConfig `yaml:"logging"`

	// Numeric holds the tolerances used by Inverse and Rank.
	Numeric NumericConfig `yaml:"numeric"`

	// Matrices maps a name to a literal row-major matrix.
	Matrices map[string][][]float64 `yaml:"matrices"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	// Level is the minimum level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is the handler format ("text" or "json").
	Format string `yaml:"format"`
}

// NumericConfig holds numeric thresholds. A nil pointer means "use the default".
type NumericConfig struct {
	// SingularTolerance: Inverse fails when |det| is below it.
	SingularTolerance *float64 `yaml:"singular_tolerance"`

	// RankTolerance: Rank treats pivots below it as zero.
	RankTolerance *float64 `yaml:"rank_tolerance"`
}

// Matrix builds the named matrix as a *matrix.Dense.
func (c *Config) Matrix(name string) (*matrix.Dense, error) {
	rows, ok := c.Matrices[name]
	if !ok {
		return nil, fmt.Errorf("matrix %q is not defined in the configuration", name)
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("matrix %q: %w", name, err)
	}

	return m, nil
}

// Names returns the configured matrix names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Matrices))
	for name := range c.Matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// EngineOptions translates the numeric section into engine options.
func (c *Config) EngineOptions() []matrix.Option {
	var opts []matrix.Option
	if c.Numeric.SingularTolerance != nil {
		opts = append(opts, matrix.WithSingularTolerance(*c.Numeric.SingularTolerance))
	}
	if c.Numeric.RankTolerance != nil {
		opts = append(opts, matrix.WithRankTolerance(*c.Numeric.RankTolerance))
	}

	return opts
}

// LoggerConfig translates the logging section for logging.New.
func (c *Config) LoggerConfig(w io.Writer) logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Writer: w,
	}
}
