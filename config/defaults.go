// SPDX-License-Identifier: MIT

package config

import "github.com/katalvlaran/algebra/matrix"

// Default values for configuration fields.
const (
	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// Numeric defaults
	DefaultSingularTolerance = matrix.DefaultSingularTolerance
	DefaultRankTolerance     = matrix.DefaultRankTolerance
)

// ApplyDefaults fills in every field left empty by the YAML file.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	if cfg.Numeric.SingularTolerance == nil {
		v := DefaultSingularTolerance
		cfg.Numeric.SingularTolerance = &v
	}
	if cfg.Numeric.RankTolerance == nil {
		v := DefaultRankTolerance
		cfg.Numeric.RankTolerance = &v
	}

	if cfg.Matrices == nil {
		cfg.Matrices = map[string][][]float64{}
	}
}

// NewDefault returns a configuration with defaults applied and no matrices.
func NewDefault() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)

	return cfg
}
