// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the algebra command.
//
// A configuration file carries three sections:
//
//	logging:
//	  level: info        # debug, info, warn, error
//	  format: text       # text or json
//	numeric:
//	  singular_tolerance: 1e-6
//	  rank_tolerance: 1e-6
//	matrices:
//	  A: [[1, 2], [3, 4]]
//	  B: [[5, 6], [7, 8]]
//
// LoadConfig reads the file, applies defaults for omitted fields and
// validates the result. All validation problems are reported together in a
// ValidationError.
package config
