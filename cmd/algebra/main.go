// SPDX-License-Identifier: MIT

// Algebra runs dense matrix operations over matrices defined in a YAML file.
//
// Usage:
//
//	# List the matrices defined in the configuration
//	algebra list -c algebra.yaml
//
//	# Multiply two named matrices and print the fixed-width report
//	algebra mul A B -c algebra.yaml
//
//	# Determinant, inverse and rank
//	algebra det A
//	algebra inv A
//	algebra rank A
//
//	# Print Prometheus counters gathered while the command ran
//	algebra inv S --metrics
//
//	# Show version information
//	algebra version
package main

func main() {
	Execute()
}
