// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides comprehensive benchmarks for PGO profile generation.
// These benchmarks cover all hot paths in the modlint codebase:
//   - Exception table parsing and position lookup
//   - Source file discovery and module name derivation
//   - The full lint pass over a source tree
//   - Configuration schema validation and manifest parsing
//
// To generate a PGO profile, run:
//
//	go test -bench . -cpuprofile default.pgo ./internal/benchmark
package benchmark
