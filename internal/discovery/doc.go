// SPDX-License-Identifier: MPL-2.0

// Package discovery enumerates the source files of a library tree and maps
// them to hierarchical module names.
//
// Listing runs in one of two modes: a direct filesystem walk, or the
// version-control listing (git ls-files) restricted to the same root and
// extension. Both modes produce the same shape of result: slash-separated
// paths relative to the working directory, sorted lexicographically, with
// the root aggregator file excluded and entries that no longer exist on
// disk dropped.
//
// Recoverable oddities (a listed path that vanished from disk) are not
// written to stderr here; they come back as Diagnostics on the listing so
// the CLI layer owns the rendering policy.
//
// File organization:
//   - discovery.go: Options, the listing pipeline, and module mapping
//   - listing.go: the git-backed Lister
//   - diagnostic.go: structured diagnostics returned to callers
package discovery
