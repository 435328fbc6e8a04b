// SPDX-License-Identifier: MPL-2.0

// Package treetest provides test helpers for building throwaway source
// trees: library directories with source files, a workspace manifest, and
// an exception table. This package is separate from testutil so helpers
// that need no tree building do not pull in the fixture text.
//
// Usage:
//
//	dir := treetest.Build(t,
//	    treetest.WithSource("Sampleland/Basic.lean", "def one := 1"),
//	    treetest.WithManifest(treetest.SampleManifest),
//	)
package treetest
