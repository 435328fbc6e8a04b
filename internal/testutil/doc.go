// SPDX-License-Identifier: MPL-2.0

// Package testutil holds the Must* helpers the tests lean on: failing
// fast on setup errors instead of threading err checks through every
// fixture. MustChdir and MustSetenv return the function that undoes
// them, for use with defer; MustMkdirAll, MustWriteFile, and
// MustUnsetenv fail the test directly.
//
// The treetest subpackage builds throwaway source trees for discovery
// and lint tests.
package testutil
