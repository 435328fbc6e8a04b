// SPDX-License-Identifier: MPL-2.0

// Package workspace loads the build manifest of a source workspace and
// resolves the ordered list of libraries a full build compiles. The
// manifest is a small TOML file naming the workspace and its libraries;
// resolution applies a primary-project adjustment that strips tooling-only
// libraries and appends the auxiliary library the build system does not
// auto-discover.
package workspace
