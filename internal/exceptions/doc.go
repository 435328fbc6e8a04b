// SPDX-License-Identifier: MPL-2.0

// Package exceptions loads and queries the style exception table: the list
// of known, grandfathered lint violations that must not fail a run.
//
// The table is a plain text file with one record per line,
//
//	<file path> : <line number> : <rule kind> : <message>
//
// plus blank lines and "#" comments. It is parsed once at startup into an
// immutable Registry; lint runs query the registry by exact
// (path, line, kind) position. Records whose position no longer matches a
// current finding are "stale" and reported by the audit operation, and the
// whole file can be regenerated from the current findings with Write.
package exceptions
