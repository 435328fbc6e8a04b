// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"fmt"
	"sort"

	"modlint/internal/exceptions"
	"modlint/pkg/types"
)

// Finding is a single rule violation at an exact position in a source file.
type Finding struct {
	// Path is the file the violation was found in, relative to the
	// source root.
	Path types.RelPath `json:"path" yaml:"path"`
	// Line is the 1-based line the violation occurred on.
	Line types.LineNumber `json:"line" yaml:"line"`
	// Kind identifies the rule that produced the finding.
	Kind types.RuleKind `json:"kind" yaml:"kind"`
	// Message is a single-line description of the violation.
	Message string `json:"message" yaml:"message"`
}

// Key returns the registry key that would suppress this finding.
func (f Finding) Key() exceptions.Key {
	return exceptions.Key{Path: f.Path, Line: f.Line, Kind: f.Kind}
}

// Record converts the finding into an exception record, suitable for
// regenerating the exception table.
func (f Finding) Record() exceptions.Record {
	return exceptions.Record{Path: f.Path, Line: f.Line, Kind: f.Kind, Message: f.Message}
}

// String renders the finding in the canonical "file : line : kind : message"
// shape shared with the exception table.
func (f Finding) String() string {
	return fmt.Sprintf("%s%s%d%s%s%s%s",
		f.Path, exceptions.FieldSeparator,
		f.Line, exceptions.FieldSeparator,
		f.Kind, exceptions.FieldSeparator,
		f.Message)
}

// SortFindings orders findings by path, then line, then kind. The order is
// deterministic for any set of findings a single lint pass can produce,
// since at most one finding exists per (path, line, kind).
func SortFindings(findings []Finding) {
	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Kind < b.Kind
	})
}
