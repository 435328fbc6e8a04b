// SPDX-License-Identifier: MPL-2.0

package exceptions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// header is written at the top of every generated exception file. Lines
// starting with "#" are ignored by Parse, so the header survives a
// load/write round trip as plain comments.
var header = []string{
	"# Style exception table.",
	"# Generated by 'modlint check --update-exceptions'.",
	"# Each record grandfathers one existing violation:",
	"#   <file path> : <line number> : <rule kind> : <message>",
	"# Remove records as the violations they cover are fixed.",
}

// Stale returns the records whose position no longer matches any current
// finding, in file order. live holds the keys of every violation the
// current lint pass produced, suppressed or not.
func (r *Registry) Stale(live map[Key]bool) []Record {
	if r == nil {
		return nil
	}
	var stale []Record
	for _, rec := range r.records {
		if !live[rec.Key()] {
			stale = append(stale, rec)
		}
	}
	return stale
}

// Write renders records to w in the on-disk format, sorted by path, line,
// and kind so regenerated files diff cleanly.
func Write(w io.Writer, records []Record) error {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Kind < b.Kind
	})

	for _, line := range header {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, rec := range sorted {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("refusing to write record %q: %w", rec.String(), err)
		}
		if _, err := fmt.Fprintln(w, rec.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile atomically replaces the exception table at path with the given
// records. The write goes to a temp file in the same directory first, so a
// failed run cannot leave a truncated table behind.
func WriteFile(path string, records []Record) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".exceptions-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp exception file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := Write(tmp, records); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp exception file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
