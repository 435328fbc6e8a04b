// SPDX-License-Identifier: MPL-2.0

package exceptions

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"modlint/internal/issue"
	"modlint/pkg/types"
)

// FieldSeparator separates the four fields of an exception record. The
// spaces are part of the separator, so a bare ":" inside the message does
// not split the record.
const FieldSeparator = " : "

// ErrMalformedRecord is the sentinel error wrapped by MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed exception record")

type (
	// Key is the position an exception record is matched on. Two findings
	// refer to the same violation exactly when their keys are equal.
	Key struct {
		Path types.RelPath
		Line types.LineNumber
		Kind types.RuleKind
	}

	// Record is one parsed line of the exception table.
	Record struct {
		Path    types.RelPath
		Line    types.LineNumber
		Kind    types.RuleKind
		Message string
	}

	// MalformedRecordError is returned when a line of the exception file
	// cannot be parsed into a valid Record. SourceLine is the 1-based line
	// number within the exception file, not within the excepted source.
	MalformedRecordError struct {
		File       string
		SourceLine int
		Reason     string
		Text       string
	}

	// Registry is the immutable, queryable form of an exception table.
	// The zero value is an empty registry.
	Registry struct {
		records []Record
		index   map[Key]int
	}
)

// Key returns the position this record is matched on.
func (r Record) Key() Key {
	return Key{Path: r.Path, Line: r.Line, Kind: r.Kind}
}

// String renders the record in the on-disk line format.
func (r Record) String() string {
	return fmt.Sprintf("%s%s%d%s%s%s%s",
		r.Path, FieldSeparator, r.Line, FieldSeparator, r.Kind, FieldSeparator, r.Message)
}

// Validate returns an error if any field of the record is invalid. The
// message may be empty but must stay on one line.
func (r Record) Validate() error {
	if err := r.Path.Validate(); err != nil {
		return err
	}
	if err := r.Line.Validate(); err != nil {
		return err
	}
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if strings.ContainsAny(r.Message, "\n\r") {
		return fmt.Errorf("exception message must not span lines")
	}
	return nil
}

// Error implements the error interface for MalformedRecordError.
func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.SourceLine, e.Reason)
}

// Unwrap returns ErrMalformedRecord for errors.Is() compatibility.
func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// Parse reads an exception table from r. name is used in error messages,
// conventionally the file path. Parsing is strict: any malformed line,
// invalid field, or duplicate (path, line, kind) position aborts with a
// MalformedRecordError identifying the offending line.
func Parse(r io.Reader, name string) (*Registry, error) {
	reg := &Registry{index: make(map[Key]int)}

	scanner := bufio.NewScanner(r)
	// Exception files are line-oriented; raise the limit above the default
	// 64KiB so a pathological message cannot truncate the scan.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		rec, err := parseRecord(line, name, lineNo)
		if err != nil {
			return nil, err
		}

		key := rec.Key()
		if _, dup := reg.index[key]; dup {
			return nil, &MalformedRecordError{
				File:       name,
				SourceLine: lineNo,
				Reason:     fmt.Sprintf("duplicate record for %s:%d %s", key.Path, key.Line, key.Kind),
				Text:       line,
			}
		}

		reg.index[key] = len(reg.records)
		reg.records = append(reg.records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return reg, nil
}

// parseRecord parses one non-comment line. The path, line, and kind fields
// tolerate surrounding whitespace; the message is kept verbatim.
func parseRecord(line, name string, lineNo int) (Record, error) {
	malformed := func(reason string) (Record, error) {
		return Record{}, &MalformedRecordError{
			File:       name,
			SourceLine: lineNo,
			Reason:     reason,
			Text:       line,
		}
	}

	fields := strings.SplitN(line, FieldSeparator, 4)
	if len(fields) != 4 {
		return malformed(fmt.Sprintf("want 4 %q-separated fields, got %d", FieldSeparator, len(fields)))
	}

	path := types.RelPath(strings.TrimSpace(fields[0]))
	if err := path.Validate(); err != nil {
		return malformed(err.Error())
	}

	lineField := strings.TrimSpace(fields[1])
	n, err := strconv.Atoi(lineField)
	if err != nil {
		return malformed(fmt.Sprintf("line number %q is not an integer", lineField))
	}
	lineNum := types.LineNumber(n)
	if err := lineNum.Validate(); err != nil {
		return malformed(err.Error())
	}

	kind := types.RuleKind(strings.TrimSpace(fields[2]))
	if err := kind.Validate(); err != nil {
		return malformed(err.Error())
	}

	return Record{Path: path, Line: lineNum, Kind: kind, Message: fields[3]}, nil
}

// Load reads the exception table at path. A missing file yields an empty
// registry: repositories without grandfathered violations simply have no
// exception file. Any other failure, including a parse error, is returned
// as an actionable error wrapping the precise cause.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Registry{index: make(map[Key]int)}, nil
		}
		return nil, issue.NewErrorContext().
			WithOperation("load exception table").
			WithResource(path).
			WithSuggestion("Check permissions on the exception file").
			Wrap(err).
			BuildError()
	}
	defer f.Close()

	reg, err := Parse(f, path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load exception table").
			WithResource(path).
			WithSuggestion("Fix the reported line by hand").
			WithSuggestion("Or regenerate the table with 'modlint check --update-exceptions'").
			Wrap(err).
			BuildError()
	}
	return reg, nil
}

// Lookup reports whether the registry grandfathers a violation at exactly
// this (path, line, kind) position. A record one line away does not match.
func (r *Registry) Lookup(path types.RelPath, line types.LineNumber, kind types.RuleKind) bool {
	if r == nil || r.index == nil {
		return false
	}
	_, ok := r.index[Key{Path: path, Line: line, Kind: kind}]
	return ok
}

// Find returns the full record for a position, if present.
func (r *Registry) Find(key Key) (Record, bool) {
	if r == nil || r.index == nil {
		return Record{}, false
	}
	i, ok := r.index[key]
	if !ok {
		return Record{}, false
	}
	return r.records[i], true
}

// Records returns a copy of all records in file order.
func (r *Registry) Records() []Record {
	if r == nil {
		return nil
	}
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records in the registry.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.records)
}
