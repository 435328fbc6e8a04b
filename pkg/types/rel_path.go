// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrInvalidRelPath is the sentinel error wrapped by InvalidRelPathError.
var ErrInvalidRelPath = errors.New("invalid relative path")

type (
	// RelPath is a slash-separated file path relative to the working
	// directory of a lint run, e.g. "Algebra/Group/Basic.lean". It is the
	// path form used by file listings, lint findings, and exception
	// records, so equal paths compare equal as plain strings.
	RelPath string

	// InvalidRelPathError is returned when a RelPath value is empty,
	// absolute, backslash-separated, or escapes the working directory.
	InvalidRelPathError struct {
		Value  RelPath
		Reason string
	}
)

// String returns the string representation of the RelPath.
func (p RelPath) String() string { return string(p) }

// Validate returns an error if the RelPath is empty, absolute,
// backslash-separated, or escapes the working directory via "..".
func (p RelPath) Validate() error {
	s := string(p)
	switch {
	case strings.TrimSpace(s) == "":
		return &InvalidRelPathError{Value: p, Reason: "must be non-empty"}
	case strings.HasPrefix(s, "/"):
		return &InvalidRelPathError{Value: p, Reason: "must be relative"}
	case strings.Contains(s, "\\"):
		return &InvalidRelPathError{Value: p, Reason: "must use forward slashes"}
	case p.escapesRoot():
		return &InvalidRelPathError{Value: p, Reason: "must not escape the working directory"}
	}
	return nil
}

// escapesRoot reports whether the cleaned path starts outside the working
// directory. "a/../b" is fine; "../b" and "a/../../b" are not.
func (p RelPath) escapesRoot() bool {
	clean := path.Clean(string(p))
	return clean == ".." || strings.HasPrefix(clean, "../")
}

// Error implements the error interface for InvalidRelPathError.
func (e *InvalidRelPathError) Error() string {
	return fmt.Sprintf("invalid relative path %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidRelPath for errors.Is() compatibility.
func (e *InvalidRelPathError) Unwrap() error { return ErrInvalidRelPath }
