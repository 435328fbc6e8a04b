// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLibraryName is the sentinel error wrapped by InvalidLibraryNameError.
var ErrInvalidLibraryName = errors.New("invalid library name")

type (
	// LibraryName names one buildable unit declared in a workspace
	// manifest, e.g. "Sampleland" or "Cache". Library names double as the
	// root directories handed to discovery, so they carry the same
	// character restrictions as a single path segment.
	LibraryName string

	// InvalidLibraryNameError is returned when a LibraryName is empty or
	// contains whitespace or a path separator.
	InvalidLibraryNameError struct {
		Value  LibraryName
		Reason string
	}
)

// String returns the string representation of the LibraryName.
func (n LibraryName) String() string { return string(n) }

// Validate returns an error if the LibraryName is empty or contains
// whitespace or a path separator.
func (n LibraryName) Validate() error {
	s := string(n)
	switch {
	case s == "":
		return &InvalidLibraryNameError{Value: n, Reason: "must be non-empty"}
	case strings.ContainsAny(s, " \t\n\r"):
		return &InvalidLibraryNameError{Value: n, Reason: "must not contain whitespace"}
	case strings.ContainsAny(s, "/\\"):
		return &InvalidLibraryNameError{Value: n, Reason: "must not contain path separators"}
	}
	return nil
}

// Error implements the error interface for InvalidLibraryNameError.
func (e *InvalidLibraryNameError) Error() string {
	return fmt.Sprintf("invalid library name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidLibraryName for errors.Is() compatibility.
func (e *InvalidLibraryNameError) Unwrap() error { return ErrInvalidLibraryName }
