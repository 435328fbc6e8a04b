// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidModuleName is the sentinel error wrapped by InvalidModuleNameError.
var ErrInvalidModuleName = errors.New("invalid module name")

type (
	// ModuleName is a dot-joined hierarchical module name derived from a
	// source file path, e.g. "Algebra.Group.Basic" for
	// "Algebra/Group/Basic.lean". Each dot corresponds to exactly one path
	// separator, which keeps the name convertible back to its path.
	ModuleName string

	// InvalidModuleNameError is returned when a ModuleName is empty, has an
	// empty segment, or has a segment containing whitespace or a path
	// separator.
	InvalidModuleNameError struct {
		Value  ModuleName
		Reason string
	}
)

// String returns the string representation of the ModuleName.
func (m ModuleName) String() string { return string(m) }

// Segments splits the ModuleName on dots. Segments of an invalid name are
// whatever strings.Split produces; call Validate first when it matters.
func (m ModuleName) Segments() []string {
	return strings.Split(string(m), ".")
}

// Validate returns an error if the ModuleName is empty, has an empty
// segment (leading, trailing, or doubled dots), or has a segment containing
// whitespace or a path separator.
func (m ModuleName) Validate() error {
	if m == "" {
		return &InvalidModuleNameError{Value: m, Reason: "must be non-empty"}
	}
	for _, seg := range m.Segments() {
		switch {
		case seg == "":
			return &InvalidModuleNameError{Value: m, Reason: "must not have empty segments"}
		case strings.ContainsAny(seg, " \t\n\r"):
			return &InvalidModuleNameError{Value: m, Reason: fmt.Sprintf("segment %q must not contain whitespace", seg)}
		case strings.ContainsAny(seg, "/\\"):
			return &InvalidModuleNameError{Value: m, Reason: fmt.Sprintf("segment %q must not contain path separators", seg)}
		}
	}
	return nil
}

// Error implements the error interface for InvalidModuleNameError.
func (e *InvalidModuleNameError) Error() string {
	return fmt.Sprintf("invalid module name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidModuleName for errors.Is() compatibility.
func (e *InvalidModuleNameError) Unwrap() error { return ErrInvalidModuleName }
