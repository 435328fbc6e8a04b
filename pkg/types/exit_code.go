// SPDX-License-Identifier: MPL-2.0

// Package types holds the small value types shared across the domain
// packages: rule kinds, library and module names, line numbers, relative
// paths, exit codes. Each type validates itself and reports failures
// through a typed error wrapping a package sentinel, so callers can
// errors.Is against the failure class. The package sits at the bottom of
// the import graph and depends only on the standard library.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is a process exit status, 0-255 on POSIX systems. The zero
	// value means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode falls outside 0-255.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// The codes the lint driver exits with. ExitFindings means new style
// violations were reported; ExitFailure means the run itself broke, as
// with bad configuration or an unreadable exception table.
const (
	ExitSuccess  ExitCode = 0
	ExitFindings ExitCode = 1
	ExitFailure  ExitCode = 2
)

// String returns the code in decimal.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// IsSuccess reports whether the code signals a clean run.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// Validate returns an error if the code cannot be represented as a
// process exit status.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// Error implements the error interface for InvalidExitCodeError.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode for errors.Is() compatibility.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }
