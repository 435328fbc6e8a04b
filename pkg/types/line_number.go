// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidLineNumber is the sentinel error wrapped by InvalidLineNumberError.
var ErrInvalidLineNumber = errors.New("invalid line number")

type (
	// LineNumber is a 1-based position within a source file. Findings and
	// exception records match on exact line numbers, so the zero value is
	// deliberately invalid: a LineNumber must always be explicit.
	LineNumber int

	// InvalidLineNumberError is returned when a LineNumber is less than 1.
	InvalidLineNumberError struct {
		Value LineNumber
	}
)

// Error implements the error interface.
func (e *InvalidLineNumberError) Error() string {
	return fmt.Sprintf("invalid line number %d (must be >= 1)", e.Value)
}

// Unwrap returns ErrInvalidLineNumber for errors.Is() compatibility.
func (e *InvalidLineNumberError) Unwrap() error { return ErrInvalidLineNumber }

// Validate returns an error if the LineNumber is less than 1.
func (n LineNumber) Validate() error {
	if n < 1 {
		return &InvalidLineNumberError{Value: n}
	}
	return nil
}

// String returns the decimal string representation of the LineNumber.
func (n LineNumber) String() string { return strconv.Itoa(int(n)) }
