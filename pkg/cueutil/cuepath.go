// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCUEPath is the sentinel wrapped by InvalidCUEPathError, for
// errors.Is checks.
var ErrInvalidCUEPath = errors.New("invalid CUE path")

// CUEPath is a JSON-path style reference into a CUE document, such as
// "#Config" or "style.forbidden_strings[0]". The only requirement is
// that it is not blank.
type CUEPath string

// String returns the path as a plain string.
func (p CUEPath) String() string { return string(p) }

// Validate rejects empty and whitespace-only paths.
func (p CUEPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return &InvalidCUEPathError{Value: p}
	}
	return nil
}

// InvalidCUEPathError reports a blank CUEPath.
type InvalidCUEPathError struct {
	Value CUEPath
}

func (e *InvalidCUEPathError) Error() string {
	return fmt.Sprintf("invalid CUE path %q: must be non-empty", e.Value)
}

func (e *InvalidCUEPathError) Unwrap() error { return ErrInvalidCUEPath }
