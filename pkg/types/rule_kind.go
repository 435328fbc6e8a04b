// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRuleKind is the sentinel error wrapped by InvalidRuleKindError.
var ErrInvalidRuleKind = errors.New("invalid rule kind")

type (
	// RuleKind is the symbolic tag identifying a lint rule, e.g. "ERR_COP".
	// Kinds form an open set: exception tables may reference kinds that are
	// added to the linter later, so validation checks shape, not membership.
	RuleKind string

	// InvalidRuleKindError is returned when a RuleKind is empty, contains
	// whitespace, or contains the ":" field delimiter.
	InvalidRuleKindError struct {
		Value  RuleKind
		Reason string
	}
)

// String returns the string representation of the RuleKind.
func (k RuleKind) String() string { return string(k) }

// Validate returns an error if the RuleKind is empty, contains whitespace,
// or contains ":". The delimiter exclusion keeps kinds safe to embed in the
// colon-separated exception record format.
func (k RuleKind) Validate() error {
	s := string(k)
	switch {
	case s == "":
		return &InvalidRuleKindError{Value: k, Reason: "must be non-empty"}
	case strings.ContainsAny(s, " \t\n\r"):
		return &InvalidRuleKindError{Value: k, Reason: "must not contain whitespace"}
	case strings.Contains(s, ":"):
		return &InvalidRuleKindError{Value: k, Reason: "must not contain \":\""}
	}
	return nil
}

// Error implements the error interface for InvalidRuleKindError.
func (e *InvalidRuleKindError) Error() string {
	return fmt.Sprintf("invalid rule kind %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidRuleKind for errors.Is() compatibility.
func (e *InvalidRuleKindError) Unwrap() error { return ErrInvalidRuleKind }
