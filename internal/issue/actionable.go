// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError carries enough context to tell the user what failed and
// what to do about it: the operation that was underway, the resource it
// touched, and repair suggestions, along with the wrapped cause. The root
// command prints it with Format; everything in between treats it as a
// plain error.
//
// Build one with the ErrorContext builder:
//
//	return issue.NewErrorContext().
//		WithOperation("load exception table").
//		WithResource("scripts/style-exceptions.txt").
//		WithSuggestion("Run 'modlint check --update-exceptions' to regenerate it").
//		Wrap(err).
//		BuildError()
type ActionableError struct {
	// Operation is the verb phrase that failed, e.g. "load exception table".
	Operation string

	// Resource names the file or entity involved, when there is one.
	Resource string

	// Suggestions are repair hints shown under the message.
	Suggestions []string

	// Cause is the wrapped underlying error, if any.
	Cause error
}

// Error renders the single-line form: "failed to <operation>", with the
// resource and the cause appended when present.
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// HasSuggestions reports whether any repair hints are attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// Format renders the error for terminal output. The plain form is the
// Error string followed by bulleted suggestions. With verbose set, the
// unwrapped cause chain is appended too, one numbered line per error.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		b.WriteString("\n")
		for _, s := range e.Suggestions {
			b.WriteString("\n  • ")
			b.WriteString(s)
		}
	}

	if verbose && e.Cause != nil {
		b.WriteString("\n\nError chain:")
		for i, msg := range causeChain(e.Cause) {
			fmt.Fprintf(&b, "\n  %d. %s", i+1, msg)
		}
	}

	return b.String()
}

// causeChain unwraps err repeatedly and collects each message in order.
func causeChain(err error) []string {
	var msgs []string
	for ; err != nil; err = errors.Unwrap(err) {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// NewActionableError returns an error holding only an operation. Handy
// when the operation name alone says everything.
func NewActionableError(operation string) *ActionableError {
	return &ActionableError{Operation: operation}
}

// WrapWithOperation attaches an operation to err. A nil err yields a nil
// result, so call sites can wrap return values unconditionally.
func WrapWithOperation(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Cause: err}
}

// WrapWithContext attaches an operation and a resource to err. A nil err
// yields a nil result.
func WrapWithContext(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Resource: resource, Cause: err}
}

// ErrorContext accumulates context before the outcome of an operation is
// known. Declare it up front, then wrap whichever error shows up:
//
//	ectx := issue.NewErrorContext().
//		WithOperation("load workspace manifest").
//		WithResource(path)
//	...
//	return ectx.Wrap(err).BuildError()
type ErrorContext struct {
	operation   string
	resource    string
	suggestions []string
	cause       error
}

// NewErrorContext returns an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WithOperation records the verb phrase being attempted.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource records the file or entity involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion appends one repair hint.
func (c *ErrorContext) WithSuggestion(s string) *ErrorContext {
	c.suggestions = append(c.suggestions, s)
	return c
}

// WithSuggestions appends several repair hints at once.
func (c *ErrorContext) WithSuggestions(s ...string) *ErrorContext {
	c.suggestions = append(c.suggestions, s...)
	return c
}

// Wrap records the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build assembles the ActionableError. An operation is mandatory; without
// one Build returns nil.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError is Build with an error return type, for feeding a return
// statement directly. A nil *ActionableError inside an error interface
// would compare non-nil, so BuildError returns an untyped nil instead.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
