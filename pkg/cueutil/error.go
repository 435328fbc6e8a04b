// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// ValidationError is a single CUE validation failure tied to a location.
// FormatError returns one of these when the underlying CUE error carries
// exactly one failure.
type ValidationError struct {
	// FilePath is the file being validated.
	FilePath string

	// CUEPath locates the offending value inside the document. Empty for
	// file-level problems such as syntax errors.
	CUEPath CUEPath

	// Message is the failure text with any redundant path prefix stripped.
	Message string

	// Suggestion optionally hints at a fix. Not part of Error() output;
	// callers that render suggestions read it directly.
	Suggestion string
}

// Error renders "<file>: <path>: <message>", dropping the path segment
// when it is empty.
func (e *ValidationError) Error() string {
	if e.CUEPath == "" {
		return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.FilePath, e.CUEPath, e.Message)
}

// Unwrap returns nil; a ValidationError is a leaf.
func (e *ValidationError) Unwrap() error {
	return nil
}

// FormatError rewrites a CUE error so every failure is prefixed with the
// file and a JSON-path location:
//
//	modlint.cue: use_git: expected bool, got string
//	modlint.cue: style.forbidden_strings[0]: value exceeds maximum length
//
// A single failure comes back as a *ValidationError; several failures are
// joined into one multi-line error. A nil err stays nil.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrs := errors.Errors(err)
	if len(cueErrs) == 0 {
		// Not a CUE error at all; just anchor it to the file.
		return fmt.Errorf("%s: %w", filePath, err)
	}

	if len(cueErrs) == 1 {
		path, msg := locate(cueErrs[0])
		return &ValidationError{
			FilePath: filePath,
			CUEPath:  CUEPath(path),
			Message:  msg,
		}
	}

	lines := make([]string, 0, len(cueErrs))
	for _, ce := range cueErrs {
		path, msg := locate(ce)
		if path != "" {
			msg = path + ": " + msg
		}
		lines = append(lines, msg)
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// locate extracts the JSON-path location and the message of one CUE
// error. CUE often repeats the path inside the message; the duplicate
// prefix is stripped so it appears once.
func locate(ce errors.Error) (path, msg string) {
	path = formatPath(errors.Path(ce))
	msg = ce.Error()

	if path != "" && strings.HasPrefix(msg, path) {
		msg = strings.TrimPrefix(msg, path)
		msg = strings.TrimPrefix(msg, ":")
		msg = strings.TrimSpace(msg)
	}
	return path, msg
}

// formatPath renders a CUE error path as JSON-path notation. CUE hands
// the path over as a flat slice where numeric elements are list indices,
// so ["drop_libs", "0"] becomes "drop_libs[0]".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isDigits(part):
			b.WriteString("[" + part + "]")
		case i > 0:
			b.WriteString("." + part)
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize rejects data larger than maxSize bytes. Exposed so
// callers can bound a file before handing it to the parser.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxSize)
	}
	return nil
}
