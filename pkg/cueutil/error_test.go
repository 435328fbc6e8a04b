// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

func TestFormatErrorNil(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "test.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}
}

func TestFormatErrorPlainError(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	err := FormatError(plain, "test.cue")
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"test.cue", "boom"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("FormatError output %q is missing %q", err, want)
		}
	}
	if !errors.Is(err, plain) {
		t.Error("FormatError should wrap the original error")
	}
}

func TestFormatErrorSingleFailure(t *testing.T) {
	t.Parallel()

	v := cuecontext.New().CompileString(`x: int & "nope"`)
	cueErrs := cueerrors.Errors(v.Validate())
	if len(cueErrs) == 0 {
		t.Fatal("fixture should fail validation")
	}

	err := FormatError(cueErrs[0], "modlint.cue")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("single failure should format as *ValidationError, got %T: %v", err, err)
	}
	if verr.FilePath != "modlint.cue" {
		t.Errorf("FilePath = %q, want modlint.cue", verr.FilePath)
	}
	if verr.CUEPath != "x" {
		t.Errorf("CUEPath = %q, want x", verr.CUEPath)
	}
	if !strings.HasPrefix(err.Error(), "modlint.cue: x: ") {
		t.Errorf("message %q should start with file and path", err)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{"empty", nil, ""},
		{"single field", []string{"extension"}, "extension"},
		{"nested fields", []string{"style", "max_line_length"}, "style.max_line_length"},
		{"list index", []string{"style", "forbidden_strings", "0"}, "style.forbidden_strings[0]"},
		{"index then field", []string{"groups", "0", "entries", "2", "name"}, "groups[0].entries[2].name"},
		{"adjacent indices", []string{"items", "0", "values", "1"}, "items[0].values[1]"},
		{"leading digits stay a field", []string{"0", "x"}, "0.x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		limit   int64
		wantErr bool
	}{
		{"well under", 11, 100, false},
		{"exactly at the limit", 100, 100, false},
		{"one byte over", 101, 100, true},
		{"empty input", 0, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CheckFileSize(make([]byte, tt.size), tt.limit, "test.cue")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFileSize(%d bytes, limit %d) error = %v, wantErr %v",
					tt.size, tt.limit, err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "test.cue") {
				t.Errorf("size error %q should name the file", err)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{
			"with path",
			ValidationError{FilePath: "modlint.cue", CUEPath: "style.max_line_length", Message: "expected int, got string"},
			"modlint.cue: style.max_line_length: expected int, got string",
		},
		{
			"without path",
			ValidationError{FilePath: "modlint.cue", Message: "syntax error"},
			"modlint.cue: syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationErrorIsALeaf(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{FilePath: "modlint.cue", Message: "bad value", Suggestion: "quote the string"}
	if verr.Unwrap() != nil {
		t.Error("Unwrap() should return nil")
	}
	// The suggestion rides along for callers but stays out of the message.
	if strings.Contains(verr.Error(), verr.Suggestion) {
		t.Error("Error() should not include the suggestion")
	}
}
