// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"os"
	"strings"

	"modlint/internal/issue"
	"modlint/pkg/types"
)

// SourceFile is one file loaded into line-addressed form.
type SourceFile struct {
	// Path is the file's root-relative path.
	Path types.RelPath
	// Lines holds the file content split on "\n". A trailing "\r" left
	// over from a CRLF ending is preserved so the line-ending rule can
	// detect it; rules that inspect text should go through trimCR.
	Lines []string
}

// ReadSource loads the file at fsPath and records it under relPath. A read
// failure is fatal for the lint pass and is surfaced as an actionable error.
func ReadSource(fsPath string, relPath types.RelPath) (*SourceFile, error) {
	data, err := os.ReadFile(fsPath)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read source file").
			WithResource(fsPath).
			WithSuggestion("Verify the file is readable and was not deleted mid-run").
			Wrap(err).
			BuildError()
	}
	return &SourceFile{Path: relPath, Lines: splitLines(string(data))}, nil
}

// splitLines breaks content on "\n" without introducing a phantom empty
// line for the conventional trailing newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// trimCR strips a single trailing carriage return, normalizing a CRLF line
// for rules that inspect its text.
func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}
