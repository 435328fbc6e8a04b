// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"modlint/pkg/types"
)

// lineLengthRule flags lines longer than the configured limit, counted in
// runes. Lines carrying a URL are exempt since links cannot be wrapped.
type lineLengthRule struct {
	limit int
}

// NewLineLengthRule builds the ERR_LEN rule for the given rune limit.
func NewLineLengthRule(limit int) Rule {
	return &lineLengthRule{limit: limit}
}

func (r *lineLengthRule) Kind() types.RuleKind { return KindLineLength }

func (r *lineLengthRule) Check(src *SourceFile) []Finding {
	var findings []Finding
	for i, raw := range src.Lines {
		line := trimCR(raw)
		if strings.Contains(line, "http") {
			continue
		}
		if n := utf8.RuneCountInString(line); n > r.limit {
			findings = append(findings, Finding{
				Path:    src.Path,
				Line:    types.LineNumber(i + 1),
				Kind:    r.Kind(),
				Message: fmt.Sprintf("line is %d characters long (limit %d)", n, r.limit),
			})
		}
	}
	return findings
}
