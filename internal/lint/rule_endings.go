// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"strings"

	"modlint/pkg/types"
)

// lineEndingRule flags CRLF line endings. Because lines are split on "\n",
// a Windows-terminated line shows up as a trailing "\r".
type lineEndingRule struct{}

// NewLineEndingRule builds the ERR_WIN rule.
func NewLineEndingRule() Rule {
	return lineEndingRule{}
}

func (lineEndingRule) Kind() types.RuleKind { return KindLineEnding }

func (r lineEndingRule) Check(src *SourceFile) []Finding {
	var findings []Finding
	for i, raw := range src.Lines {
		if strings.HasSuffix(raw, "\r") {
			findings = append(findings, Finding{
				Path:    src.Path,
				Line:    types.LineNumber(i + 1),
				Kind:    r.Kind(),
				Message: "line ends with a carriage return",
			})
		}
	}
	return findings
}
