// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"strings"

	"modlint/pkg/types"
)

// trailingRule flags lines ending in spaces or tabs. The carriage return of
// a CRLF ending is stripped first so a Windows line is not double-reported;
// ERR_WIN owns that concern.
type trailingRule struct{}

// NewTrailingRule builds the ERR_TWS rule.
func NewTrailingRule() Rule {
	return trailingRule{}
}

func (trailingRule) Kind() types.RuleKind { return KindTrailing }

func (r trailingRule) Check(src *SourceFile) []Finding {
	var findings []Finding
	for i, raw := range src.Lines {
		line := trimCR(raw)
		if line != strings.TrimRight(line, " \t") {
			findings = append(findings, Finding{
				Path:    src.Path,
				Line:    types.LineNumber(i + 1),
				Kind:    r.Kind(),
				Message: "line has trailing whitespace",
			})
		}
	}
	return findings
}
