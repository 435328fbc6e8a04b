// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"fmt"
	"strings"

	"modlint/pkg/types"
)

// forbiddenRule flags lines containing any configured needle. A line with
// several needles yields one finding naming the first, keeping findings
// unique per position.
type forbiddenRule struct {
	needles []string
}

// NewForbiddenRule builds the ERR_STR rule for the given needles.
func NewForbiddenRule(needles []string) Rule {
	return &forbiddenRule{needles: needles}
}

func (r *forbiddenRule) Kind() types.RuleKind { return KindForbidden }

func (r *forbiddenRule) Check(src *SourceFile) []Finding {
	var findings []Finding
	for i, raw := range src.Lines {
		line := trimCR(raw)
		for _, needle := range r.needles {
			if strings.Contains(line, needle) {
				findings = append(findings, Finding{
					Path:    src.Path,
					Line:    types.LineNumber(i + 1),
					Kind:    r.Kind(),
					Message: fmt.Sprintf("line contains the forbidden string %q", needle),
				})
				break
			}
		}
	}
	return findings
}
