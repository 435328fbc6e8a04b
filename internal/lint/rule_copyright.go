// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"fmt"
	"regexp"
	"strings"

	"modlint/pkg/types"
)

// copyrightPattern matches the holder line of a well-formed header, e.g.
// "Copyright (c) 2024 Jane Doe. All rights reserved." with an optional
// year range.
var copyrightPattern = regexp.MustCompile(`^Copyright \(c\) \d{4}(-\d{4})? .+\. All rights reserved\.$`)

// authorsPrefix opens the header's attribution line. Continuation lines
// before the closing delimiter are accepted unchecked so long author lists
// can wrap.
const authorsPrefix = "Authors: "

// copyrightRule checks that a file opens with a comment block of the form
//
//	/-
//	Copyright (c) YYYY Holder. All rights reserved.
//	Released under ... license as described in the file LICENSE.
//	Authors: A. Author, B. Author
//	-/
//
// It reports at most one finding per file, pointing at the first line that
// breaks the grammar.
type copyrightRule struct {
	cfg CopyrightConfig
}

// NewCopyrightRule builds the ERR_COP rule for the given header grammar.
func NewCopyrightRule(cfg CopyrightConfig) Rule {
	return &copyrightRule{cfg: cfg}
}

func (r *copyrightRule) Kind() types.RuleKind { return KindCopyright }

func (r *copyrightRule) Check(src *SourceFile) []Finding {
	fail := func(line int, message string) []Finding {
		return []Finding{{
			Path:    src.Path,
			Line:    types.LineNumber(line),
			Kind:    r.Kind(),
			Message: message,
		}}
	}

	if len(src.Lines) == 0 {
		return fail(1, "missing copyright header")
	}
	if trimCR(src.Lines[0]) != r.cfg.CommentOpen {
		return fail(1, fmt.Sprintf("file must open with %q", r.cfg.CommentOpen))
	}

	closeIdx := -1
	for i := 1; i < len(src.Lines); i++ {
		if trimCR(src.Lines[i]) == r.cfg.CommentClose {
			closeIdx = i
			break
		}
	}
	if closeIdx == -1 {
		return fail(1, "unterminated copyright header")
	}
	if closeIdx < 4 {
		return fail(closeIdx+1, "copyright header is incomplete")
	}

	if !copyrightPattern.MatchString(trimCR(src.Lines[1])) {
		return fail(2, `copyright line must read "Copyright (c) YYYY Holder. All rights reserved."`)
	}
	if trimCR(src.Lines[2]) != r.cfg.LicenseLine {
		return fail(3, fmt.Sprintf("license line must read %q", r.cfg.LicenseLine))
	}
	if !strings.HasPrefix(trimCR(src.Lines[3]), authorsPrefix) {
		return fail(4, fmt.Sprintf("authors line must start with %q", authorsPrefix))
	}
	return nil
}
