// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"fmt"

	"modlint/pkg/types"
)

// Kinds of the shipped rules. The set is open: exception tables and kind
// filters may name kinds that no shipped rule produces.
const (
	// KindCopyright flags files whose leading comment block is not a
	// well-formed copyright header.
	KindCopyright types.RuleKind = "ERR_COP"
	// KindForbidden flags lines containing a configured forbidden string.
	KindForbidden types.RuleKind = "ERR_STR"
	// KindTrailing flags lines with trailing whitespace.
	KindTrailing types.RuleKind = "ERR_TWS"
	// KindLineEnding flags lines terminated with CRLF.
	KindLineEnding types.RuleKind = "ERR_WIN"
	// KindLineLength flags lines exceeding the configured length limit.
	KindLineLength types.RuleKind = "ERR_LEN"
)

type (
	// Rule checks one style concern over a single source file. A rule
	// produces at most one finding per line so that every finding maps to
	// a distinct exception key.
	Rule interface {
		// Kind returns the stable tag attached to the rule's findings.
		Kind() types.RuleKind
		// Check returns the rule's findings for src, in line order.
		Check(src *SourceFile) []Finding
	}

	// RuleSpec describes a shipped rule for help output and docs.
	RuleSpec struct {
		Kind    types.RuleKind
		Summary string
	}

	// Config carries the tunable parts of the shipped rules.
	Config struct {
		// MaxLineLength is the limit enforced by ERR_LEN, in runes.
		MaxLineLength int
		// ForbiddenStrings are the needles searched for by ERR_STR.
		ForbiddenStrings []string
		// Copyright configures the header grammar checked by ERR_COP.
		Copyright CopyrightConfig
	}

	// CopyrightConfig is the expected shape of a file's leading comment
	// block.
	CopyrightConfig struct {
		// CommentOpen is the exact text of the block's first line.
		CommentOpen string
		// CommentClose is the exact text of the block's closing line.
		CommentClose string
		// LicenseLine is the exact text required on the third line.
		LicenseLine string
	}
)

// builtinSpecs is ordered by kind tag for stable help output.
var builtinSpecs = []RuleSpec{
	{Kind: KindCopyright, Summary: "malformed or missing copyright header"},
	{Kind: KindLineLength, Summary: "line longer than the configured limit"},
	{Kind: KindForbidden, Summary: "line contains a forbidden string"},
	{Kind: KindTrailing, Summary: "trailing whitespace"},
	{Kind: KindLineEnding, Summary: "windows line ending"},
}

// BuiltinSpecs returns descriptions of the shipped rules.
func BuiltinSpecs() []RuleSpec {
	out := make([]RuleSpec, len(builtinSpecs))
	copy(out, builtinSpecs)
	return out
}

// IsBuiltinKind reports whether kind belongs to a shipped rule.
func IsBuiltinKind(kind types.RuleKind) bool {
	for _, spec := range builtinSpecs {
		if spec.Kind == kind {
			return true
		}
	}
	return false
}

// DefaultConfig returns the rule configuration used when nothing overrides
// it.
func DefaultConfig() Config {
	return Config{
		MaxLineLength:    100,
		ForbiddenStrings: []string{"sorry"},
		Copyright: CopyrightConfig{
			CommentOpen:  "/-",
			CommentClose: "-/",
			LicenseLine:  "Released under Apache 2.0 license as described in the file LICENSE.",
		},
	}
}

// Validate checks that the configuration can drive every shipped rule.
func (c Config) Validate() error {
	if c.MaxLineLength < 1 {
		return fmt.Errorf("max line length must be at least 1, got %d", c.MaxLineLength)
	}
	for _, s := range c.ForbiddenStrings {
		if s == "" {
			return fmt.Errorf("forbidden strings must be non-empty")
		}
	}
	if c.Copyright.CommentOpen == "" || c.Copyright.CommentClose == "" {
		return fmt.Errorf("copyright comment delimiters must be non-empty")
	}
	if c.Copyright.LicenseLine == "" {
		return fmt.Errorf("copyright license line must be non-empty")
	}
	return nil
}

// BuildRules constructs the shipped rules from cfg, in catalog order.
func BuildRules(cfg Config) ([]Rule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule configuration: %w", err)
	}
	return []Rule{
		NewCopyrightRule(cfg.Copyright),
		NewLineLengthRule(cfg.MaxLineLength),
		NewForbiddenRule(cfg.ForbiddenStrings),
		NewTrailingRule(),
		NewLineEndingRule(),
	}, nil
}
