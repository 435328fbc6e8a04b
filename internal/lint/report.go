// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"modlint/pkg/types"
)

// Format selects how a lint result is rendered.
type Format string

// Supported output formats.
const (
	// FormatHuman prints one "file : line : kind : message" line per new
	// finding.
	FormatHuman Format = "human"
	// FormatJSON prints the full result as an indented JSON document.
	FormatJSON Format = "json"
	// FormatYAML prints the full result as a YAML document.
	FormatYAML Format = "yaml"
	// FormatGitHub prints workflow commands that annotate the offending
	// lines in a GitHub Actions run.
	FormatGitHub Format = "github"
)

// FormatNames returns the supported format names for flag help and shell
// completion.
func FormatNames() []string {
	return []string{
		string(FormatHuman),
		string(FormatJSON),
		string(FormatYAML),
		string(FormatGitHub),
	}
}

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Validate checks that the format is one of the supported values.
func (f Format) Validate() error {
	switch f {
	case FormatHuman, FormatJSON, FormatYAML, FormatGitHub:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (supported: human, json, yaml, github)", string(f))
	}
}

type (
	// Summary aggregates a lint pass for machine-readable reports.
	Summary struct {
		FilesScanned int                    `json:"files_scanned" yaml:"files_scanned"`
		NewFindings  int                    `json:"new_findings" yaml:"new_findings"`
		Suppressed   int                    `json:"suppressed" yaml:"suppressed"`
		ByKind       map[types.RuleKind]int `json:"by_kind,omitempty" yaml:"by_kind,omitempty"`
	}

	// Report is the machine-readable shape of a lint pass.
	Report struct {
		Findings []Finding `json:"findings" yaml:"findings"`
		Summary  Summary   `json:"summary" yaml:"summary"`
	}
)

// BuildSummary aggregates res. ByKind counts new findings only.
func BuildSummary(res *Result) Summary {
	s := Summary{
		FilesScanned: res.FilesScanned,
		NewFindings:  len(res.New),
		Suppressed:   len(res.Suppressed),
	}
	if len(res.New) > 0 {
		s.ByKind = make(map[types.RuleKind]int)
		for _, f := range res.New {
			s.ByKind[f.Kind]++
		}
	}
	return s
}

// WriteReport renders the new findings of res to w in the given format.
// Suppressed findings appear only in the machine-readable summaries.
func WriteReport(w io.Writer, res *Result, format Format) error {
	switch format {
	case FormatHuman:
		for _, f := range res.New {
			if _, err := fmt.Fprintln(w, f.String()); err != nil {
				return err
			}
		}
		return nil
	case FormatGitHub:
		for _, f := range res.New {
			_, err := fmt.Fprintf(w, "::error file=%s,line=%d,title=%s::%s\n",
				f.Path, f.Line, f.Kind, f.Message)
			if err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(buildReport(res))
	case FormatYAML:
		data, err := yaml.Marshal(buildReport(res))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return format.Validate()
	}
}

func buildReport(res *Result) Report {
	findings := res.New
	if findings == nil {
		findings = []Finding{}
	}
	return Report{Findings: findings, Summary: BuildSummary(res)}
}
