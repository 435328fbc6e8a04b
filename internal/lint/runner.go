// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"context"
	"fmt"
	"slices"

	"modlint/internal/exceptions"
	"modlint/pkg/types"
)

type (
	// Runner drives one lint pass over a set of discovered files.
	Runner struct {
		// Rules are the checks to run against every file.
		Rules []Rule
		// Registry holds the grandfathered violations. A nil registry
		// suppresses nothing.
		Registry *exceptions.Registry
		// Kinds restricts which rules run. Empty means all.
		Kinds []types.RuleKind
	}

	// Result is the outcome of one lint pass.
	Result struct {
		// New are findings not covered by the exception registry,
		// ordered by path, line, and kind.
		New []Finding
		// Suppressed are findings covered by the exception registry,
		// in the same order.
		Suppressed []Finding
		// FilesScanned counts the files read during the pass.
		FilesScanned int
	}
)

// activeRules returns the rules selected by the kind filter.
func (r *Runner) activeRules() []Rule {
	if len(r.Kinds) == 0 {
		return r.Rules
	}
	var active []Rule
	for _, rule := range r.Rules {
		if slices.Contains(r.Kinds, rule.Kind()) {
			active = append(active, rule)
		}
	}
	return active
}

// Run lints files, which must be root-relative paths resolvable from the
// current directory. A file that cannot be read aborts the pass.
func (r *Runner) Run(ctx context.Context, files []string) (*Result, error) {
	rules := r.activeRules()
	result := &Result{}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rel := types.RelPath(file)
		if err := rel.Validate(); err != nil {
			return nil, fmt.Errorf("lint %q: %w", file, err)
		}
		src, err := ReadSource(file, rel)
		if err != nil {
			return nil, err
		}
		result.FilesScanned++
		for _, rule := range rules {
			for _, finding := range rule.Check(src) {
				if r.Registry.Lookup(finding.Path, finding.Line, finding.Kind) {
					result.Suppressed = append(result.Suppressed, finding)
				} else {
					result.New = append(result.New, finding)
				}
			}
		}
	}
	SortFindings(result.New)
	SortFindings(result.Suppressed)
	return result, nil
}

// LiveKeys returns the key of every finding of the pass, new and
// suppressed alike. It feeds the staleness audit of the exception registry.
func (res *Result) LiveKeys() map[exceptions.Key]bool {
	live := make(map[exceptions.Key]bool, len(res.New)+len(res.Suppressed))
	for _, f := range res.New {
		live[f.Key()] = true
	}
	for _, f := range res.Suppressed {
		live[f.Key()] = true
	}
	return live
}

// AllRecords converts every finding of the pass into exception records.
// Writing them back regenerates the exception table with stale entries
// dropped and current violations grandfathered.
func (res *Result) AllRecords() []exceptions.Record {
	records := make([]exceptions.Record, 0, len(res.New)+len(res.Suppressed))
	for _, f := range res.New {
		records = append(records, f.Record())
	}
	for _, f := range res.Suppressed {
		records = append(records, f.Record())
	}
	return records
}
