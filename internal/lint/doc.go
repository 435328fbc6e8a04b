// SPDX-License-Identifier: MPL-2.0

// Package lint runs the style rules over discovered source files and
// separates new violations from grandfathered ones.
//
// Each rule checks one concern (copyright header, line length, trailing
// whitespace, ...) and tags its findings with a stable rule kind such as
// "ERR_COP". The Runner feeds every discovered file through the active
// rules, consults the exception registry for each finding, and returns the
// split result: new findings fail the run, suppressed findings do not.
//
// File organization:
//   - finding.go: the Finding value and ordering
//   - source.go: reading files into line-addressed form
//   - rules.go: the Rule interface, kind catalog, and rule construction
//   - rule_*.go: one file per shipped rule
//   - runner.go: the lint pass itself
//   - report.go: rendering results (human, json, yaml, github)
package lint
