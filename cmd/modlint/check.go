// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"modlint/internal/config"
	"modlint/internal/discovery"
	"modlint/internal/exceptions"
	"modlint/internal/issue"
	"modlint/internal/lint"
	"modlint/internal/watch"
	"modlint/pkg/types"
)

type (
	// checkParams bundles the inputs of one lint pass, enabling the core
	// logic in runCheck to be tested without a real Cobra command.
	checkParams struct {
		stdout io.Writer
		stderr io.Writer

		// roots are the library directories to lint, each discovered
		// independently.
		roots []string
		// ext is the source file extension, without a leading dot.
		ext string
		// useGit selects the git listing over the direct walk.
		useGit bool
		// lister overrides the git listing in tests. nil means the real one.
		lister discovery.Lister

		// exceptionsPath locates the exception table.
		exceptionsPath string
		// kinds restricts which rules run. Empty means all.
		kinds []types.RuleKind
		// rules are the checks to run.
		rules []lint.Rule
		// format selects the report rendering.
		format lint.Format

		// audit reports stale exception records instead of findings.
		audit bool
		// update regenerates the exception table from the current findings.
		update bool

		// issueStyle is the glamour style used for remediation cards.
		issueStyle string
	}

	// checkOutcome summarizes one pass for exit-code decisions.
	checkOutcome struct {
		newFindings  int
		staleRecords int
	}
)

// newCheckCommand creates the `modlint check` command, the main lint driver.
func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Lint the source tree and report new style violations",
		Long: `Lint the source tree and report new style violations.

With a root argument, one library directory is linted. Without one, the
workspace manifest supplies the full build-library list and every library
is linted.

Violations recorded in the exception table are suppressed; only new
violations are reported, one per line:

  <file path> : <line number> : <rule kind> : <message>

The command exits 0 when no new violations were found and 1 otherwise.`,
		Example: `  # Lint one library directory
  modlint check Sampleland

  # Lint every workspace build library
  modlint check

  # Only check line length and forbidden strings
  modlint check --kind ERR_LEN --kind ERR_STR

  # Grandfather the current violations
  modlint check --update-exceptions

  # Re-lint on every change
  modlint check --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			cfg := config.Get()
			p, err := buildCheckParams(cmd, args, cfg)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatErrorForDisplay(err, verbose))
				return &ExitError{Code: types.ExitFailure, Err: err}
			}

			if watchMode, _ := cmd.Flags().GetBool("watch"); watchMode {
				return runCheckWatch(cmd.Context(), p, cfg)
			}

			outcome, err := runCheck(cmd.Context(), p)
			if err != nil {
				fmt.Fprintln(p.stderr, formatErrorForDisplay(err, verbose))
				return &ExitError{Code: types.ExitFailure, Err: err}
			}
			return outcome.exitError()
		},
	}

	addDiscoveryFlags(cmd)
	addExceptionsFlag(cmd)
	cmd.Flags().StringArray("kind", nil, "only run rules of this kind (repeatable)")
	cmd.Flags().String("format", string(lint.FormatHuman), "output format: human, json, yaml, github")
	cmd.Flags().Bool("audit-exceptions", false, "report stale exception records instead of findings")
	cmd.Flags().Bool("update-exceptions", false, "regenerate the exception table from the current findings")
	cmd.Flags().Bool("watch", false, "watch the tree and re-lint on change")

	registerCheckCompletions(cmd)
	return cmd
}

// registerCheckCompletions wires shell completion for the flags with a
// known value set. The kind set is open, so built-in kinds are offered as
// suggestions without excluding custom ones.
func registerCheckCompletions(cmd *cobra.Command) {
	cmd.RegisterFlagCompletionFunc("kind",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			specs := lint.BuiltinSpecs()
			kinds := make([]string, 0, len(specs))
			for _, spec := range specs {
				kinds = append(kinds, fmt.Sprintf("%s\t%s", spec.Kind, spec.Summary))
			}
			return kinds, cobra.ShellCompDirectiveNoFileComp
		})
	cmd.RegisterFlagCompletionFunc("format",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return lint.FormatNames(), cobra.ShellCompDirectiveNoFileComp
		})
}

// buildCheckParams resolves flags and configuration into checkParams.
func buildCheckParams(cmd *cobra.Command, args []string, cfg *config.Config) (checkParams, error) {
	roots, err := resolveRoots(args, cfg)
	if err != nil {
		return checkParams{}, err
	}

	// The audit subcommand shares this builder but registers neither --kind
	// nor --format; fall back to defaults when a flag is absent.
	var rawKinds []string
	if cmd.Flags().Lookup("kind") != nil {
		rawKinds, _ = cmd.Flags().GetStringArray("kind")
	}
	kinds, err := parseKinds(rawKinds)
	if err != nil {
		return checkParams{}, err
	}

	rawFormat := string(lint.FormatHuman)
	if cmd.Flags().Lookup("format") != nil {
		rawFormat, _ = cmd.Flags().GetString("format")
	}
	format, err := lint.ParseFormat(rawFormat)
	if err != nil {
		return checkParams{}, err
	}

	rules, err := lint.BuildRules(lintConfigFrom(cfg))
	if err != nil {
		return checkParams{}, err
	}

	audit, _ := cmd.Flags().GetBool("audit-exceptions")
	update, _ := cmd.Flags().GetBool("update-exceptions")
	if audit && update {
		return checkParams{}, fmt.Errorf("--audit-exceptions and --update-exceptions are mutually exclusive")
	}

	return checkParams{
		stdout:         cmd.OutOrStdout(),
		stderr:         cmd.ErrOrStderr(),
		roots:          roots,
		ext:            resolveExt(cmd, cfg),
		useGit:         resolveUseGit(cmd, cfg),
		exceptionsPath: resolveExceptionsPath(cmd, cfg),
		kinds:          kinds,
		rules:          rules,
		format:         format,
		audit:          audit,
		update:         update,
		issueStyle:     issueStyleFrom(cfg),
	}, nil
}

// exitError maps the outcome to the process exit contract: stale or new
// findings exit 1, a clean pass exits 0.
func (o checkOutcome) exitError() error {
	if o.newFindings > 0 {
		return &ExitError{
			Code: types.ExitFindings,
			Err:  fmt.Errorf("%d new style violation(s)", o.newFindings),
		}
	}
	if o.staleRecords > 0 {
		return &ExitError{
			Code: types.ExitFindings,
			Err:  fmt.Errorf("%d stale exception record(s)", o.staleRecords),
		}
	}
	return nil
}

// runCheck executes one full lint pass: discover, load exceptions, lint,
// then report, audit, or regenerate depending on the mode.
func runCheck(ctx context.Context, p checkParams) (checkOutcome, error) {
	files, err := discoverFiles(ctx, p)
	if err != nil {
		return checkOutcome{}, err
	}

	registry, err := exceptions.Load(p.exceptionsPath)
	if err != nil {
		renderIssue(p.stderr, issue.ExceptionsMalformedId, p.issueStyle)
		return checkOutcome{}, err
	}

	runner := lint.Runner{Rules: p.rules, Registry: registry, Kinds: p.kinds}
	result, err := runner.Run(ctx, files)
	if err != nil {
		return checkOutcome{}, err
	}

	if p.update {
		return checkOutcome{}, updateExceptions(p, result)
	}
	if p.audit {
		return auditExceptions(p, registry, result)
	}

	if err := lint.WriteReport(p.stdout, result, p.format); err != nil {
		return checkOutcome{}, err
	}
	if p.format == lint.FormatHuman {
		writeCheckSummary(p.stderr, result)
	}
	return checkOutcome{newFindings: len(result.New)}, nil
}

// discoverFiles enumerates every root and merges the listings. Roots are
// pre-sorted and per-root listings are sorted, so the merged listing is
// globally lexicographic.
func discoverFiles(ctx context.Context, p checkParams) ([]string, error) {
	var files []string
	for _, root := range p.roots {
		info, statErr := os.Stat(root)
		if statErr != nil {
			renderIssue(p.stderr, issue.RootNotFoundId, p.issueStyle)
			return nil, issue.NewErrorContext().
				WithOperation("open lint root").
				WithResource(root).
				WithSuggestion("Check the spelling of the root directory").
				WithSuggestion("Run modlint from the repository root").
				Wrap(statErr).
				BuildError()
		}
		if !info.IsDir() {
			renderIssue(p.stderr, issue.RootNotFoundId, p.issueStyle)
			return nil, fmt.Errorf("lint root %q is not a directory", root)
		}

		listing, err := discovery.Files(ctx, discovery.Options{
			Root:        root,
			Ext:         p.ext,
			UseGit:      p.useGit,
			ListTracked: p.lister,
		})
		if err != nil {
			if p.useGit {
				renderIssue(p.stderr, issue.GitListingFailedId, p.issueStyle)
			}
			return nil, err
		}

		// Dropped stale entries are recovered conditions; they surface only
		// at debug level.
		for _, d := range listing.Diagnostics {
			slog.Debug("discovery diagnostic",
				"code", d.Code, "path", d.Path, "message", d.Message)
		}
		files = append(files, listing.Files...)
	}
	return files, nil
}

// updateExceptions rewrites the exception table so that every current
// violation is grandfathered and stale records are dropped.
func updateExceptions(p checkParams, result *lint.Result) error {
	records := result.AllRecords()
	if err := exceptions.WriteFile(p.exceptionsPath, records); err != nil {
		return err
	}
	fmt.Fprintf(p.stderr, "%s wrote %d exception record(s) to %s\n",
		SuccessStyle.Render("✓"), len(records), p.exceptionsPath)
	return nil
}

// auditExceptions reports exception records whose position no longer
// matches any current finding.
func auditExceptions(p checkParams, registry *exceptions.Registry, result *lint.Result) (checkOutcome, error) {
	stale := registry.Stale(result.LiveKeys())
	for _, rec := range stale {
		if _, err := fmt.Fprintln(p.stdout, rec.String()); err != nil {
			return checkOutcome{}, err
		}
	}
	if len(stale) == 0 {
		fmt.Fprintf(p.stderr, "%s all %d exception record(s) still match a finding\n",
			SuccessStyle.Render("✓"), registry.Len())
	} else {
		fmt.Fprintln(p.stderr, WarningStyle.Render(
			fmt.Sprintf("%d stale exception record(s); remove them or re-run with --update-exceptions", len(stale))))
	}
	return checkOutcome{staleRecords: len(stale)}, nil
}

// writeCheckSummary prints the one-line pass summary.
func writeCheckSummary(w io.Writer, result *lint.Result) {
	findings := ""
	if len(result.New) == 0 {
		findings = SuccessStyle.Render("no new findings")
	} else {
		findings = ErrorStyle.Render(fmt.Sprintf("%d new finding(s)", len(result.New)))
	}
	fmt.Fprintf(w, "%s %d file(s) scanned, %s, %d suppressed\n",
		SubtitleStyle.Render("summary:"), result.FilesScanned, findings, len(result.Suppressed))
}

// renderIssue writes a remediation card for the given catalog entry.
// Rendering failures are logged and swallowed; the card is advisory.
func renderIssue(w io.Writer, id issue.Id, style string) {
	rendered, err := issue.Get(id).Render(style)
	if err != nil {
		slog.Warn("failed to render issue catalog entry", "issueID", int(id), "error", err)
		return
	}
	fmt.Fprint(w, rendered)
}

// runCheckWatch runs an initial pass, then re-lints whenever a source
// file, the exception table, or the workspace manifest changes. Watch mode
// runs until interrupted and does not translate findings into exit codes.
func runCheckWatch(ctx context.Context, p checkParams, cfg *config.Config) error {
	runOnce := func(ctx context.Context) {
		if _, err := runCheck(ctx, p); err != nil {
			fmt.Fprintln(p.stderr, formatErrorForDisplay(err, verbose))
		}
	}
	runOnce(ctx)

	patterns := watch.ForExtension(p.ext)
	if p.exceptionsPath != "" {
		patterns = append(patterns, watch.GlobPattern(filepath.ToSlash(p.exceptionsPath)))
	}
	if manifest := string(cfg.Workspace.Manifest); manifest != "" {
		patterns = append(patterns, watch.GlobPattern(filepath.ToSlash(manifest)))
	}

	w, err := watch.New(watch.Config{
		Patterns:    patterns,
		ClearScreen: true,
		Stdout:      p.stdout,
		Stderr:      p.stderr,
		OnChange: func(ctx context.Context, changed []string) error {
			slog.Debug("re-linting after change", "changed", len(changed))
			runOnce(ctx)
			return nil
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(p.stderr, SubtitleStyle.Render("watching for changes (ctrl-c to stop)"))
	return w.Run(ctx)
}
