// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"modlint/internal/config"
	"modlint/internal/exceptions"
	"modlint/internal/issue"
	"modlint/pkg/types"
)

// newExceptionsCommand creates the `modlint exceptions` command tree.
func newExceptionsCommand() *cobra.Command {
	excCmd := &cobra.Command{
		Use:   "exceptions",
		Short: "Inspect the style exception table",
		Long: `Inspect the style exception table.

The exception table grandfathers existing violations so that only new
ones fail a check. Each record names one violation:

  <file path> : <line number> : <rule kind> : <message>`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	excCmd.AddCommand(newExceptionsListCommand())
	excCmd.AddCommand(newExceptionsAuditCommand())

	return excCmd
}

// newExceptionsListCommand creates `modlint exceptions list`.
func newExceptionsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the exception table records in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			cfg := config.Get()
			path := resolveExceptionsPath(cmd, cfg)

			registry, err := exceptions.Load(path)
			if err != nil {
				renderIssue(cmd.ErrOrStderr(), issue.ExceptionsMalformedId, issueStyleFrom(cfg))
				fmt.Fprintln(cmd.ErrOrStderr(), formatErrorForDisplay(err, verbose))
				return &ExitError{Code: types.ExitFailure, Err: err}
			}

			for _, rec := range registry.Records() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), rec.String()); err != nil {
					return &ExitError{Code: types.ExitFailure, Err: err}
				}
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n",
				SubtitleStyle.Render(fmt.Sprintf("%d record(s) in %s", registry.Len(), path)))
			return nil
		},
	}

	addExceptionsFlag(cmd)
	return cmd
}

// newExceptionsAuditCommand creates `modlint exceptions audit`. It runs a
// full lint pass and reports the records whose position no longer matches
// any finding, exiting non-zero when stale records exist.
func newExceptionsAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [root]",
		Short: "Report exception records that no longer match a violation",
		Long: `Report exception records that no longer match a violation.

A record goes stale when the violation it grandfathers is fixed or moves
to a different line. Stale records are printed one per line in the table
format; the command exits non-zero when any exist.`,
		Example: `  modlint exceptions audit
  modlint exceptions audit Sampleland`,
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
			p.audit = true

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
	return cmd
}
