// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"modlint/internal/config"
	"modlint/internal/issue"
	"modlint/internal/workspace"
	"modlint/pkg/types"
)

// newLibsCommand creates the `modlint libs` command.
func newLibsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libs",
		Short: "List the build libraries resolved from the workspace manifest",
		Long: `List the build libraries resolved from the workspace manifest, one
name per line, in manifest order.

When the manifest names the configured primary project, the tooling
libraries that hold no lintable sources are dropped from the list and
the auxiliary library the build does not auto-discover is appended.`,
		Example: `  modlint libs
  modlint libs --manifest path/to/workspace.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			cfg := config.Get()
			manifest := string(cfg.Workspace.Manifest)
			if cmd.Flags().Changed("manifest") {
				manifest, _ = cmd.Flags().GetString("manifest")
			}

			libs, err := workspace.BuildLibraries(
				workspace.FileResolver{Path: manifest},
				adjustmentFromConfig(cfg),
			)
			if err != nil {
				renderIssue(cmd.ErrOrStderr(), issue.WorkspaceLoadFailedId, issueStyleFrom(cfg))
				fmt.Fprintln(cmd.ErrOrStderr(), formatErrorForDisplay(err, verbose))
				return &ExitError{Code: types.ExitFailure, Err: err}
			}

			for _, lib := range libs {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), lib); err != nil {
					return &ExitError{Code: types.ExitFailure, Err: err}
				}
			}
			return nil
		},
	}

	cmd.Flags().String("manifest", "", "workspace manifest path (default from config)")
	return cmd
}
