// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"modlint/internal/config"
	"modlint/internal/discovery"
	"modlint/pkg/types"
)

// newModulesCommand creates the `modlint modules` command.
func newModulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules [root]",
		Short: "List the module names of the discovered source files",
		Long: `List the module names of the discovered source files, one per line.

A module name is the file path with the extension removed and the path
separators replaced by dots: "Sampleland/Algebra/Group.lean" becomes
"Sampleland.Algebra.Group". The listing corresponds one-to-one with
'modlint files'.`,
		Example: `  modlint modules Sampleland
  modlint modules`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			cfg := config.Get()
			roots, err := resolveRoots(args, cfg)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatErrorForDisplay(err, verbose))
				return &ExitError{Code: types.ExitFailure, Err: err}
			}

			err = printModules(cmd.Context(), cmd.OutOrStdout(), roots,
				resolveExt(cmd, cfg), resolveUseGit(cmd, cfg))
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatErrorForDisplay(err, verbose))
				return &ExitError{Code: types.ExitFailure, Err: err}
			}
			return nil
		},
	}

	addDiscoveryFlags(cmd)
	return cmd
}

// printModules writes the module names of all roots to w, in the same
// order as the file listing.
func printModules(ctx context.Context, w io.Writer, roots []string, ext string, useGit bool) error {
	for _, root := range roots {
		listing, err := discovery.Modules(ctx, discovery.Options{
			Root:   root,
			Ext:    ext,
			UseGit: useGit,
		})
		if err != nil {
			return err
		}
		for _, d := range listing.Diagnostics {
			slog.Debug("discovery diagnostic",
				"code", d.Code, "path", d.Path, "message", d.Message)
		}
		for _, m := range listing.Modules {
			if _, err := fmt.Fprintln(w, m); err != nil {
				return err
			}
		}
	}
	return nil
}
