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

// newFilesCommand creates the `modlint files` command.
func newFilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files [root]",
		Short: "List the source files discovery would lint",
		Long: `List the source files discovery would lint, one path per line.

Paths are relative to the working directory, sorted lexicographically.
The root aggregator file ("<root>.<ext>") is never listed, and entries of
a stale git listing that no longer exist on disk are dropped.`,
		Example: `  modlint files Sampleland
  modlint files --no-git Sampleland
  modlint files`,
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

			err = printFiles(cmd.Context(), cmd.OutOrStdout(), roots,
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

// printFiles writes the merged, sorted file listing of all roots to w.
func printFiles(ctx context.Context, w io.Writer, roots []string, ext string, useGit bool) error {
	for _, root := range roots {
		listing, err := discovery.Files(ctx, discovery.Options{
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
		for _, f := range listing.Files {
			if _, err := fmt.Fprintln(w, f); err != nil {
				return err
			}
		}
	}
	return nil
}
