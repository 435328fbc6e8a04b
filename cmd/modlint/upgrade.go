// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	latest "github.com/tcnksm/go-latest"

	"modlint/pkg/types"
)

// upgradeParams bundles the dependencies for the upgrade command, enabling
// the core logic in runUpgradeCheck to be tested without a real Cobra
// command or live GitHub API calls.
type upgradeParams struct {
	stdout  io.Writer
	stderr  io.Writer
	source  latest.Source
	version string
}

// newUpgradeCommand creates the `modlint upgrade` command, which reports
// whether a newer tagged release exists on GitHub. It never replaces the
// running binary; installs are managed by the package manager or by
// downloading a release asset.
func newUpgradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Check whether a newer modlint release is available",
		Long: `Check whether a newer modlint release is available.

The check compares the running version against the tags published on
GitHub. It reports availability only; download the new release from the
releases page or through your package manager.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			p := upgradeParams{
				stdout: cmd.OutOrStdout(),
				stderr: cmd.ErrOrStderr(),
				source: &latest.GithubTag{
					Owner:      "modlint",
					Repository: "modlint",
				},
				version: Version,
			}

			if err := runUpgradeCheck(p); err != nil {
				fmt.Fprintln(p.stderr, ErrorStyle.Render("Error: ")+err.Error())
				return &ExitError{Code: types.ExitFailure, Err: err}
			}

			return nil
		},
	}
}

// runUpgradeCheck is the core release-check logic, separated from Cobra for
// testability. All user-facing output goes through p.stdout.
func runUpgradeCheck(p upgradeParams) error {
	if p.version == "dev" {
		fmt.Fprintln(p.stdout, "Running a source build; release checks only apply to tagged binaries.")
		return nil
	}

	res, err := latest.Check(p.source, strings.TrimPrefix(p.version, "v"))
	if err != nil {
		return fmt.Errorf("checking latest release: %w", err)
	}

	if res.Outdated {
		fmt.Fprintf(p.stdout, "A newer release is available: %s (you have %s)\n", res.Current, p.version)
		fmt.Fprintln(p.stdout, "Download it from https://github.com/modlint/modlint/releases")
		return nil
	}

	fmt.Fprintf(p.stdout, "%s modlint %s is the latest release\n", SuccessStyle.Render("✓"), p.version)
	return nil
}
