// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"modlint/internal/config"
	"modlint/internal/lint"
	"modlint/internal/workspace"
	"modlint/pkg/types"
)

// addDiscoveryFlags registers the flags shared by every command that
// enumerates source files.
func addDiscoveryFlags(cmd *cobra.Command) {
	cmd.Flags().String("ext", "", "source file extension (default from config)")
	cmd.Flags().Bool("git", false, "list files via git ls-files (default from config)")
	cmd.Flags().Bool("no-git", false, "walk the directory tree instead of asking git")
}

// addExceptionsFlag registers the exception-table override flag.
func addExceptionsFlag(cmd *cobra.Command) {
	cmd.Flags().String("exceptions", "", "exception table path (default from config)")
}

// resolveExt returns the extension to discover: the --ext flag when set,
// the configured extension otherwise.
func resolveExt(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("ext") {
		ext, _ := cmd.Flags().GetString("ext")
		return ext
	}
	return string(cfg.Extension)
}

// resolveUseGit returns the listing mode. --no-git always wins, then an
// explicit --git, then the configured default.
func resolveUseGit(cmd *cobra.Command, cfg *config.Config) bool {
	if noGit, _ := cmd.Flags().GetBool("no-git"); noGit {
		return false
	}
	if cmd.Flags().Changed("git") {
		useGit, _ := cmd.Flags().GetBool("git")
		return useGit
	}
	return cfg.UseGit
}

// resolveExceptionsPath returns the exception table path: the --exceptions
// flag when set, the configured path otherwise.
func resolveExceptionsPath(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("exceptions") {
		path, _ := cmd.Flags().GetString("exceptions")
		return path
	}
	return string(cfg.ExceptionsFile)
}

// resolveRoots returns the library directories to operate on. An explicit
// root argument names exactly one directory; with no argument, the
// workspace manifest supplies the full build-library list, sorted so the
// merged file listing stays lexicographic.
func resolveRoots(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return []string{args[0]}, nil
	}

	libs, err := workspace.BuildLibraries(
		workspace.FileResolver{Path: string(cfg.Workspace.Manifest)},
		adjustmentFromConfig(cfg),
	)
	if err != nil {
		return nil, err
	}
	if len(libs) == 0 {
		return nil, fmt.Errorf("workspace manifest declares no libraries; name a root directory explicitly")
	}

	roots := make([]string, 0, len(libs))
	for _, lib := range libs {
		roots = append(roots, string(lib))
	}
	sort.Strings(roots)
	return roots, nil
}

// adjustmentFromConfig maps the workspace section of the configuration to
// the primary-project adjustment applied to the build-library list.
func adjustmentFromConfig(cfg *config.Config) workspace.PrimaryAdjustment {
	return workspace.PrimaryAdjustment{
		Primary: cfg.Workspace.PrimaryName,
		Drop:    cfg.Workspace.DropLibs,
		Extra:   cfg.Workspace.ExtraLib,
	}
}

// parseKinds converts repeated --kind values into validated rule kinds.
// Unknown kinds are allowed (the kind set is open); malformed ones are not.
func parseKinds(raw []string) ([]types.RuleKind, error) {
	kinds := make([]types.RuleKind, 0, len(raw))
	for _, s := range raw {
		k := types.RuleKind(strings.TrimSpace(s))
		if err := k.Validate(); err != nil {
			return nil, fmt.Errorf("--kind %q: %w", s, err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// lintConfigFrom maps the style section of the configuration to the rule
// configuration.
func lintConfigFrom(cfg *config.Config) lint.Config {
	needles := make([]string, 0, len(cfg.Style.ForbiddenStrings))
	for _, n := range cfg.Style.ForbiddenStrings {
		needles = append(needles, string(n))
	}
	return lint.Config{
		MaxLineLength:    int(cfg.Style.MaxLineLength),
		ForbiddenStrings: needles,
		Copyright: lint.CopyrightConfig{
			CommentOpen:  string(cfg.Style.Copyright.CommentOpen),
			CommentClose: string(cfg.Style.Copyright.CommentClose),
			LicenseLine:  string(cfg.Style.Copyright.LicenseLine),
		},
	}
}

// issueStyleFrom maps the UI color scheme to a glamour style name for
// rendering issue catalog entries.
func issueStyleFrom(cfg *config.Config) string {
	if cfg.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
