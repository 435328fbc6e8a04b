// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for modlint.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"modlint/internal/config"
	"modlint/internal/issue"
	"modlint/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "modlint",
		Short: "A style linter for proof-library source trees",
		Long: TitleStyle.Render("modlint") + SubtitleStyle.Render(" - A style linter for proof-library source trees") + `

modlint enumerates the source files of a library tree, checks them
against a set of text-level style rules (copyright headers, forbidden
strings, line length, trailing whitespace, line endings), and reports
violations not grandfathered by the repository's exception table.

Existing violations live in an exception table of the form
'file : line : kind : message'; only NEW violations fail the run.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'modlint check <dir>' over a library directory
  2. Grandfather the backlog with 'modlint check --update-exceptions'
  3. Wire 'modlint check' into CI; it exits non-zero on new findings

` + SubtitleStyle.Render("Examples:") + `
  modlint check Sampleland        Lint one library directory
  modlint check                   Lint every workspace build library
  modlint check --kind ERR_LEN    Only check line length
  modlint files                   List the files discovery would lint
  modlint exceptions audit        Report stale exception records`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/modlint/modlint.cue)")

	// Add subcommands
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newFilesCommand())
	rootCmd.AddCommand(newModulesCommand())
	rootCmd.AddCommand(newLibsCommand())
	rootCmd.AddCommand(newExceptionsCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCompletionCommand())
	rootCmd.AddCommand(newUpgradeCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(int(exitCodeFor(err)))
	}
}

// initRootConfig reads the config file and wires the global logger.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration
	cfg := config.Get()
	if err := config.LastLoadError(); err != nil {
		// A config file the user named explicitly must load; anything else
		// degrades to defaults with a warning.
		if cfgFile != "" {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
			os.Exit(int(types.ExitFailure))
		}
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}

	initLogging(verbose)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
