// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"modlint/internal/config"
	"modlint/internal/issue"
	"modlint/pkg/types"
)

// newConfigCommand creates the `modlint config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage modlint configuration",
		Long: `Manage modlint configuration.

Configuration is read from the first of:
  - the --config flag
  - a modlint.cue file in the current directory
  - the user configuration directory:
      Linux: ~/.config/modlint/modlint.cue
      macOS: ~/Library/Application Support/modlint/modlint.cue
      Windows: %APPDATA%\modlint\modlint.cue

A modlint.cue checked into the repository pins the lint settings for
everyone working on it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}
			return initConfig(force)
		},
	}
	initCmd.Flags().Bool("force", false, "overwrite an existing configuration file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a configuration file against the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			return validateConfigFile(args[0])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(config.GenerateCUE(config.Get()))
			return nil
		},
	})

	return cfgCmd
}

func showConfig() error {
	cfg := config.Get()
	if err := config.LastLoadError(); err != nil {
		rendered, renderErr := issue.Get(issue.ConfigLoadFailedId).Render(issueStyleFrom(cfg))
		if renderErr == nil {
			fmt.Print(rendered)
		}
	}

	headerStyle := TitleStyle
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Println(headerStyle.Render("Current Configuration"))
	fmt.Println()

	if path := config.ConfigFilePath(); path != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", keyStyle.Render("extension"), valueStyle.Render(string(cfg.Extension)))
	fmt.Printf("%s: %s\n", keyStyle.Render("exceptions_file"), valueStyle.Render(string(cfg.ExceptionsFile)))
	fmt.Printf("%s: %s\n", keyStyle.Render("use_git"), valueStyle.Render(fmt.Sprintf("%v", cfg.UseGit)))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("style"))
	fmt.Printf("  max_line_length: %s\n", valueStyle.Render(fmt.Sprintf("%d", cfg.Style.MaxLineLength)))
	fmt.Printf("  forbidden_strings:\n")
	if len(cfg.Style.ForbiddenStrings) == 0 {
		fmt.Printf("    %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		for _, s := range cfg.Style.ForbiddenStrings {
			fmt.Printf("    - %s\n", valueStyle.Render(fmt.Sprintf("%q", string(s))))
		}
	}
	fmt.Printf("  copyright:\n")
	fmt.Printf("    comment_open:  %s\n", valueStyle.Render(string(cfg.Style.Copyright.CommentOpen)))
	fmt.Printf("    comment_close: %s\n", valueStyle.Render(string(cfg.Style.Copyright.CommentClose)))
	fmt.Printf("    license_line:  %s\n", valueStyle.Render(string(cfg.Style.Copyright.LicenseLine)))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("workspace"))
	fmt.Printf("  manifest: %s\n", valueStyle.Render(string(cfg.Workspace.Manifest)))
	if cfg.Workspace.PrimaryName != "" {
		fmt.Printf("  primary_name: %s\n", valueStyle.Render(string(cfg.Workspace.PrimaryName)))
		fmt.Printf("  drop_libs:\n")
		for _, lib := range cfg.Workspace.DropLibs {
			fmt.Printf("    - %s\n", valueStyle.Render(string(lib)))
		}
		if cfg.Workspace.ExtraLib != "" {
			fmt.Printf("  extra_lib: %s\n", valueStyle.Render(string(cfg.Workspace.ExtraLib)))
		}
	} else {
		fmt.Printf("  primary_name: %s\n", SubtitleStyle.Render("(adjustment disabled)"))
	}

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(force bool) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath := fmt.Sprintf("%s/%s.%s", cfgDir, config.ConfigFileName, config.ConfigFileExt)

	if force {
		if err := config.Save(config.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("%s Wrote default configuration to %s\n", SuccessStyle.Render("✓"), cfgPath)
		return nil
	}

	created, err := config.CreateDefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if !created {
		fmt.Printf("Configuration already exists at %s (use --force to overwrite)\n", cfgPath)
		return nil
	}

	fmt.Printf("%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Printf("Config directory: %s\n", cfgDir)
	fmt.Printf("Config file: %s/%s.%s\n", cfgDir, config.ConfigFileName, config.ConfigFileExt)
	return nil
}

func validateConfigFile(path string) error {
	if _, err := config.ValidateFile(path); err != nil {
		fmt.Println(ErrorStyle.Render("✗ ") + formatErrorForDisplay(err, verbose))
		return &ExitError{Code: types.ExitFailure, Err: err}
	}

	fmt.Printf("%s %s is a valid modlint configuration\n", SuccessStyle.Render("✓"), path)
	return nil
}
