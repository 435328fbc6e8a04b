// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"

	"modlint/internal/issue"
	"modlint/pkg/cueutil"
	"modlint/pkg/platform"
	"modlint/pkg/types"
)

const (
	// AppName is the application name.
	AppName = "modlint"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "modlint"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the per-user modlint configuration directory:
// %APPDATA% on Windows, ~/Library/Application Support on macOS, and
// $XDG_CONFIG_HOME (falling back to ~/.config) elsewhere.
//
//nolint:revive // the config. prefix stutters, but callers read better this way
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var base string
	switch runtime.GOOS {
	case platform.Windows:
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, AppName), nil
}

// loadWithOptions is the uncached load path: resolve which file applies,
// merge it over the defaults, and validate the result. The returned path
// is "" when no config file was found and defaults are in effect.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if err := opts.Validate(); err != nil {
		return nil, "", err
	}

	v := viper.New()
	setDefaults(v)

	path, err := resolveConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", cueLoadError(path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Cross-field workspace constraints that the CUE schema cannot express.
	if err := validateWorkspaceNames(cfg.Workspace); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion("Ensure each drop_libs entry appears only once").
			WithSuggestion("Remove extra_lib from drop_libs; a library cannot be both dropped and appended").
			Wrap(err).
			BuildError()
	}

	return &cfg, path, nil
}

// resolveConfigFile picks the file this load reads from: an explicit
// --config path (which must exist), else a repository-local modlint.cue,
// else the per-user file. "" means no file anywhere, run on defaults.
func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithSuggestion("Use 'modlint config show' to see default configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	// A repository-local modlint.cue wins over the per-user file so a
	// checkout carries its own lint settings.
	local := ConfigFileName + "." + ConfigFileExt
	if fileExists(local) {
		return local, nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}
	userPath := filepath.Join(cfgDir, local)
	if fileExists(userPath) {
		return userPath, nil
	}

	return "", nil
}

// cueLoadError dresses a CUE parse or schema failure in suggestions.
func cueLoadError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		WithSuggestion("See 'modlint config --help' for configuration options").
		Wrap(err).
		BuildError()
}

// setDefaults seeds Viper with DefaultConfig so a missing file or a
// partial one still unmarshals to a complete Config.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("extension", string(d.Extension))
	v.SetDefault("exceptions_file", string(d.ExceptionsFile))
	v.SetDefault("use_git", d.UseGit)
	v.SetDefault("style.max_line_length", int(d.Style.MaxLineLength))
	v.SetDefault("style.forbidden_strings", forbiddenStringsToStrings(d.Style.ForbiddenStrings))
	v.SetDefault("style.copyright.comment_open", string(d.Style.Copyright.CommentOpen))
	v.SetDefault("style.copyright.comment_close", string(d.Style.Copyright.CommentClose))
	v.SetDefault("style.copyright.license_line", string(d.Style.Copyright.LicenseLine))
	v.SetDefault("workspace.manifest", string(d.Workspace.Manifest))
	v.SetDefault("workspace.primary_name", string(d.Workspace.PrimaryName))
	v.SetDefault("workspace.drop_libs", libraryNamesToStrings(d.Workspace.DropLibs))
	v.SetDefault("workspace.extra_lib", string(d.Workspace.ExtraLib))
	v.SetDefault("ui.color_scheme", string(d.UI.ColorScheme))
	v.SetDefault("ui.verbose", d.UI.Verbose)
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// loadCUEIntoViper parses one CUE file, checks it against the #Config
// schema, and merges it into v on top of the defaults.
//
// This does not go through cueutil.ParseAndDecode: Viper merging needs a
// map[string]any rather than a struct, and partial files are fine here,
// so validation runs without cue.Concrete.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	unified := schemaValue.LookupPath(cue.ParsePath("#Config")).Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var fields map[string]any
	if err := unified.Decode(&fields); err != nil {
		return cueutil.FormatError(err, path)
	}

	if err := v.MergeConfigMap(fields); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// ValidateFile checks that a CUE config file conforms to the #Config schema
// and the cross-field workspace name constraints, without merging defaults.
// It returns the decoded (possibly partial) configuration on success.
func ValidateFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Check that the file exists and is readable").
			Wrap(err).
			BuildError()
	}

	result, err := cueutil.ParseAndDecodeString[Config](configSchema, data, "#Config",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false))
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Check that the file contains valid CUE syntax").
			WithSuggestion("Verify the configuration values match the expected schema").
			Wrap(err).
			BuildError()
	}

	if err := validateWorkspaceNames(result.Value.Workspace); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Ensure each drop_libs entry appears only once").
			WithSuggestion("Remove extra_lib from drop_libs; a library cannot be both dropped and appended").
			Wrap(err).
			BuildError()
	}

	return result.Value, nil
}

// validateWorkspaceNames checks workspace name constraints that CUE cannot
// express: each drop_libs entry must be unique, and extra_lib must not also
// be listed in drop_libs (dropping and appending the same library is
// contradictory).
func validateWorkspaceNames(ws WorkspaceConfig) error {
	seen := make(map[types.LibraryName]int, len(ws.DropLibs))
	for i, lib := range ws.DropLibs {
		if firstIdx, exists := seen[lib]; exists {
			return fmt.Errorf("workspace.drop_libs[%d]: duplicate library %q (same as workspace.drop_libs[%d])", i, lib, firstIdx)
		}
		seen[lib] = i
	}
	if ws.ExtraLib != "" && slices.Contains(ws.DropLibs, ws.ExtraLib) {
		return fmt.Errorf("workspace.extra_lib: library %q is also listed in workspace.drop_libs", ws.ExtraLib)
	}
	return nil
}

// forbiddenStringsToStrings converts typed needles for storage in Viper.
func forbiddenStringsToStrings(needles []ForbiddenString) []string {
	out := make([]string, len(needles))
	for i, n := range needles {
		out[i] = string(n)
	}
	return out
}

// libraryNamesToStrings converts typed library names for storage in Viper.
func libraryNamesToStrings(libs []types.LibraryName) []string {
	out := make([]string, len(libs))
	for i, lib := range libs {
		out[i] = string(lib)
	}
	return out
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// userConfigPath returns the per-user config file location, creating its
// directory on the way.
func userConfigPath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// CreateDefaultConfig writes a default per-user config file. It reports
// whether it wrote anything; an existing file is left alone.
func CreateDefaultConfig() (bool, error) {
	cfgPath, err := userConfigPath()
	if err != nil {
		return false, err
	}
	if fileExists(cfgPath) {
		return false, nil
	}
	if err := writeConfigFile(cfgPath, DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes cfg to the per-user config file, replacing what is there.
func Save(cfg *Config) error {
	cfgPath, err := userConfigPath()
	if err != nil {
		return err
	}
	return writeConfigFile(cfgPath, cfg)
}

func writeConfigFile(path string, cfg *Config) error {
	if err := os.WriteFile(path, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateCUE renders cfg as a CUE document, the same shape the schema
// accepts, so the output of `config dump` can be checked in as a
// repository modlint.cue.
func GenerateCUE(cfg *Config) string {
	var b strings.Builder

	b.WriteString("// modlint configuration file\n")
	b.WriteString("// See 'modlint config --help' for documentation.\n\n")

	fmt.Fprintf(&b, "extension: %q\n", cfg.Extension)
	fmt.Fprintf(&b, "exceptions_file: %q\n", cfg.ExceptionsFile)
	fmt.Fprintf(&b, "use_git: %v\n", cfg.UseGit)

	b.WriteString("\nstyle: {\n")
	fmt.Fprintf(&b, "\tmax_line_length: %d\n", cfg.Style.MaxLineLength)
	writeCUEList(&b, "\t", "forbidden_strings", forbiddenStringsToStrings(cfg.Style.ForbiddenStrings))
	b.WriteString("\tcopyright: {\n")
	fmt.Fprintf(&b, "\t\tcomment_open: %q\n", cfg.Style.Copyright.CommentOpen)
	fmt.Fprintf(&b, "\t\tcomment_close: %q\n", cfg.Style.Copyright.CommentClose)
	fmt.Fprintf(&b, "\t\tlicense_line: %q\n", cfg.Style.Copyright.LicenseLine)
	b.WriteString("\t}\n")
	b.WriteString("}\n")

	b.WriteString("\nworkspace: {\n")
	fmt.Fprintf(&b, "\tmanifest: %q\n", cfg.Workspace.Manifest)
	if cfg.Workspace.PrimaryName != "" {
		fmt.Fprintf(&b, "\tprimary_name: %q\n", cfg.Workspace.PrimaryName)
	}
	writeCUEList(&b, "\t", "drop_libs", libraryNamesToStrings(cfg.Workspace.DropLibs))
	if cfg.Workspace.ExtraLib != "" {
		fmt.Fprintf(&b, "\textra_lib: %q\n", cfg.Workspace.ExtraLib)
	}
	b.WriteString("}\n")

	b.WriteString("\nui: {\n")
	fmt.Fprintf(&b, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&b, "\tverbose: %v\n", cfg.UI.Verbose)
	b.WriteString("}\n")

	return b.String()
}

// writeCUEList renders a list field, omitting it entirely when empty.
func writeCUEList(b *strings.Builder, indent, field string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "%s%s: [\n", indent, field)
	for _, v := range values {
		fmt.Fprintf(b, "%s\t%q,\n", indent, v)
	}
	fmt.Fprintf(b, "%s]\n", indent)
}
