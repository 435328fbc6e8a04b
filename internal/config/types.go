// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"modlint/pkg/types"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidSourceExtension is the sentinel error wrapped by InvalidSourceExtensionError.
	ErrInvalidSourceExtension = errors.New("invalid source extension")
	// ErrInvalidExceptionsFilePath is returned when an ExceptionsFilePath value is blank.
	ErrInvalidExceptionsFilePath = errors.New("invalid exceptions file path")
	// ErrInvalidManifestFilePath is returned when a ManifestFilePath value is blank.
	ErrInvalidManifestFilePath = errors.New("invalid manifest file path")
	// ErrInvalidLineLimit is returned when a LineLimit value is below 1.
	ErrInvalidLineLimit = errors.New("invalid line limit")
	// ErrInvalidForbiddenString is returned when a ForbiddenString value is blank or spans lines.
	ErrInvalidForbiddenString = errors.New("invalid forbidden string")
	// ErrInvalidHeaderLine is returned when a HeaderLine value is blank or spans lines.
	ErrInvalidHeaderLine = errors.New("invalid header line")
	// ErrInvalidCopyrightConfig is the sentinel error wrapped by InvalidCopyrightConfigError.
	ErrInvalidCopyrightConfig = errors.New("invalid copyright config")
	// ErrInvalidStyleConfig is the sentinel error wrapped by InvalidStyleConfigError.
	ErrInvalidStyleConfig = errors.New("invalid style config")
	// ErrInvalidWorkspaceConfig is the sentinel error wrapped by InvalidWorkspaceConfigError.
	ErrInvalidWorkspaceConfig = errors.New("invalid workspace config")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// SourceExtension is the file extension identifying lintable sources,
	// without the leading dot (e.g. "lean").
	SourceExtension string

	// InvalidSourceExtensionError is returned when a SourceExtension value is
	// blank, dotted, or contains separators. It wraps ErrInvalidSourceExtension
	// for errors.Is() compatibility.
	InvalidSourceExtensionError struct {
		Value SourceExtension
	}

	// ExceptionsFilePath locates the exception table, relative to the lint
	// root. A valid path must be non-empty and not whitespace-only.
	ExceptionsFilePath string

	// InvalidExceptionsFilePathError is returned when an ExceptionsFilePath
	// value is blank. It wraps ErrInvalidExceptionsFilePath for errors.Is().
	InvalidExceptionsFilePathError struct {
		Value ExceptionsFilePath
	}

	// ManifestFilePath locates the workspace manifest, relative to the lint
	// root. A valid path must be non-empty and not whitespace-only.
	ManifestFilePath string

	// InvalidManifestFilePathError is returned when a ManifestFilePath value
	// is blank. It wraps ErrInvalidManifestFilePath for errors.Is().
	InvalidManifestFilePathError struct {
		Value ManifestFilePath
	}

	// LineLimit is the maximum allowed line length in runes.
	LineLimit int

	// InvalidLineLimitError is returned when a LineLimit value is below 1.
	// It wraps ErrInvalidLineLimit for errors.Is() compatibility.
	InvalidLineLimitError struct {
		Value LineLimit
	}

	// ForbiddenString is a needle the forbidden-string rule searches for.
	// A valid needle must be non-empty and single-line.
	ForbiddenString string

	// InvalidForbiddenStringError is returned when a ForbiddenString value is
	// blank or spans lines. It wraps ErrInvalidForbiddenString for errors.Is().
	InvalidForbiddenStringError struct {
		Value ForbiddenString
	}

	// HeaderLine is one exact line of the expected copyright header grammar
	// (a comment delimiter or the license line). A valid value must be
	// non-empty and single-line.
	HeaderLine string

	// InvalidHeaderLineError is returned when a HeaderLine value is blank or
	// spans lines. It wraps ErrInvalidHeaderLine for errors.Is() compatibility.
	InvalidHeaderLineError struct {
		Value HeaderLine
	}

	// InvalidCopyrightConfigError is returned when a CopyrightConfig has invalid
	// fields. It wraps ErrInvalidCopyrightConfig for errors.Is() compatibility
	// and collects field-level validation errors.
	InvalidCopyrightConfigError struct {
		FieldErrors []error
	}

	// InvalidStyleConfigError is returned when a StyleConfig has invalid fields.
	// It wraps ErrInvalidStyleConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidStyleConfigError struct {
		FieldErrors []error
	}

	// InvalidWorkspaceConfigError is returned when a WorkspaceConfig has invalid
	// fields. It wraps ErrInvalidWorkspaceConfig for errors.Is() compatibility
	// and collects field-level validation errors.
	InvalidWorkspaceConfigError struct {
		FieldErrors []error
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Extension selects which files are linted and enumerated.
		Extension SourceExtension `json:"extension" mapstructure:"extension"`
		// ExceptionsFile locates the exception table under the lint root.
		ExceptionsFile ExceptionsFilePath `json:"exceptions_file" mapstructure:"exceptions_file"`
		// UseGit selects the git tracked-file listing over a filesystem walk.
		UseGit bool `json:"use_git" mapstructure:"use_git"`
		// Style tunes the shipped lint rules.
		Style StyleConfig `json:"style" mapstructure:"style"`
		// Workspace configures build-library resolution.
		Workspace WorkspaceConfig `json:"workspace" mapstructure:"workspace"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// StyleConfig tunes the shipped lint rules.
	StyleConfig struct {
		// MaxLineLength is the limit enforced by the line-length rule.
		MaxLineLength LineLimit `json:"max_line_length" mapstructure:"max_line_length"`
		// ForbiddenStrings are the needles searched for by the
		// forbidden-string rule.
		ForbiddenStrings []ForbiddenString `json:"forbidden_strings" mapstructure:"forbidden_strings"`
		// Copyright is the header grammar checked by the copyright rule.
		Copyright CopyrightConfig `json:"copyright" mapstructure:"copyright"`
	}

	// CopyrightConfig is the expected shape of a file's leading comment block.
	CopyrightConfig struct {
		// CommentOpen is the exact text of the block's first line.
		CommentOpen HeaderLine `json:"comment_open" mapstructure:"comment_open"`
		// CommentClose is the exact text of the block's closing line.
		CommentClose HeaderLine `json:"comment_close" mapstructure:"comment_close"`
		// LicenseLine is the exact text required on the header's third line.
		LicenseLine HeaderLine `json:"license_line" mapstructure:"license_line"`
	}

	// WorkspaceConfig configures build-library resolution.
	// Name fields reuse types.LibraryName; the discovery layer casts at the
	// boundary when building the primary adjustment.
	WorkspaceConfig struct {
		// Manifest locates the workspace manifest under the lint root.
		Manifest ManifestFilePath `json:"manifest" mapstructure:"manifest"`
		// PrimaryName identifies the distinguished primary project. The
		// zero value disables the primary adjustment entirely.
		PrimaryName types.LibraryName `json:"primary_name" mapstructure:"primary_name"`
		// DropLibs are removed from the primary project's library list.
		DropLibs []types.LibraryName `json:"drop_libs" mapstructure:"drop_libs"`
		// ExtraLib is appended to the primary project's library list when
		// not already present. The zero value appends nothing.
		ExtraLib types.LibraryName `json:"extra_lib" mapstructure:"extra_lib"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the SourceExtension.
func (x SourceExtension) String() string { return string(x) }

// IsValid returns whether the SourceExtension is valid. A valid extension is
// non-empty, carries no leading dot, and contains no separators or whitespace.
func (x SourceExtension) IsValid() (bool, []error) {
	s := string(x)
	switch {
	case strings.TrimSpace(s) == "",
		strings.HasPrefix(s, "."),
		strings.ContainsAny(s, "/\\ \t"):
		return false, []error{&InvalidSourceExtensionError{Value: x}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSourceExtensionError.
func (e *InvalidSourceExtensionError) Error() string {
	return fmt.Sprintf("invalid source extension %q: must be non-empty without a leading dot or separators", e.Value)
}

// Unwrap returns ErrInvalidSourceExtension for errors.Is() compatibility.
func (e *InvalidSourceExtensionError) Unwrap() error { return ErrInvalidSourceExtension }

// String returns the string representation of the ExceptionsFilePath.
func (p ExceptionsFilePath) String() string { return string(p) }

// IsValid returns whether the ExceptionsFilePath is valid.
// A valid path must be non-empty and not whitespace-only.
func (p ExceptionsFilePath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidExceptionsFilePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidExceptionsFilePathError.
func (e *InvalidExceptionsFilePathError) Error() string {
	return fmt.Sprintf("invalid exceptions file path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidExceptionsFilePath for errors.Is() compatibility.
func (e *InvalidExceptionsFilePathError) Unwrap() error { return ErrInvalidExceptionsFilePath }

// String returns the string representation of the ManifestFilePath.
func (p ManifestFilePath) String() string { return string(p) }

// IsValid returns whether the ManifestFilePath is valid.
// A valid path must be non-empty and not whitespace-only.
func (p ManifestFilePath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidManifestFilePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidManifestFilePathError.
func (e *InvalidManifestFilePathError) Error() string {
	return fmt.Sprintf("invalid manifest file path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidManifestFilePath for errors.Is() compatibility.
func (e *InvalidManifestFilePathError) Unwrap() error { return ErrInvalidManifestFilePath }

// IsValid returns whether the LineLimit allows at least one character.
func (l LineLimit) IsValid() (bool, []error) {
	if l < 1 {
		return false, []error{&InvalidLineLimitError{Value: l}}
	}
	return true, nil
}

// Error implements the error interface for InvalidLineLimitError.
func (e *InvalidLineLimitError) Error() string {
	return fmt.Sprintf("invalid line limit %d: must be at least 1", e.Value)
}

// Unwrap returns ErrInvalidLineLimit for errors.Is() compatibility.
func (e *InvalidLineLimitError) Unwrap() error { return ErrInvalidLineLimit }

// String returns the string representation of the ForbiddenString.
func (f ForbiddenString) String() string { return string(f) }

// IsValid returns whether the ForbiddenString is a usable needle.
// A valid needle must be non-empty and single-line.
func (f ForbiddenString) IsValid() (bool, []error) {
	if f == "" || strings.ContainsAny(string(f), "\r\n") {
		return false, []error{&InvalidForbiddenStringError{Value: f}}
	}
	return true, nil
}

// Error implements the error interface for InvalidForbiddenStringError.
func (e *InvalidForbiddenStringError) Error() string {
	return fmt.Sprintf("invalid forbidden string %q: must be non-empty and single-line", e.Value)
}

// Unwrap returns ErrInvalidForbiddenString for errors.Is() compatibility.
func (e *InvalidForbiddenStringError) Unwrap() error { return ErrInvalidForbiddenString }

// String returns the string representation of the HeaderLine.
func (h HeaderLine) String() string { return string(h) }

// IsValid returns whether the HeaderLine is usable as an exact-match line.
// A valid value must be non-empty and single-line.
func (h HeaderLine) IsValid() (bool, []error) {
	if strings.TrimSpace(string(h)) == "" || strings.ContainsAny(string(h), "\r\n") {
		return false, []error{&InvalidHeaderLineError{Value: h}}
	}
	return true, nil
}

// Error implements the error interface for InvalidHeaderLineError.
func (e *InvalidHeaderLineError) Error() string {
	return fmt.Sprintf("invalid header line %q: must be non-empty and single-line", e.Value)
}

// Unwrap returns ErrInvalidHeaderLine for errors.Is() compatibility.
func (e *InvalidHeaderLineError) Unwrap() error { return ErrInvalidHeaderLine }

// IsValid returns whether the CopyrightConfig has valid fields.
// It delegates to each HeaderLine field's IsValid().
func (c CopyrightConfig) IsValid() (bool, []error) {
	var errs []error
	for _, line := range []HeaderLine{c.CommentOpen, c.CommentClose, c.LicenseLine} {
		if valid, fieldErrs := line.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidCopyrightConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCopyrightConfigError.
func (e *InvalidCopyrightConfigError) Error() string {
	return fmt.Sprintf("invalid copyright config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidCopyrightConfig for errors.Is() compatibility.
func (e *InvalidCopyrightConfigError) Unwrap() error { return ErrInvalidCopyrightConfig }

// IsValid returns whether the StyleConfig has valid fields.
// It delegates to MaxLineLength.IsValid(), each ForbiddenStrings entry's
// IsValid(), and Copyright.IsValid().
func (c StyleConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.MaxLineLength.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	for _, needle := range c.ForbiddenStrings {
		if valid, fieldErrs := needle.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if valid, fieldErrs := c.Copyright.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidStyleConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidStyleConfigError.
func (e *InvalidStyleConfigError) Error() string {
	return fmt.Sprintf("invalid style config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidStyleConfig for errors.Is() compatibility.
func (e *InvalidStyleConfigError) Unwrap() error { return ErrInvalidStyleConfig }

// IsValid returns whether the WorkspaceConfig has valid fields.
// It delegates to Manifest.IsValid() unconditionally and validates each
// library name only when non-empty (the zero-value PrimaryName and ExtraLib
// disable their features).
func (c WorkspaceConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Manifest.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.PrimaryName != "" {
		if err := c.PrimaryName.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, lib := range c.DropLibs {
		if err := lib.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.ExtraLib != "" {
		if err := c.ExtraLib.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidWorkspaceConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidWorkspaceConfigError.
func (e *InvalidWorkspaceConfigError) Error() string {
	return fmt.Sprintf("invalid workspace config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidWorkspaceConfig for errors.Is() compatibility.
func (e *InvalidWorkspaceConfigError) Unwrap() error { return ErrInvalidWorkspaceConfig }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Extension.IsValid(), ExceptionsFile.IsValid(),
// Style.IsValid(), Workspace.IsValid(), and UI.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Extension.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.ExceptionsFile.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Style.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Workspace.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Extension:      "lean",
		ExceptionsFile: "style-exceptions.txt",
		UseGit:         true,
		Style: StyleConfig{
			MaxLineLength:    100,
			ForbiddenStrings: []ForbiddenString{"sorry"},
			Copyright: CopyrightConfig{
				CommentOpen:  "/-",
				CommentClose: "-/",
				LicenseLine:  "Released under Apache 2.0 license as described in the file LICENSE.",
			},
		},
		Workspace: WorkspaceConfig{
			Manifest:    "workspace.toml",
			PrimaryName: "Sampleland",
			DropLibs:    []types.LibraryName{"Cache", "Bench"},
			ExtraLib:    "Extras",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
