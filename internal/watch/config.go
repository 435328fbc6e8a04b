// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrInvalidGlobPattern is the sentinel error wrapped by InvalidGlobPatternError.
	ErrInvalidGlobPattern = errors.New("invalid glob pattern")
	// ErrInvalidWatchConfig is the sentinel error wrapped by InvalidWatchConfigError.
	ErrInvalidWatchConfig = errors.New("invalid watch config")
)

type (
	// GlobPattern is a doublestar-compatible glob (e.g. "**/*.lean") used to
	// select or exclude watched paths. A valid pattern must be non-blank and
	// syntactically well formed.
	GlobPattern string

	// InvalidGlobPatternError is returned when a GlobPattern value is blank
	// or malformed. It wraps ErrInvalidGlobPattern for errors.Is() compatibility.
	InvalidGlobPatternError struct {
		Value  GlobPattern
		Reason string
	}

	// InvalidWatchConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidWatchConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidWatchConfigError struct {
		FieldErrors []error
	}

	// Config holds the parameters for a Watcher.
	Config struct {
		// Patterns select which files trigger callbacks. An empty slice
		// watches all non-ignored files.
		Patterns []GlobPattern

		// Ignore are additional patterns for paths that should never trigger
		// callbacks. These are merged with the built-in default ignores.
		Ignore []GlobPattern

		// Debounce is the quiet period after the last event before the
		// callback fires. Zero or negative values fall back to defaultDebounce.
		Debounce time.Duration

		// ClearScreen controls whether the terminal is cleared before each
		// callback invocation by writing ANSI escape sequences to Stdout.
		// No terminal detection is performed; callers should ensure Stdout
		// is a real terminal when enabling this option.
		ClearScreen bool

		// BaseDir is the root directory to watch. All patterns are resolved
		// relative to this path. An empty value defaults to the current
		// working directory.
		BaseDir string

		// OnChange is called after the debounce window closes with the
		// deduplicated list of changed file paths (relative to BaseDir).
		// A nil callback is a no-op.
		OnChange func(ctx context.Context, changed []string) error

		// Stdout and Stderr are the output writers for informational and
		// error messages respectively. nil values default to os.Stdout /
		// os.Stderr.
		Stdout io.Writer
		Stderr io.Writer
	}
)

// String returns the string representation of the GlobPattern.
func (p GlobPattern) String() string { return string(p) }

// Validate checks that the pattern is usable for matching.
func (p GlobPattern) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return &InvalidGlobPatternError{Value: p, Reason: "must be non-empty"}
	}
	if !doublestar.ValidatePattern(string(p)) {
		return &InvalidGlobPatternError{Value: p, Reason: "must be a valid glob"}
	}
	return nil
}

// Error implements the error interface for InvalidGlobPatternError.
func (e *InvalidGlobPatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidGlobPattern for errors.Is() compatibility.
func (e *InvalidGlobPatternError) Unwrap() error { return ErrInvalidGlobPattern }

// Validate checks every pattern eagerly so invalid globs fail at construction
// time rather than silently failing to match at runtime. The zero-value
// Config is valid: empty patterns watch everything and an empty BaseDir
// defaults to the working directory.
func (c Config) Validate() error {
	var errs []error
	for _, pat := range c.Patterns {
		if err := pat.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("watch pattern: %w", err))
		}
	}
	for _, pat := range c.Ignore {
		if err := pat.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("ignore pattern: %w", err))
		}
	}
	if c.BaseDir != "" && strings.TrimSpace(c.BaseDir) == "" {
		errs = append(errs, fmt.Errorf("base directory must not be whitespace-only"))
	}
	if len(errs) > 0 {
		return &InvalidWatchConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidWatchConfigError.
func (e *InvalidWatchConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid watch config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid watch config: %d field errors", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidWatchConfig for errors.Is() compatibility.
func (e *InvalidWatchConfigError) Unwrap() error { return ErrInvalidWatchConfig }

// ForExtension returns the watch patterns selecting sources with the given
// file extension (without the leading dot) anywhere under the base directory.
func ForExtension(ext string) []GlobPattern {
	return []GlobPattern{GlobPattern("**/*." + ext)}
}
