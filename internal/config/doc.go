// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is read from modlint.cue, looked up in this order: an explicit
// --config path, the current directory (so a repository can pin its own lint
// settings), then the per-user config directory (~/.config/modlint on Linux,
// ~/Library/Application Support/modlint on macOS, %APPDATA%\modlint on Windows).
// The package covers the source extension, the exception table location, rule
// tuning, workspace manifest resolution, and UI settings.
//
// Files are validated against a CUE schema (config_schema.cue) before merging,
// so type errors surface with the offending field's path instead of a silent
// zero value.
package config
