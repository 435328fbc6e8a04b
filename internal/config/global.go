// SPDX-License-Identifier: MPL-2.0

package config

import "context"

var (
	// globalConfig caches the last successfully loaded configuration.
	globalConfig *Config
	// configPath records which file globalConfig was loaded from
	// ("" when defaults were used).
	configPath string
	// errLastLoad records the most recent load failure so the CLI can
	// surface it as a warning after falling back to defaults.
	errLastLoad error

	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string
	// configFilePathOverride forces loading from a specific file,
	// set from the --config flag.
	configFilePathOverride string
)

// Load returns the cached configuration, reading it from disk on first use.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, resolvedPath, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
		ConfigDirPath:  configDirOverride,
	})
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	configPath = resolvedPath
	return globalConfig, nil
}

// Get returns the configuration, falling back to defaults when loading
// fails. The failure is retrievable via LastLoadError so startup can warn
// without dying.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		errLastLoad = err
		return DefaultConfig()
	}
	errLastLoad = nil
	return cfg
}

// LastLoadError returns the error from the most recent failed load,
// or nil when the last load succeeded.
func LastLoadError() error {
	return errLastLoad
}

// ConfigFilePath returns the path of the loaded config file, or "" when
// defaults are in effect.
//
//nolint:revive // ConfigFilePath is more descriptive than FilePath for external callers
func ConfigFilePath() string {
	return configPath
}

// ResetCache clears the cached configuration so the next Load rereads from
// disk. Overrides are preserved.
func ResetCache() {
	globalConfig = nil
	configPath = ""
	errLastLoad = nil
}

// Reset clears the cache and all overrides. Call from test cleanup to
// restore defaults.
func Reset() {
	ResetCache()
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride forces subsequent loads to read the given file
// exclusively, clearing any cached configuration.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
	ResetCache()
}
