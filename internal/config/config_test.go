// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"modlint/internal/issue"
	"modlint/internal/testutil"
	"modlint/pkg/platform"
	"modlint/pkg/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Extension != "lean" {
		t.Errorf("expected default extension to be lean, got %s", cfg.Extension)
	}

	if cfg.ExceptionsFile != "style-exceptions.txt" {
		t.Errorf("expected default exceptions file to be style-exceptions.txt, got %s", cfg.ExceptionsFile)
	}

	if !cfg.UseGit {
		t.Error("expected UseGit to be true by default")
	}

	if cfg.Style.MaxLineLength != 100 {
		t.Errorf("expected default line limit to be 100, got %d", cfg.Style.MaxLineLength)
	}

	if len(cfg.Style.ForbiddenStrings) != 1 || cfg.Style.ForbiddenStrings[0] != "sorry" {
		t.Errorf("expected default forbidden strings to be [sorry], got %v", cfg.Style.ForbiddenStrings)
	}

	if cfg.Style.Copyright.CommentOpen != "/-" || cfg.Style.Copyright.CommentClose != "-/" {
		t.Errorf("expected default comment delimiters /- and -/, got %q and %q",
			cfg.Style.Copyright.CommentOpen, cfg.Style.Copyright.CommentClose)
	}

	if cfg.Workspace.Manifest != "workspace.toml" {
		t.Errorf("expected default manifest to be workspace.toml, got %s", cfg.Workspace.Manifest)
	}

	if cfg.Workspace.PrimaryName != "Sampleland" {
		t.Errorf("expected default primary name to be Sampleland, got %s", cfg.Workspace.PrimaryName)
	}

	if len(cfg.Workspace.DropLibs) != 2 {
		t.Errorf("expected two default drop libs, got %v", cfg.Workspace.DropLibs)
	}

	if cfg.Workspace.ExtraLib != "Extras" {
		t.Errorf("expected default extra lib to be Extras, got %s", cfg.Workspace.ExtraLib)
	}

	if cfg.UI.ColorScheme != "auto" {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}

	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}

	if valid, errs := cfg.IsValid(); !valid {
		t.Errorf("default config should be valid, got %v", errs)
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != platform.Linux {
		t.Skip("XDG lookup rules only apply on Linux")
	}

	restoreXDG := testutil.MustSetenv(t, "XDG_CONFIG_HOME", "/tmp/test-xdg-config")
	defer restoreXDG()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if want := filepath.Join("/tmp/test-xdg-config", AppName); dir != want {
		t.Errorf("ConfigDir() = %s, want %s", dir, want)
	}

	// Without XDG_CONFIG_HOME the directory falls under ~/.config.
	testutil.MustUnsetenv(t, "XDG_CONFIG_HOME")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", AppName); dir != want {
		t.Errorf("ConfigDir() = %s, want %s", dir, want)
	}
}

func TestReset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extension = "md"
	globalConfig = cfg
	configPath = "/some/path"

	Reset()

	if globalConfig != nil {
		t.Error("expected globalConfig to be nil after Reset()")
	}

	if configPath != "" {
		t.Error("expected configPath to be empty after Reset()")
	}
}

func TestGet_ReturnsDefaultOnNoConfig(t *testing.T) {
	Reset()

	// Create a temp directory to avoid loading any real config
	tmpDir := t.TempDir()
	SetConfigDirOverride(filepath.Join(tmpDir, AppName))
	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()
	defer Reset()

	cfg := Get()

	if cfg == nil {
		t.Fatal("Get() returned nil")
	}

	if cfg.Extension != "lean" {
		t.Errorf("expected default extension, got %s", cfg.Extension)
	}
}

func TestLoadAndSave(t *testing.T) {
	Reset()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, AppName)

	// The override dodges os.UserHomeDir, which ignores HOME on some
	// platforms.
	SetConfigDirOverride(configDir)
	defer Reset()

	// Run away from any repository-local modlint.cue.
	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	cfg := &Config{
		Extension:      "md",
		ExceptionsFile: "exceptions.txt",
		UseGit:         false,
		Style: StyleConfig{
			MaxLineLength:    120,
			ForbiddenStrings: []ForbiddenString{"fixme", "hack"},
			Copyright: CopyrightConfig{
				CommentOpen:  "<!--",
				CommentClose: "-->",
				LicenseLine:  "Released under MIT license as described in the file LICENSE.",
			},
		},
		Workspace: WorkspaceConfig{
			Manifest:    "project.toml",
			PrimaryName: "Docs",
			DropLibs:    []types.LibraryName{"Scratch"},
			ExtraLib:    "Appendix",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeDark,
			Verbose:     true,
		},
	}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	// Clear cached config to force reload from disk (but preserve the override)
	ResetCache()

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if loaded.Extension != "md" {
		t.Errorf("Extension = %s, want md", loaded.Extension)
	}

	if loaded.ExceptionsFile != "exceptions.txt" {
		t.Errorf("ExceptionsFile = %s, want exceptions.txt", loaded.ExceptionsFile)
	}

	if loaded.UseGit {
		t.Error("UseGit = true, want false")
	}

	if loaded.Style.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", loaded.Style.MaxLineLength)
	}

	if len(loaded.Style.ForbiddenStrings) != 2 {
		t.Errorf("ForbiddenStrings = %v, want two entries", loaded.Style.ForbiddenStrings)
	}

	if loaded.Style.Copyright.CommentOpen != "<!--" {
		t.Errorf("CommentOpen = %q, want <!--", loaded.Style.Copyright.CommentOpen)
	}

	if loaded.Workspace.Manifest != "project.toml" {
		t.Errorf("Manifest = %s, want project.toml", loaded.Workspace.Manifest)
	}

	if loaded.Workspace.PrimaryName != "Docs" {
		t.Errorf("PrimaryName = %s, want Docs", loaded.Workspace.PrimaryName)
	}

	if len(loaded.Workspace.DropLibs) != 1 || loaded.Workspace.DropLibs[0] != "Scratch" {
		t.Errorf("DropLibs = %v, want [Scratch]", loaded.Workspace.DropLibs)
	}

	if loaded.Workspace.ExtraLib != "Appendix" {
		t.Errorf("ExtraLib = %s, want Appendix", loaded.Workspace.ExtraLib)
	}

	if loaded.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("ColorScheme = %s, want dark", loaded.UI.ColorScheme)
	}

	if !loaded.UI.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoad_ReturnsDefaultsWhenNoConfigFile(t *testing.T) {
	Reset()

	tmpDir := t.TempDir()
	SetConfigDirOverride(filepath.Join(tmpDir, AppName))
	defer Reset()

	// Change to temp dir to avoid loading config from current directory
	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Extension != defaults.Extension {
		t.Errorf("Extension = %s, want %s", cfg.Extension, defaults.Extension)
	}

	if cfg.Style.MaxLineLength != defaults.Style.MaxLineLength {
		t.Errorf("MaxLineLength = %d, want %d", cfg.Style.MaxLineLength, defaults.Style.MaxLineLength)
	}

	if ConfigFilePath() != "" {
		t.Errorf("ConfigFilePath() = %s, want empty for defaults", ConfigFilePath())
	}
}

func TestLoad_LocalFileWinsOverUserDir(t *testing.T) {
	Reset()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, AppName)
	testutil.MustMkdirAll(t, configDir, 0o755)

	// Per-user file says md, repository-local file says txt.
	userCfg := filepath.Join(configDir, ConfigFileName+"."+ConfigFileExt)
	testutil.MustWriteFile(t, userCfg, []byte(`extension: "md"`), 0o644)
	localCfg := filepath.Join(tmpDir, ConfigFileName+"."+ConfigFileExt)
	testutil.MustWriteFile(t, localCfg, []byte(`extension: "txt"`), 0o644)

	SetConfigDirOverride(configDir)
	defer Reset()

	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Extension != "txt" {
		t.Errorf("Extension = %s, want txt from the repository-local file", cfg.Extension)
	}

	if ConfigFilePath() != ConfigFileName+"."+ConfigFileExt {
		t.Errorf("ConfigFilePath() = %s, want the local file", ConfigFilePath())
	}
}

func TestLoad_ReturnsCachedConfig(t *testing.T) {
	Reset()

	cachedCfg := &Config{Extension: "cached-ext"}
	globalConfig = cachedCfg

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Extension != "cached-ext" {
		t.Errorf("expected cached config, got Extension = %s", cfg.Extension)
	}

	Reset()
}

func TestCreateDefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, AppName)

	SetConfigDirOverride(configDir)
	defer Reset()

	created, err := CreateDefaultConfig()
	if err != nil {
		t.Fatalf("CreateDefaultConfig() returned error: %v", err)
	}
	if !created {
		t.Error("first call should report that it created the file")
	}

	cfgPath := filepath.Join(configDir, ConfigFileName+"."+ConfigFileExt)
	content, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	if len(content) == 0 {
		t.Error("config file is empty")
	}

	// The second call must leave the existing file alone.
	testutil.MustWriteFile(t, cfgPath, []byte(`extension: "md"`), 0o644)
	created, err = CreateDefaultConfig()
	if err != nil {
		t.Fatalf("CreateDefaultConfig() returned error on second call: %v", err)
	}
	if created {
		t.Error("second call should not report a write")
	}
	content, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("failed to reread config file: %v", err)
	}
	if string(content) != `extension: "md"` {
		t.Error("second call overwrote the existing file")
	}
}

func TestConfigFilePath(t *testing.T) {
	Reset()

	if path := ConfigFilePath(); path != "" {
		t.Errorf("ConfigFilePath() = %s, want empty string", path)
	}

	configPath = "/some/test/path"

	if path := ConfigFilePath(); path != "/some/test/path" {
		t.Errorf("ConfigFilePath() = %s, want /some/test/path", path)
	}

	Reset()
}

func TestGet_StoresLoadErrorForLaterRetrieval(t *testing.T) {
	Reset()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, AppName)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	invalidConfig := `this is not valid CUE syntax`
	cfgPath := filepath.Join(configDir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(cfgPath, []byte(invalidConfig), 0o644); err != nil {
		t.Fatalf("failed to write invalid config: %v", err)
	}

	SetConfigDirOverride(configDir)
	defer Reset()

	// Change to temp dir to avoid loading config from current directory
	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	// Get() should return defaults but store the error
	cfg := Get()

	if cfg.Extension != "lean" {
		t.Errorf("expected default extension, got %s", cfg.Extension)
	}

	err := LastLoadError()
	if err == nil {
		t.Fatal("expected LastLoadError() to return error for invalid config")
	}

	if !strings.Contains(err.Error(), "load configuration") {
		t.Errorf("error should contain 'load configuration', got: %s", err)
	}
}

func TestLastLoadError_NilWhenSuccessful(t *testing.T) {
	Reset()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, AppName)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	validConfig := `extension: "md"`
	cfgPath := filepath.Join(configDir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(cfgPath, []byte(validConfig), 0o644); err != nil {
		t.Fatalf("failed to write valid config: %v", err)
	}

	SetConfigDirOverride(configDir)
	defer Reset()

	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	cfg := Get()

	if cfg.Extension != "md" {
		t.Errorf("expected md, got %s", cfg.Extension)
	}

	if err := LastLoadError(); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestLoad_ActionableErrorFormat(t *testing.T) {
	Reset()

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, AppName)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	// Wrong type for extension
	invalidConfig := `extension: 123`
	cfgPath := filepath.Join(configDir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(cfgPath, []byte(invalidConfig), 0o644); err != nil {
		t.Fatalf("failed to write invalid config: %v", err)
	}

	SetConfigDirOverride(configDir)
	defer Reset()

	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	_, err := Load()
	if err == nil {
		t.Fatal("expected Load() to return error for invalid config")
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "load configuration") {
		t.Errorf("error should contain operation, got: %s", errStr)
	}
	if !strings.Contains(errStr, cfgPath) {
		t.Errorf("error should contain resource path, got: %s", errStr)
	}
}

func TestLoad_RejectsContradictoryWorkspaceNames(t *testing.T) {
	Reset()

	tmpDir := t.TempDir()
	localCfg := filepath.Join(tmpDir, ConfigFileName+"."+ConfigFileExt)
	content := `workspace: {
	drop_libs: ["Cache", "Extras"]
	extra_lib: "Extras"
}
`
	testutil.MustWriteFile(t, localCfg, []byte(content), 0o644)

	SetConfigDirOverride(filepath.Join(tmpDir, AppName))
	defer Reset()

	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	_, err := Load()
	if err == nil {
		t.Fatal("expected Load() to reject extra_lib listed in drop_libs")
	}
	if !strings.Contains(err.Error(), "drop_libs") {
		t.Errorf("error should name drop_libs, got: %s", err)
	}
}

func TestSetConfigFilePathOverride_SetsVariable(t *testing.T) {
	Reset()
	defer Reset()

	SetConfigFilePathOverride("/some/custom/path.cue")

	if configFilePathOverride != "/some/custom/path.cue" {
		t.Errorf("configFilePathOverride = %q, want /some/custom/path.cue", configFilePathOverride)
	}
}

func TestSetConfigFilePathOverride_ClearsCache(t *testing.T) {
	Reset()
	defer Reset()

	globalConfig = &Config{Extension: "cached"}
	configPath = "/old/path"

	SetConfigFilePathOverride("/new/path.cue")

	if globalConfig != nil {
		t.Error("expected globalConfig to be nil after SetConfigFilePathOverride")
	}
	if configPath != "" {
		t.Error("expected configPath to be empty after SetConfigFilePathOverride")
	}
}

func TestLoad_CustomPath_Valid(t *testing.T) {
	Reset()
	defer Reset()

	tmpDir := t.TempDir()
	customConfigPath := filepath.Join(tmpDir, "custom-modlint.cue")

	validConfig := `extension: "md"
use_git: false
`
	if err := os.WriteFile(customConfigPath, []byte(validConfig), 0o644); err != nil {
		t.Fatalf("failed to write custom config: %v", err)
	}

	SetConfigFilePathOverride(customConfigPath)

	// Change to temp dir to avoid loading config from current directory
	restoreWd := testutil.MustChdir(t, tmpDir)
	defer restoreWd()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Extension != "md" {
		t.Errorf("Extension = %s, want md", cfg.Extension)
	}
	if cfg.UseGit {
		t.Error("UseGit = true, want false")
	}

	if ConfigFilePath() != customConfigPath {
		t.Errorf("ConfigFilePath() = %s, want %s", ConfigFilePath(), customConfigPath)
	}
}

func TestLoad_CustomPath_NotFound_ReturnsError(t *testing.T) {
	Reset()
	defer Reset()

	nonExistentPath := "/this/path/does/not/exist/modlint.cue"
	SetConfigFilePathOverride(nonExistentPath)

	_, err := Load()
	if err == nil {
		t.Fatal("expected Load() to return error for non-existent config file")
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "load configuration") {
		t.Errorf("error should contain 'load configuration', got: %s", errStr)
	}
	if !strings.Contains(errStr, nonExistentPath) {
		t.Errorf("error should contain the path, got: %s", errStr)
	}
	if !strings.Contains(errStr, "config file not found") {
		t.Errorf("error should contain 'config file not found', got: %s", errStr)
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("expected error to be *issue.ActionableError")
	}
	if len(ae.Suggestions) == 0 {
		t.Error("expected ActionableError to have suggestions")
	}
	foundSuggestion := false
	for _, s := range ae.Suggestions {
		if strings.Contains(s, "Verify the file path is correct") {
			foundSuggestion = true
			break
		}
	}
	if !foundSuggestion {
		t.Errorf("expected suggestion 'Verify the file path is correct', got: %v", ae.Suggestions)
	}
}

func TestLoad_CustomPath_InvalidCUE_ReturnsError(t *testing.T) {
	Reset()
	defer Reset()

	tmpDir := t.TempDir()
	customConfigPath := filepath.Join(tmpDir, "invalid-modlint.cue")

	invalidConfig := `this is not valid CUE syntax {{{{`
	if err := os.WriteFile(customConfigPath, []byte(invalidConfig), 0o644); err != nil {
		t.Fatalf("failed to write invalid config: %v", err)
	}

	SetConfigFilePathOverride(customConfigPath)

	_, err := Load()
	if err == nil {
		t.Fatal("expected Load() to return error for invalid CUE config file")
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "load configuration") {
		t.Errorf("error should contain 'load configuration', got: %s", errStr)
	}
	if !strings.Contains(errStr, customConfigPath) {
		t.Errorf("error should contain the path, got: %s", errStr)
	}
}

func TestReset_ClearsCustomPath(t *testing.T) {
	configFilePathOverride = "/custom/path.cue"
	globalConfig = &Config{Extension: "test"}
	configPath = "/some/path"
	configDirOverride = "/dir/override"
	errLastLoad = fmt.Errorf("test error")

	Reset()

	if configFilePathOverride != "" {
		t.Errorf("configFilePathOverride = %q, want empty string", configFilePathOverride)
	}
	if globalConfig != nil {
		t.Error("globalConfig should be nil after Reset")
	}
	if configPath != "" {
		t.Error("configPath should be empty after Reset")
	}
	if configDirOverride != "" {
		t.Error("configDirOverride should be empty after Reset")
	}
	if errLastLoad != nil {
		t.Error("errLastLoad should be nil after Reset")
	}
}

func TestValidateFile_Valid(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "modlint.cue")
	content := `extension: "md"
workspace: {
	primary_name: "Docs"
	drop_libs: ["Scratch"]
}
`
	testutil.MustWriteFile(t, cfgPath, []byte(content), 0o644)

	cfg, err := ValidateFile(cfgPath)
	if err != nil {
		t.Fatalf("ValidateFile() returned error: %v", err)
	}
	if cfg.Extension != "md" {
		t.Errorf("Extension = %s, want md", cfg.Extension)
	}
	if cfg.Workspace.PrimaryName != "Docs" {
		t.Errorf("PrimaryName = %s, want Docs", cfg.Workspace.PrimaryName)
	}
	// Defaults are not merged during validation.
	if cfg.Style.MaxLineLength != 0 {
		t.Errorf("MaxLineLength = %d, want zero value", cfg.Style.MaxLineLength)
	}
}

func TestValidateFile_SchemaViolation(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "modlint.cue")
	testutil.MustWriteFile(t, cfgPath, []byte(`extension: ".md"`), 0o644)

	_, err := ValidateFile(cfgPath)
	if err == nil {
		t.Fatal("expected error for leading-dot extension")
	}
	if !strings.Contains(err.Error(), cfgPath) {
		t.Errorf("error should contain the path, got: %s", err)
	}
}

func TestValidateFile_ContradictoryNames(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "modlint.cue")
	content := `workspace: {
	drop_libs: ["Extras"]
	extra_lib: "Extras"
}
`
	testutil.MustWriteFile(t, cfgPath, []byte(content), 0o644)

	_, err := ValidateFile(cfgPath)
	if err == nil {
		t.Fatal("expected error for extra_lib listed in drop_libs")
	}
	if !strings.Contains(err.Error(), "drop_libs") {
		t.Errorf("error should name drop_libs, got: %s", err)
	}
}

func TestValidateFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ValidateFile("/does/not/exist/modlint.cue")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("expected error to be *issue.ActionableError")
	}
}

func TestValidateWorkspaceNames(t *testing.T) {
	tests := []struct {
		name    string
		ws      WorkspaceConfig
		wantErr bool
	}{
		{
			name: "empty workspace valid",
			ws:   WorkspaceConfig{},
		},
		{
			name: "distinct drop libs valid",
			ws:   WorkspaceConfig{DropLibs: []types.LibraryName{"Cache", "Bench"}, ExtraLib: "Extras"},
		},
		{
			name:    "duplicate drop libs rejected",
			ws:      WorkspaceConfig{DropLibs: []types.LibraryName{"Cache", "Cache"}},
			wantErr: true,
		},
		{
			name:    "extra lib in drop libs rejected",
			ws:      WorkspaceConfig{DropLibs: []types.LibraryName{"Extras"}, ExtraLib: "Extras"},
			wantErr: true,
		},
		{
			name: "empty extra lib never conflicts",
			ws:   WorkspaceConfig{DropLibs: []types.LibraryName{"Cache"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWorkspaceNames(tt.ws)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}
