// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"modlint/internal/config"
	"modlint/internal/testutil"
	"modlint/internal/testutil/treetest"
	"modlint/pkg/types"
)

// flagCommand builds a throwaway command carrying the shared discovery and
// exceptions flags, parsed against args.
func flagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "probe"}
	addDiscoveryFlags(cmd)
	addExceptionsFlag(cmd)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parsing flags %v: %v", args, err)
	}
	return cmd
}

func TestResolveExt(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()

	if got := resolveExt(flagCommand(t), cfg); got != "lean" {
		t.Errorf("resolveExt() with no flag = %q, want config default %q", got, "lean")
	}
	if got := resolveExt(flagCommand(t, "--ext", "txt"), cfg); got != "txt" {
		t.Errorf("resolveExt() with --ext = %q, want %q", got, "txt")
	}
}

func TestResolveUseGit(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "config default wins with no flags", args: nil, want: true},
		{name: "explicit git flag", args: []string{"--git"}, want: true},
		{name: "explicit git disabled", args: []string{"--git=false"}, want: false},
		{name: "no-git forces the walk", args: []string{"--no-git"}, want: false},
		{name: "no-git beats git", args: []string{"--git", "--no-git"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := resolveUseGit(flagCommand(t, tt.args...), cfg); got != tt.want {
				t.Errorf("resolveUseGit(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestResolveExceptionsPath(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()

	if got := resolveExceptionsPath(flagCommand(t), cfg); got != "style-exceptions.txt" {
		t.Errorf("resolveExceptionsPath() with no flag = %q, want config default", got)
	}
	if got := resolveExceptionsPath(flagCommand(t, "--exceptions", "waivers.txt"), cfg); got != "waivers.txt" {
		t.Errorf("resolveExceptionsPath() with --exceptions = %q, want %q", got, "waivers.txt")
	}
}

func TestResolveRoots_ExplicitArgument(t *testing.T) {
	t.Parallel()

	roots, err := resolveRoots([]string{"Sampleland"}, config.DefaultConfig())
	if err != nil {
		t.Fatalf("resolveRoots() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"Sampleland"}, roots); diff != "" {
		t.Errorf("resolveRoots() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRoots_WorkspaceManifest(t *testing.T) {
	// Not parallel: the manifest path resolves against the working directory.
	dir := treetest.Build(t, treetest.WithManifest(treetest.SampleManifest))
	restore := testutil.MustChdir(t, dir)
	defer restore()

	roots, err := resolveRoots(nil, config.DefaultConfig())
	if err != nil {
		t.Fatalf("resolveRoots() unexpected error: %v", err)
	}

	// The primary adjustment drops Cache and Bench and appends Extras;
	// the result is sorted for a lexicographic merged listing.
	want := []string{"Extras", "Sampleland"}
	if diff := cmp.Diff(want, roots); diff != "" {
		t.Errorf("resolveRoots() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRoots_MissingManifest(t *testing.T) {
	// Not parallel: the manifest path resolves against the working directory.
	restore := testutil.MustChdir(t, t.TempDir())
	defer restore()

	if _, err := resolveRoots(nil, config.DefaultConfig()); err == nil {
		t.Fatal("resolveRoots() expected error for missing manifest, got nil")
	}
}

func TestResolveRoots_EmptyManifest(t *testing.T) {
	// Not parallel: the manifest path resolves against the working directory.
	dir := treetest.Build(t, treetest.WithManifest("name = \"Empty\"\n"))
	restore := testutil.MustChdir(t, dir)
	defer restore()

	_, err := resolveRoots(nil, config.DefaultConfig())
	if err == nil {
		t.Fatal("resolveRoots() expected error for empty library list, got nil")
	}
}

func TestParseKinds(t *testing.T) {
	t.Parallel()

	t.Run("valid kinds are trimmed", func(t *testing.T) {
		t.Parallel()

		kinds, err := parseKinds([]string{" ERR_LEN ", "ERR_COP"})
		if err != nil {
			t.Fatalf("parseKinds() unexpected error: %v", err)
		}
		want := []types.RuleKind{"ERR_LEN", "ERR_COP"}
		if diff := cmp.Diff(want, kinds); diff != "" {
			t.Errorf("parseKinds() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown kinds pass shape validation", func(t *testing.T) {
		t.Parallel()

		kinds, err := parseKinds([]string{"ERR_FUTURE"})
		if err != nil {
			t.Fatalf("parseKinds() unexpected error for open-set kind: %v", err)
		}
		if len(kinds) != 1 || kinds[0] != "ERR_FUTURE" {
			t.Errorf("parseKinds() = %v, want [ERR_FUTURE]", kinds)
		}
	})

	t.Run("malformed kind is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := parseKinds([]string{"ERR LEN"})
		if err == nil {
			t.Fatal("parseKinds() expected error for embedded whitespace, got nil")
		}
		if !errors.Is(err, types.ErrInvalidRuleKind) {
			t.Errorf("parseKinds() error = %v, want ErrInvalidRuleKind", err)
		}
	})

	t.Run("empty kind is rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := parseKinds([]string{"  "}); err == nil {
			t.Fatal("parseKinds() expected error for blank kind, got nil")
		}
	})
}

func TestLintConfigFrom(t *testing.T) {
	t.Parallel()

	got := lintConfigFrom(config.DefaultConfig())

	if got.MaxLineLength != 100 {
		t.Errorf("MaxLineLength = %d, want 100", got.MaxLineLength)
	}
	if diff := cmp.Diff([]string{"sorry"}, got.ForbiddenStrings); diff != "" {
		t.Errorf("ForbiddenStrings mismatch (-want +got):\n%s", diff)
	}
	if got.Copyright.CommentOpen != "/-" || got.Copyright.CommentClose != "-/" {
		t.Errorf("Copyright delimiters = %q/%q, want /- and -/",
			got.Copyright.CommentOpen, got.Copyright.CommentClose)
	}
}

func TestAdjustmentFromConfig(t *testing.T) {
	t.Parallel()

	adj := adjustmentFromConfig(config.DefaultConfig())

	if adj.Primary != "Sampleland" {
		t.Errorf("Primary = %q, want Sampleland", adj.Primary)
	}
	if diff := cmp.Diff([]types.LibraryName{"Cache", "Bench"}, adj.Drop); diff != "" {
		t.Errorf("Drop mismatch (-want +got):\n%s", diff)
	}
	if adj.Extra != "Extras" {
		t.Errorf("Extra = %q, want Extras", adj.Extra)
	}
}

func TestIssueStyleFrom(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	if got := issueStyleFrom(cfg); got != "dark" {
		t.Errorf("issueStyleFrom(auto) = %q, want dark", got)
	}

	cfg.UI.ColorScheme = config.ColorSchemeLight
	if got := issueStyleFrom(cfg); got != "light" {
		t.Errorf("issueStyleFrom(light) = %q, want light", got)
	}

	cfg.UI.ColorScheme = config.ColorSchemeDark
	if got := issueStyleFrom(cfg); got != "dark" {
		t.Errorf("issueStyleFrom(dark) = %q, want dark", got)
	}
}
