// SPDX-License-Identifier: MPL-2.0

package treetest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleManifest is a workspace manifest for a primary project with two
// tooling libraries, mirroring the shipped configuration defaults.
const SampleManifest = `name = "Sampleland"

[[lib]]
name = "Sampleland"

[[lib]]
name = "Cache"

[[lib]]
name = "Bench"
`

// header is a well-formed copyright block matching the shipped style
// defaults. Tests that exercise header violations build their own.
var header = []string{
	"/-",
	"Copyright (c) 2024 Jane Doe. All rights reserved.",
	"Released under Apache 2.0 license as described in the file LICENSE.",
	"Authors: Jane Doe",
	"-/",
}

type (
	// TreeOption adds one entry to the tree being built.
	TreeOption func(t testing.TB, dir string)
)

// Build creates a temp directory populated by the given options and
// returns its path. Parent directories of every entry are created as
// needed.
func Build(t testing.TB, opts ...TreeOption) string {
	t.Helper()
	dir := t.TempDir()
	for _, opt := range opts {
		opt(t, dir)
	}
	return dir
}

// WithFile writes verbatim content at rel.
func WithFile(rel, content string) TreeOption {
	return func(t testing.TB, dir string) {
		t.Helper()
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("treetest: mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("treetest: write %s: %v", rel, err)
		}
	}
}

// WithSource writes a source file at rel consisting of a well-formed
// copyright header followed by the body lines.
func WithSource(rel string, body ...string) TreeOption {
	return WithFile(rel, HeaderedSource(body...))
}

// WithManifest writes content as workspace.toml at the tree root.
func WithManifest(content string) TreeOption {
	return WithFile("workspace.toml", content)
}

// WithExceptions writes content as style-exceptions.txt at the tree root.
func WithExceptions(content string) TreeOption {
	return WithFile("style-exceptions.txt", content)
}

// WithDir creates an empty directory at rel.
func WithDir(rel string) TreeOption {
	return func(t testing.TB, dir string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(rel)), 0o755); err != nil {
			t.Fatalf("treetest: mkdir %s: %v", rel, err)
		}
	}
}

// HeaderedSource renders a source file with a well-formed copyright header
// followed by the body lines and a trailing newline.
func HeaderedSource(body ...string) string {
	lines := make([]string, 0, len(header)+len(body))
	lines = append(lines, header...)
	lines = append(lines, body...)
	return strings.Join(lines, "\n") + "\n"
}

// HeaderLines returns a copy of the well-formed header block, for tests
// that splice in a broken line.
func HeaderLines() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}
