// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"modlint/internal/issue"
	"modlint/pkg/types"
)

// DefaultManifest is the manifest filename looked up relative to the
// working directory when no explicit path is configured.
const DefaultManifest = "workspace.toml"

type (
	// Lib is one [[lib]] entry of the manifest.
	Lib struct {
		Name types.LibraryName `toml:"name"`
	}

	// Manifest is the parsed workspace manifest:
	//
	//	name = "Sampleland"
	//
	//	[[lib]]
	//	name = "Sampleland"
	//
	//	[[lib]]
	//	name = "Cache"
	Manifest struct {
		Name types.LibraryName `toml:"name"`
		Libs []Lib             `toml:"lib"`
	}

	// Resolver yields the workspace manifest for a run. The file-backed
	// implementation is FileResolver; tests substitute a fake.
	Resolver interface {
		Manifest() (*Manifest, error)
	}

	// FileResolver loads the manifest from a TOML file on disk.
	FileResolver struct {
		Path string
	}
)

// ParseManifest parses manifest TOML. name is used in error messages,
// conventionally the file path.
func ParseManifest(data []byte, name string) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parsing %s: line %d, column %d: %w", name, row, col, err)
		}
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", name, err)
	}
	return &m, nil
}

// Validate checks that the workspace and every declared library carry a
// well-formed name.
func (m *Manifest) Validate() error {
	if err := m.Name.Validate(); err != nil {
		return fmt.Errorf("workspace name: %w", err)
	}
	seen := make(map[types.LibraryName]bool, len(m.Libs))
	for i, lib := range m.Libs {
		if err := lib.Name.Validate(); err != nil {
			return fmt.Errorf("lib %d: %w", i+1, err)
		}
		if seen[lib.Name] {
			return fmt.Errorf("lib %d: duplicate library %q", i+1, lib.Name)
		}
		seen[lib.Name] = true
	}
	return nil
}

// LibraryNames returns the declared library names in manifest order.
func (m *Manifest) LibraryNames() []types.LibraryName {
	names := make([]types.LibraryName, 0, len(m.Libs))
	for _, lib := range m.Libs {
		names = append(names, lib.Name)
	}
	return names
}

// Manifest implements Resolver by reading and parsing the file at f.Path.
// Any failure is fatal for the run and returned as an actionable error.
func (f FileResolver) Manifest() (*Manifest, error) {
	path := f.Path
	if path == "" {
		path = DefaultManifest
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load workspace manifest").
			WithResource(path).
			WithSuggestion("Run modlint from the repository root").
			WithSuggestion("Or point --manifest at the workspace manifest").
			Wrap(err).
			BuildError()
	}

	m, err := ParseManifest(data, path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load workspace manifest").
			WithResource(path).
			WithSuggestion("Check the TOML syntax of the manifest").
			Wrap(err).
			BuildError()
	}
	return m, nil
}
