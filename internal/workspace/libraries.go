// SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"slices"

	"modlint/pkg/types"
)

// PrimaryAdjustment rewrites the library list when the manifest describes
// the primary project itself rather than a downstream consumer. Tooling
// libraries that hold no lintable sources are dropped, and the auxiliary
// library that the build system does not auto-discover is appended.
type PrimaryAdjustment struct {
	// Primary is the workspace name that triggers the adjustment. An empty
	// Primary disables it.
	Primary types.LibraryName

	// Drop lists libraries removed from the build list.
	Drop []types.LibraryName

	// Extra is appended to the build list unless already present. Empty
	// means nothing is appended.
	Extra types.LibraryName
}

// BuildLibraries resolves the ordered list of libraries a full build
// compiles: the manifest's declared libraries, adjusted when the workspace
// is the primary project.
func BuildLibraries(r Resolver, adj PrimaryAdjustment) ([]types.LibraryName, error) {
	m, err := r.Manifest()
	if err != nil {
		return nil, err
	}

	libs := m.LibraryNames()
	if adj.Primary == "" || m.Name != adj.Primary {
		return libs, nil
	}

	adjusted := make([]types.LibraryName, 0, len(libs)+1)
	for _, lib := range libs {
		if slices.Contains(adj.Drop, lib) {
			continue
		}
		adjusted = append(adjusted, lib)
	}
	if adj.Extra != "" && !slices.Contains(adjusted, adj.Extra) {
		adjusted = append(adjusted, adj.Extra)
	}
	return adjusted, nil
}
