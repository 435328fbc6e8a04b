// SPDX-License-Identifier: MPL-2.0

// Package modname converts between relative source file paths and
// hierarchical module names: "Algebra/Group/Basic.lean" names the module
// "Algebra.Group.Basic". The conversion is a bijection so that every module
// name reconstructs exactly one file path, which downstream tooling relies
// on when it turns lint output back into file locations.
package modname

import (
	"errors"
	"fmt"
	"strings"

	"modlint/pkg/types"
)

// ErrNotSourceFile is returned by FromPath when the path does not carry the
// expected source extension.
var ErrNotSourceFile = errors.New("not a source file")

// ErrAmbiguousPath is returned by FromPath when a path segment contains a
// dot. Such a path would collide with a different file after the
// dot-for-slash substitution, breaking the path/name bijection.
var ErrAmbiguousPath = errors.New("ambiguous path")

// NormalizeExt strips a leading dot from a file extension, so "lean" and
// ".lean" configure the same discovery pass.
func NormalizeExt(ext string) string {
	return strings.TrimPrefix(ext, ".")
}

// FromPath converts a slash-separated relative file path to its module
// name. The extension is stripped and each path separator becomes a dot:
//
//	FromPath("Algebra/Group/Basic.lean", "lean") == "Algebra.Group.Basic"
func FromPath(rel string, ext string) (types.ModuleName, error) {
	ext = NormalizeExt(ext)
	if ext == "" {
		return "", fmt.Errorf("converting %q: extension must be non-empty", rel)
	}
	if err := types.RelPath(rel).Validate(); err != nil {
		return "", fmt.Errorf("converting %q: %w", rel, err)
	}

	suffix := "." + ext
	if !strings.HasSuffix(rel, suffix) {
		return "", fmt.Errorf("converting %q: %w (want extension %q)", rel, ErrNotSourceFile, ext)
	}

	stem := strings.TrimSuffix(rel, suffix)
	for _, seg := range strings.Split(stem, "/") {
		if strings.Contains(seg, ".") {
			return "", fmt.Errorf("converting %q: %w (segment %q contains a dot)", rel, ErrAmbiguousPath, seg)
		}
	}

	name := types.ModuleName(strings.ReplaceAll(stem, "/", "."))
	if err := name.Validate(); err != nil {
		return "", fmt.Errorf("converting %q: %w", rel, err)
	}
	return name, nil
}

// Path converts a module name back to its slash-separated relative file
// path with the given extension. It is the inverse of FromPath:
//
//	Path("Algebra.Group.Basic", "lean") == "Algebra/Group/Basic.lean"
func Path(name types.ModuleName, ext string) types.RelPath {
	ext = NormalizeExt(ext)
	rel := strings.ReplaceAll(string(name), ".", "/")
	return types.RelPath(rel + "." + ext)
}
