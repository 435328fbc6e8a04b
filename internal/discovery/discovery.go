// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"modlint/internal/issue"
	"modlint/pkg/modname"
	"modlint/pkg/platform"
	"modlint/pkg/types"
)

type (
	// Lister is the injectable version-control listing capability: it
	// returns the tracked files under root carrying the extension. Tests
	// substitute a fake so no real git invocation is needed.
	Lister func(ctx context.Context, root, ext string) ([]string, error)

	// Options configures a discovery pass.
	Options struct {
		// Root is the library directory to enumerate, relative to the
		// working directory, e.g. "Sampleland".
		Root string

		// Ext is the source file extension, with or without a leading dot.
		Ext string

		// UseGit selects the version-control listing over the direct walk.
		UseGit bool

		// ListTracked overrides the git listing when UseGit is set. nil
		// means GitLister.
		ListTracked Lister
	}

	// Listing is the result of a discovery pass: the surviving file paths
	// plus any diagnostics for entries that were dropped.
	Listing struct {
		Files       []string
		Diagnostics []Diagnostic
	}

	// ModuleListing pairs each surviving file with its module name.
	ModuleListing struct {
		Modules     []types.ModuleName
		Diagnostics []Diagnostic
	}
)

// Validate checks that the options name a root and an extension.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Root) == "" {
		return fmt.Errorf("discovery root must be non-empty")
	}
	if modname.NormalizeExt(o.Ext) == "" {
		return fmt.Errorf("discovery extension must be non-empty")
	}
	return nil
}

// root returns Root without a trailing separator, so path comparisons and
// the aggregator exclusion work regardless of how the root was spelled.
func (o Options) root() string {
	return strings.TrimRight(o.Root, "/")
}

// aggregator returns the path of the root aggregator file, the generated
// "<Root>.<ext>" import-everything module that never counts as a source
// file of the tree.
func (o Options) aggregator() string {
	return o.root() + "." + modname.NormalizeExt(o.Ext)
}

// Files lists the source files below opts.Root. Paths are slash-separated,
// relative to the working directory (so they start with the root itself),
// and sorted lexicographically. The root aggregator file is excluded and
// listed entries that no longer exist on disk are dropped with a
// diagnostic.
func Files(ctx context.Context, opts Options) (*Listing, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var (
		raw []string
		err error
	)
	if opts.UseGit {
		lister := opts.ListTracked
		if lister == nil {
			lister = GitLister
		}
		raw, err = lister(ctx, opts.root(), modname.NormalizeExt(opts.Ext))
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("list tracked files").
				WithResource(opts.root()).
				WithSuggestion("Run modlint inside the git repository").
				WithSuggestion("Or pass --no-git to walk the directory instead").
				Wrap(err).
				BuildError()
		}
	} else {
		raw, err = walkTree(opts.root(), modname.NormalizeExt(opts.Ext))
		if err != nil {
			return nil, err
		}
	}

	listing := &Listing{}
	aggregator := opts.aggregator()
	for _, p := range raw {
		p = filepath.ToSlash(strings.TrimSpace(p))
		if p == "" || p == aggregator {
			continue
		}
		if _, statErr := os.Stat(filepath.FromSlash(p)); statErr != nil {
			if os.IsNotExist(statErr) {
				listing.Diagnostics = append(listing.Diagnostics, Diagnostic{
					Severity: SeverityWarning,
					Code:     CodeStaleListingEntry,
					Message:  "listed file no longer exists on disk",
					Path:     p,
					Cause:    statErr,
				})
				continue
			}
			return nil, issue.WrapWithContext(statErr, "stat listed file", p)
		}
		if platform.IsWindowsReservedName(path.Base(p)) {
			listing.Diagnostics = append(listing.Diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeReservedFileName,
				Message:  "file name is reserved on Windows and will break checkouts there",
				Path:     p,
			})
		}
		listing.Files = append(listing.Files, p)
	}

	sort.Strings(listing.Files)
	return listing, nil
}

// Modules maps the files of a discovery pass to their module names, in the
// same order as Files. Every path converts cleanly by construction of the
// listing; a path that cannot convert (for example a dotted directory
// name) is a hard error naming the offender.
func Modules(ctx context.Context, opts Options) (*ModuleListing, error) {
	listing, err := Files(ctx, opts)
	if err != nil {
		return nil, err
	}

	out := &ModuleListing{Diagnostics: listing.Diagnostics}
	for _, p := range listing.Files {
		m, err := modname.FromPath(p, opts.Ext)
		if err != nil {
			return nil, issue.WrapWithContext(err, "derive module name", p)
		}
		out.Modules = append(out.Modules, m)
	}
	return out, nil
}

// walkTree is the direct listing mode: a filesystem walk below root
// collecting regular files with the extension. Dot-directories (".git" and
// friends) are skipped. Any walk error is fatal and reports the offending
// path.
func walkTree(root, ext string) ([]string, error) {
	suffix := "." + ext
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("walk source tree").
				WithResource(path).
				WithSuggestion("Check that the root directory exists and is readable").
				Wrap(err).
				BuildError()
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), suffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
