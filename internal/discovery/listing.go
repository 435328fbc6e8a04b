// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// GitLister lists the git-tracked files under root carrying the extension.
// It shells out to "git ls-files" with a pathspec of the form
// "<root>/*.<ext>"; git's glob matches across directory levels, so nested
// files are included. Output is one relative path per line.
func GitLister(ctx context.Context, root, ext string) ([]string, error) {
	pathspec := root + "/*." + ext

	cmd := exec.CommandContext(ctx, "git", "ls-files", "--", pathspec)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			if stderr != "" {
				return nil, fmt.Errorf("git ls-files -- %s: %w: %s", pathspec, err, stderr)
			}
		}
		return nil, fmt.Errorf("git ls-files -- %s: %w", pathspec, err)
	}

	raw := strings.Split(string(out), "\n")
	files := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}
