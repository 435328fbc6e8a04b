// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package watch

import (
	"errors"
	"syscall"
)

// isFatalFsnotifyError reports whether a watcher error is unrecoverable.
// On Linux these are the inotify exhaustion errnos:
//   - ENOSPC: fs.inotify.max_user_watches exceeded
//   - EMFILE: per-process descriptor limit hit
//   - ENFILE: system-wide descriptor table full
func isFatalFsnotifyError(err error) bool {
	return errors.Is(err, syscall.ENOSPC) ||
		errors.Is(err, syscall.EMFILE) ||
		errors.Is(err, syscall.ENFILE)
}
