// SPDX-License-Identifier: MPL-2.0

// Package platform holds the small cross-platform facts the rest of the
// tool consults: runtime.GOOS name constants and the Windows reserved
// file names that make a source tree impossible to check out there.
package platform
