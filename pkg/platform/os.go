// SPDX-License-Identifier: MPL-2.0

package platform

// Names for runtime.GOOS comparisons, so the literals live in one place.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
