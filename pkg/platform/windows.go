// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

// WindowsReservedNames are the DOS device names Windows refuses as file
// names, with or without an extension. A source tree containing one of
// these cannot be checked out on Windows.
var WindowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// IsWindowsReservedName reports whether name collides with a Windows
// reserved device name. The extension does not matter: "nul.lean" is as
// unrepresentable as "nul".
func IsWindowsReservedName(name string) bool {
	stem := strings.ToUpper(name)
	if idx := strings.LastIndex(stem, "."); idx != -1 {
		stem = stem[:idx]
	}
	return WindowsReservedNames[stem]
}
