// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestIsWindowsReservedName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"device name lowercase", "con", true},
		{"device name uppercase", "NUL", true},
		{"device name mixed case", "Aux", true},
		{"printer port", "lpt1", true},
		{"serial port", "com9", true},
		{"device name with source extension", "nul.lean", true},
		{"device name with other extension", "con.txt", true},
		{"upper case with extension", "COM1.lean", true},

		{"ordinary module file", "Basic.lean", false},
		{"ordinary stem", "Group", false},
		{"reserved name as prefix only", "console.lean", false},
		{"two digit port numbers are fine", "com10", false},
		{"lpt without digit", "lpt", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsWindowsReservedName(tt.input); got != tt.want {
				t.Errorf("IsWindowsReservedName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWindowsReservedNames(t *testing.T) {
	t.Parallel()

	// 4 device names plus COM1-COM9 plus LPT1-LPT9.
	if len(WindowsReservedNames) != 22 {
		t.Errorf("WindowsReservedNames has %d entries, want 22", len(WindowsReservedNames))
	}
	for _, name := range []string{"CON", "PRN", "AUX", "NUL", "COM1", "COM9", "LPT1", "LPT9"} {
		if !WindowsReservedNames[name] {
			t.Errorf("WindowsReservedNames missing %q", name)
		}
	}
}
