// SPDX-License-Identifier: MPL-2.0

// Package cueutil is the one place that knows how to take user-written
// CUE, check it against an embedded schema, and hand back a Go struct.
//
// ParseAndDecode compiles the schema, unifies the user data with the
// definition named by a CUEPath, validates the result, and decodes it:
//
//	//go:embed config_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[Config](
//	    schemaBytes,
//	    userFileBytes,
//	    "#Config",
//	    cueutil.WithFilename("modlint.cue"),
//	)
//
// Failures are rewritten by FormatError so each one names the file and
// the JSON-path of the offending value, which is what ends up in front
// of the user.
package cueutil
