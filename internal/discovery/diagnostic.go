// SPDX-License-Identifier: MPL-2.0

package discovery

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal discovery error diagnostic.
	SeverityError Severity = "error"
)

// Diagnostic codes produced by the listing pipeline.
const (
	// CodeStaleListingEntry marks a listed path that no longer exists on
	// disk. The entry is dropped from the result.
	CodeStaleListingEntry = "stale_listing_entry"

	// CodeReservedFileName marks a listed file whose name is reserved on
	// Windows and would break checkouts there. The entry is kept.
	CodeReservedFileName = "reserved_file_name"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// Diagnostic represents a structured discovery diagnostic that is
	// returned to callers (rather than written to stderr) for consistent
	// rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "stale_listing_entry").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)
