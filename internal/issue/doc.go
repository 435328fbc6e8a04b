// SPDX-License-Identifier: MPL-2.0

// Package issue turns failures into messages a user can act on.
//
// It has two halves. ActionableError is the structured error the commands
// return: an operation, the resource it touched, repair suggestions, and
// the wrapped cause. The Issue catalog holds longer Markdown help texts,
// rendered with glamour, for the failure classes that stop a lint run
// before any report is produced.
package issue
