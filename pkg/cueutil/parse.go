// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult is what a successful parse yields.
type ParseResult[T any] struct {
	// Value is the decoded Go struct.
	Value *T

	// Unified is the CUE value after unification with the schema, kept
	// around for callers that pull extra metadata out of the document.
	Unified cue.Value
}

// ParseAndDecode validates user-supplied CUE data against an embedded
// schema and decodes it into T. The data is compiled, unified with the
// definition at schemaPath inside the schema, validated, and decoded.
// Validation failures come back formatted by FormatError, so they name
// the file and the offending path.
//
// Schema compilation problems are bugs in the caller, not user input
// errors, and are reported as internal errors.
func ParseAndDecode[T any](schema, data []byte, schemaPath CUEPath, opts ...Option) (*ParseResult[T], error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	filename := options.filename
	if filename == "" {
		filename = "<input>"
	}

	if err := schemaPath.Validate(); err != nil {
		return nil, err
	}

	// Bound the input before CUE sees it; a runaway file should fail
	// fast, not exhaust memory in the evaluator.
	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath.String()))
	if schemaRoot.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	unified := schemaRoot.Unify(userValue)

	var vopts []cue.Option
	if options.concrete {
		vopts = append(vopts, cue.Concrete(true))
	}
	if err := unified.Validate(vopts...); err != nil {
		return nil, FormatError(err, filename)
	}

	var decoded T
	if err := unified.Decode(&decoded); err != nil {
		return nil, FormatError(err, filename)
	}

	return &ParseResult[T]{Value: &decoded, Unified: unified}, nil
}

// ParseAndDecodeString is ParseAndDecode for schemas embedded as string
// constants.
func ParseAndDecodeString[T any](schema string, data []byte, schemaPath CUEPath, opts ...Option) (*ParseResult[T], error) {
	return ParseAndDecode[T]([]byte(schema), data, schemaPath, opts...)
}
