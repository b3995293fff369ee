// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package compiler

import (
	"fmt"

	"go.capgen.dev/capgen"
	"go.capgen.dev/capgen/syntax"
)

type Error struct {
	code    uint32
	message string
	file    string
	span    syntax.Span
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	return fmt.Sprintf("E%d: %s", err.code, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

func (err *Error) File() string {
	return err.file
}

func (err *Error) Span() syntax.Span {
	return err.span
}

func errNotStruct(file, name string, span syntax.Span) *Error {
	return &Error{
		code:    3000,
		message: fmt.Sprintf("Capgen directives apply only to struct types, but '%s' is not a struct", name),
		file:    file,
		span:    span,
	}
}

func errMissingSuffix(file, name string, span syntax.Span) *Error {
	return &Error{
		code: 3001,
		message: fmt.Sprintf(
			"Schema name '%s' must end with %q",
			name, capgen.SchemaSuffix,
		),
		file: file,
		span: span,
	}
}

func errMissingOwner(file, name string, span syntax.Span) *Error {
	return &Error{
		code:    3002,
		message: fmt.Sprintf("Schema '%s' has no '//capgen:owner' directive", name),
		file:    file,
		span:    span,
	}
}

func errDuplicateOwner(file, name string, span syntax.Span) *Error {
	return &Error{
		code:    3003,
		message: fmt.Sprintf("Schema '%s' has more than one '//capgen:owner' directive", name),
		file:    file,
		span:    span,
	}
}

func errInvalidOwner(file, expr, reason string, span syntax.Span) *Error {
	return &Error{
		code:    3004,
		message: fmt.Sprintf("Invalid owner %q: %s", expr, reason),
		file:    file,
		span:    span,
	}
}

func errUnknownFlag(file, field, token string, span syntax.Span) *Error {
	return &Error{
		code: 3005,
		message: fmt.Sprintf(
			"Unrecognized flag %q on field '%s' (expected \"mut\" or \"signer\")",
			token, field,
		),
		file: file,
		span: span,
	}
}

func errEmbeddedField(file, schema string, span syntax.Span) *Error {
	return &Error{
		code:    3006,
		message: fmt.Sprintf("Schema '%s' must contain named fields only", schema),
		file:    file,
		span:    span,
	}
}

func errUnsupportedFieldType(file, field, typeText string, span syntax.Span) *Error {
	return &Error{
		code: 3007,
		message: fmt.Sprintf(
			"Field '%s' has unsupported type '%s' (expected capgen.Address or a schema type)",
			field, typeText,
		),
		file: file,
		span: span,
	}
}

func errDuplicateDecl(file, name string, span syntax.Span) *Error {
	return &Error{
		code:    3008,
		message: fmt.Sprintf("Duplicate declaration of '%s'", name),
		file:    file,
		span:    span,
	}
}

func errFlagsOnNestedField(file, field string, span syntax.Span) *Error {
	return &Error{
		code:    3009,
		message: fmt.Sprintf("Nested schema field '%s' cannot carry flags", field),
		file:    file,
		span:    span,
	}
}

func errMissingTag(file, name string, span syntax.Span) *Error {
	return &Error{
		code:    3010,
		message: fmt.Sprintf("Payload '%s' has no '//capgen:tag' directive", name),
		file:    file,
		span:    span,
	}
}

func errDuplicateTag(file, name string, span syntax.Span) *Error {
	return &Error{
		code:    3011,
		message: fmt.Sprintf("Payload '%s' has more than one '//capgen:tag' directive", name),
		file:    file,
		span:    span,
	}
}

func errInvalidTag(file, text, reason string, span syntax.Span) *Error {
	return &Error{
		code:    3012,
		message: fmt.Sprintf("Invalid type tag %q: %s", text, reason),
		file:    file,
		span:    span,
	}
}

func errBoundNameConflict(file, schema, bound string, span syntax.Span) *Error {
	return &Error{
		code: 3013,
		message: fmt.Sprintf(
			"Bound aggregate '%s' of schema '%s' conflicts with an existing declaration",
			bound, schema,
		),
		file: file,
		span: span,
	}
}

func errConflictingDirectives(file, name string, span syntax.Span) *Error {
	return &Error{
		code:    3014,
		message: fmt.Sprintf("Type '%s' cannot be both a schema and a payload", name),
		file:    file,
		span:    span,
	}
}

func errMisplacedDirective(file string, kind syntax.DirectiveKind, name string, span syntax.Span) *Error {
	return &Error{
		code:    3015,
		message: fmt.Sprintf("Directive '%s' is not valid on '%s'", kind, name),
		file:    file,
		span:    span,
	}
}

func errInvalidAccountsArg(file, arg string, span syntax.Span) *Error {
	return &Error{
		code:    3016,
		message: fmt.Sprintf("Invalid '//capgen:accounts' argument %q (expected data=Name)", arg),
		file:    file,
		span:    span,
	}
}

func errDuplicateField(file, schema, field string, span syntax.Span) *Error {
	return &Error{
		code:    3017,
		message: fmt.Sprintf("Schema '%s' declares field '%s' more than once", schema, field),
		file:    file,
		span:    span,
	}
}

func errPayloadNotFound(file, schema, payload string, span syntax.Span) *Error {
	return &Error{
		code: 4000,
		message: fmt.Sprintf(
			"Payload '%s' linked to schema '%s' not found",
			payload, schema,
		),
		file: file,
		span: span,
	}
}

func errNestedNotFound(file, field, ref string, span syntax.Span) *Error {
	return &Error{
		code:    4001,
		message: fmt.Sprintf("Schema '%s' referenced by field '%s' not found", ref, field),
		file:    file,
		span:    span,
	}
}

func errNestedNotSchema(file, field, ref string, span syntax.Span) *Error {
	return &Error{
		code: 4002,
		message: fmt.Sprintf(
			"Type '%s' referenced by field '%s' is not a capability schema",
			ref, field,
		),
		file: file,
		span: span,
	}
}

func errNestedCycle(file, schema, path string, span syntax.Span) *Error {
	return &Error{
		code:    4003,
		message: fmt.Sprintf("Schema '%s' nests itself through %s", schema, path),
		file:    file,
		span:    span,
	}
}

func errNotPayload(file, schema, payload string, span syntax.Span) *Error {
	return &Error{
		code: 4004,
		message: fmt.Sprintf(
			"Type '%s' linked to schema '%s' is not marked '//capgen:data'",
			payload, schema,
		),
		file: file,
		span: span,
	}
}

func errDuplicateDirective(file string, kind syntax.DirectiveKind, name string, span syntax.Span) *Error {
	return &Error{
		code:    3018,
		message: fmt.Sprintf("Directive '%s' appears more than once on '%s'", kind, name),
		file:    file,
		span:    span,
	}
}

func errReservedFieldName(file, decl, field string, span syntax.Span) *Error {
	return &Error{
		code:    3019,
		message: fmt.Sprintf("Field name '%s' of '%s' is reserved by generated code", field, decl),
		file:    file,
		span:    span,
	}
}
