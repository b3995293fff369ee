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

type Warning struct {
	code    uint32
	message string
	file    string
	span    syntax.Span
}

func (w *Warning) String() string {
	return fmt.Sprintf("W%d: %s", w.code, w.message)
}

func (w *Warning) Code() uint32 {
	return w.code
}

func (w *Warning) Message() string {
	return w.message
}

func (w *Warning) File() string {
	return w.file
}

func (w *Warning) Span() syntax.Span {
	return w.span
}

func warnDuplicateFlag(file, field, token string, span syntax.Span) *Warning {
	return &Warning{
		code:    5000,
		message: fmt.Sprintf("Duplicate flag %q on field '%s'", token, field),
		file:    file,
		span:    span,
	}
}

func warnDuplicateTypeTag(file, name, prev string, tag capgen.TypeTag, span syntax.Span) *Warning {
	return &Warning{
		code: 5001,
		message: fmt.Sprintf(
			"Payload '%s' has the same type tag %v as payload '%s'",
			name, tag, prev,
		),
		file: file,
		span: span,
	}
}

func warnUnlinkedPayload(file, name string, span syntax.Span) *Warning {
	return &Warning{
		code:    5002,
		message: fmt.Sprintf("Payload '%s' is not linked to any schema", name),
		file:    file,
		span:    span,
	}
}
