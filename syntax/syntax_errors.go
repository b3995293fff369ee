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

package syntax

import (
	"fmt"
)

type Error struct {
	code    uint32
	message string
	file    string
	span    Span
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

func (err *Error) Span() Span {
	return err.span
}

func errGoSyntax(file string, offset int, msg string) error {
	return &Error{
		code:    1000,
		message: fmt.Sprintf("Invalid Go source: %s", msg),
		file:    file,
		span:    Span{uint32(offset), 1},
	}
}

func errUnknownDirective(file, name string, span Span) error {
	return &Error{
		code: 1001,
		message: fmt.Sprintf(
			"Unknown directive '//capgen:%s' (expected one of %s)",
			name, directiveNames,
		),
		file: file,
		span: span,
	}
}

func errInvalidStructTag(file, field string, span Span) error {
	return &Error{
		code:    1002,
		message: fmt.Sprintf("Field '%s' has a malformed struct tag", field),
		file:    file,
		span:    span,
	}
}

func errSourceTooLong(file string, srcLen int) error {
	return &Error{
		code: 1003,
		message: fmt.Sprintf(
			"Source file size (%d bytes) exceeds maximum (%d bytes)",
			srcLen, maxSrcLen,
		),
		file: file,
		span: Span{0, 0},
	}
}
