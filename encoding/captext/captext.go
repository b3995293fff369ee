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

// Package captext renders compiled schema sets as indented text, including
// the flattened descriptor layout of every schema.
package captext

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.capgen.dev/capgen/schema"
)

func Encode(set *schema.Set) string {
	var buf strings.Builder
	EncodeTo(set, &buf)
	return buf.String()
}

func EncodeTo(set *schema.Set, w io.Writer) error {
	e := encoder{w: w}
	e.visitSet(set)
	return e.err
}

type encoder struct {
	w      io.Writer
	indent int
	err    error
}

func (e *encoder) line(s string) {
	if e.err != nil {
		return
	}
	if indent := strings.Repeat("\t", e.indent); indent != "" {
		if _, err := io.WriteString(e.w, indent); err != nil {
			e.err = err
			return
		}
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = err
		return
	}
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		e.err = err
		return
	}
}

func (e *encoder) linef(format string, a ...any) {
	e.line(fmt.Sprintf(format, a...))
}

func (e *encoder) visitSet(set *schema.Set) {
	e.linef("package = %s", quote(set.Package))
	if set.ImportPath != "" {
		e.linef("import_path = %s", quote(set.ImportPath))
	}
	for _, payload := range set.Payloads {
		e.visitPayload(payload)
	}
	for _, s := range set.Schemas {
		e.visitSchema(set, s)
	}
}

func (e *encoder) visitPayload(payload *schema.Payload) {
	e.linef("payload %s {", payload.Name)
	e.indent += 1
	var tag strings.Builder
	for ii, b := range payload.Tag {
		if ii != 0 {
			tag.WriteString(", ")
		}
		fmt.Fprintf(&tag, "0x%02X", b)
	}
	e.linef("tag = [%s]", tag.String())
	for _, arg := range payload.Args {
		e.linef("arg %s = %s", arg.Name, arg.Type)
	}
	e.indent -= 1
	e.line("}")
}

func (e *encoder) visitSchema(set *schema.Set, s *schema.Schema) {
	e.linef("schema %s {", s.Name)
	e.indent += 1
	e.linef("bound = %s", s.BoundName())
	e.linef("owner = %s", s.Owner)
	e.linef("payload = %s", s.Payload)
	for _, field := range s.Fields {
		switch field.Kind {
		case schema.FieldKind_ADDRESS:
			e.linef("field %s = address%s", field.Name, fmtFlags(field))
		case schema.FieldKind_NESTED:
			e.linef("field %s = nested %s", field.Name, field.Ref)
		}
	}

	slots, err := set.Layout(s.Name)
	if err != nil {
		e.linef("layout = error(%s)", quote(err.Error()))
	} else {
		e.line("layout = [")
		e.indent += 1
		for _, slot := range slots {
			e.line(slot.String())
		}
		e.indent -= 1
		e.line("]")
	}
	e.indent -= 1
	e.line("}")
}

func fmtFlags(field *schema.Field) string {
	var flags []string
	if field.Mut {
		flags = append(flags, "mut")
	}
	if field.Signer {
		flags = append(flags, "signer")
	}
	if len(flags) == 0 {
		return ""
	}
	return " [" + strings.Join(flags, ", ") + "]"
}

func quote(s string) string {
	return strconv.Quote(s)
}
