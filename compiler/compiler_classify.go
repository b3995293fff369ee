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
	"go/types"
	"strings"

	"go.capgen.dev/capgen"
	"go.capgen.dev/capgen/schema"
	"go.capgen.dev/capgen/syntax"
)

const (
	flagMut    = "mut"
	flagSigner = "signer"
)

// classifyField decides whether a declared field is a direct address or a
// nested schema, and parses its flags. Classification follows the import
// path of the field's type, not its spelling.
func (c *compiler) classifyField(file *syntax.File, f *syntax.Field) (*schema.Field, bool) {
	typ := f.Type
	field := &schema.Field{Name: f.Name}
	switch {
	case typ.Name == "":
		c.err(errUnsupportedFieldType(file.Name, f.Name, typ.Text, typ.Span()))
		return nil, false
	case typ.Package != "":
		if typ.ImportPath == "" {
			c.err(errUnsupportedFieldType(file.Name, f.Name, typ.Text, typ.Span()))
			return nil, false
		}
		if typ.ImportPath == capgen.ImportPath {
			if typ.Name != "Address" {
				c.err(errUnsupportedFieldType(file.Name, f.Name, typ.Text, typ.Span()))
				return nil, false
			}
			field.Kind = schema.FieldKind_ADDRESS
		} else {
			field.Kind = schema.FieldKind_NESTED
			field.Ref = schema.TypeRef{ImportPath: typ.ImportPath, Name: typ.Name}
		}
	default:
		if types.Universe.Lookup(typ.Name) != nil {
			c.err(errUnsupportedFieldType(file.Name, f.Name, typ.Text, typ.Span()))
			return nil, false
		}
		field.Kind = schema.FieldKind_NESTED
		field.Ref = schema.TypeRef{Name: typ.Name}
	}

	mut, signer, ok := c.parseFlags(file, f)
	if !ok {
		return nil, false
	}
	if field.Kind == schema.FieldKind_NESTED && (mut || signer) {
		c.err(errFlagsOnNestedField(file.Name, f.Name, f.TagSpan()))
		return nil, false
	}
	field.Mut = mut
	field.Signer = signer
	return field, true
}

func (c *compiler) parseFlags(file *syntax.File, f *syntax.Field) (mut, signer, ok bool) {
	ok = true
	if !f.HasTag {
		return
	}
	for _, token := range strings.Split(f.Tag, ",") {
		switch token = strings.TrimSpace(token); token {
		case "":
		case flagMut:
			if mut {
				c.warn(warnDuplicateFlag(file.Name, f.Name, token, f.TagSpan()))
			}
			mut = true
		case flagSigner:
			if signer {
				c.warn(warnDuplicateFlag(file.Name, f.Name, token, f.TagSpan()))
			}
			signer = true
		default:
			c.err(errUnknownFlag(file.Name, f.Name, token, f.TagSpan()))
			ok = false
		}
	}
	return
}
