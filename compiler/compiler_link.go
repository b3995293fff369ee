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
	"strings"

	"go.capgen.dev/capgen"
	"go.capgen.dev/capgen/schema"
	"go.capgen.dev/capgen/syntax"
)

func (c *compiler) isLocal(ref schema.TypeRef) bool {
	return ref.ImportPath == "" || ref.ImportPath == c.opts.importPath
}

func (c *compiler) linkSchema(info *declInfo) {
	decl := info.decl
	file := decl.File().Name
	errCount := len(c.errors)

	switch target := c.decls[info.data]; {
	case target == nil:
		if _, _, exists := c.pkg.TypeSpan(info.data); exists {
			c.err(errNotPayload(file, decl.Name, info.data, info.dataSpan))
		} else {
			c.err(errPayloadNotFound(file, decl.Name, info.data, info.dataSpan))
		}
	case target.type_ != declType_PAYLOAD:
		c.err(errNotPayload(file, decl.Name, info.data, info.dataSpan))
	default:
		target.linked = true
	}

	for _, field := range info.schema.Fields {
		if field.Kind != schema.FieldKind_NESTED {
			continue
		}
		typ := info.fields[field.Name].Type
		if !c.isLocal(field.Ref) {
			var dep *schema.Set
			if c.opts.deps != nil {
				dep = c.opts.deps.Set(field.Ref.ImportPath)
			}
			if dep == nil || dep.Schema(field.Ref.Name) == nil {
				c.err(errNestedNotFound(file, field.Name, typ.Text, typ.Span()))
			}
			continue
		}
		field.Ref.ImportPath = ""
		switch target := c.decls[field.Ref.Name]; {
		case target == nil:
			if _, _, exists := c.pkg.TypeSpan(field.Ref.Name); exists {
				c.err(errNestedNotSchema(file, field.Name, typ.Text, typ.Span()))
			} else {
				c.err(errNestedNotFound(file, field.Name, typ.Text, typ.Span()))
			}
		case target.type_ != declType_SCHEMA:
			c.err(errNestedNotSchema(file, field.Name, typ.Text, typ.Span()))
		}
	}

	if len(c.errors) > errCount {
		return
	}
	info.schema.Payload = info.data
}

// checkCycles rejects local schemas that nest themselves, directly or
// through other schemas. Cross-package cycles cannot occur because Go
// forbids import cycles.
func (c *compiler) checkCycles() {
	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int)
	var stack []string

	var visit func(info *declInfo)
	visit = func(info *declInfo) {
		color[info.decl.Name] = grey
		for _, field := range info.schema.Fields {
			if field.Kind != schema.FieldKind_NESTED || !c.isLocal(field.Ref) {
				continue
			}
			target := c.decls[field.Ref.Name]
			if target == nil || target.schema == nil {
				continue
			}
			stack = append(stack, info.decl.Name+"."+field.Name)
			switch color[target.decl.Name] {
			case white:
				visit(target)
			case grey:
				c.err(errNestedCycle(
					info.decl.File().Name,
					target.decl.Name,
					cyclePath(stack, target.decl.Name),
					info.fields[field.Name].Type.Span(),
				))
			}
			stack = stack[:len(stack)-1]
		}
		color[info.decl.Name] = black
	}

	for _, info := range c.order {
		if info.type_ == declType_SCHEMA && info.schema != nil && color[info.decl.Name] == white {
			visit(info)
		}
	}
}

func cyclePath(stack []string, start string) string {
	for ii, step := range stack {
		if strings.HasPrefix(step, start+".") {
			return strings.Join(stack[ii:], " -> ")
		}
	}
	return strings.Join(stack, " -> ")
}

func (c *compiler) checkPayloads() {
	seen := make(map[capgen.TypeTag]string)
	for _, info := range c.order {
		if info.type_ != declType_PAYLOAD || info.payload == nil {
			continue
		}
		decl := info.decl
		file := decl.File().Name
		if prev, dup := seen[info.payload.Tag]; dup {
			span := decl.NameSpan()
			for directive := range decl.DirectivesOf(syntax.DirectiveKind_TAG) {
				span = directive.ArgsSpan()
			}
			c.warn(warnDuplicateTypeTag(file, decl.Name, prev, info.payload.Tag, span))
		} else {
			seen[info.payload.Tag] = decl.Name
		}
		if !info.linked {
			c.warn(warnUnlinkedPayload(file, decl.Name, decl.NameSpan()))
		}
	}
}
