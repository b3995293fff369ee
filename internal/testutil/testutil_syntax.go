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

package testutil

import (
	"encoding/json"

	"go.capgen.dev/capgen/syntax"
)

type spanJSON struct {
	Start uint32 `json:"start"`
	Len   uint32 `json:"len"`
}

func dumpSpan(span syntax.Span) spanJSON {
	return spanJSON{Start: span.Start(), Len: span.Len()}
}

type fileJSON struct {
	Package string            `json:"package"`
	Imports map[string]string `json:"imports"`
	Decls   []declJSON        `json:"decls"`
}

type declJSON struct {
	Name       string          `json:"name"`
	Struct     bool            `json:"struct"`
	Span       spanJSON        `json:"span"`
	NameSpan   spanJSON        `json:"name_span"`
	Directives []directiveJSON `json:"directives"`
	Fields     []fieldJSON     `json:"fields"`
}

type directiveJSON struct {
	Kind     string   `json:"kind"`
	Args     string   `json:"args"`
	Span     spanJSON `json:"span"`
	ArgsSpan spanJSON `json:"args_span"`
}

type typeJSON struct {
	Package    string   `json:"package"`
	ImportPath string   `json:"import_path"`
	Name       string   `json:"name"`
	Text       string   `json:"text"`
	Span       spanJSON `json:"span"`
}

type fieldJSON struct {
	Name     string   `json:"name"`
	Embedded bool     `json:"embedded"`
	Type     typeJSON `json:"type"`
	Tag      string   `json:"tag"`
	HasTag   bool     `json:"has_tag"`
	Span     spanJSON `json:"span"`
	TagSpan  spanJSON `json:"tag_span"`
}

// DumpJSON renders a parsed file, with the span of every node, for
// comparison against golden files.
func DumpJSON(file *syntax.File) []byte {
	out := fileJSON{
		Package: file.Package,
		Imports: file.Imports,
		Decls:   []declJSON{},
	}
	for _, decl := range file.Decls {
		d := declJSON{
			Name:       decl.Name,
			Struct:     decl.IsStruct,
			Span:       dumpSpan(decl.Span()),
			NameSpan:   dumpSpan(decl.NameSpan()),
			Directives: []directiveJSON{},
			Fields:     []fieldJSON{},
		}
		for _, directive := range decl.Directives {
			d.Directives = append(d.Directives, directiveJSON{
				Kind:     directive.Kind.String(),
				Args:     directive.Args,
				Span:     dumpSpan(directive.Span()),
				ArgsSpan: dumpSpan(directive.ArgsSpan()),
			})
		}
		for _, field := range decl.Fields {
			d.Fields = append(d.Fields, fieldJSON{
				Name:     field.Name,
				Embedded: field.Embedded,
				Type: typeJSON{
					Package:    field.Type.Package,
					ImportPath: field.Type.ImportPath,
					Name:       field.Type.Name,
					Text:       field.Type.Text,
					Span:       dumpSpan(field.Type.Span()),
				},
				Tag:     field.Tag,
				HasTag:  field.HasTag,
				Span:    dumpSpan(field.Span()),
				TagSpan: dumpSpan(field.TagSpan()),
			})
		}
		out.Decls = append(out.Decls, d)
	}
	buf, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		panic(err)
	}
	return buf
}
