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

// Package codegen emits the Go adapters of a compiled schema set: payload
// type tags, bound aggregates, owner methods, bound-to-plain conversion,
// resource descriptor lists and resource handle lists.
package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"go.capgen.dev/capgen"
	"go.capgen.dev/capgen/schema"
)

// DefaultOutput is the file name generated code is written to.
const DefaultOutput = "capgen_gen.go"

const generatedMarker = "// Code generated by capgen. DO NOT EDIT."

var multiValues = jen.Options{
	Open:      "{",
	Close:     "}",
	Separator: ",",
	Multi:     true,
}

type Option interface {
	apply(*options)
}

type option func(*options)

func (f option) apply(opts *options) { f(opts) }

type options struct {
	assertions bool
}

// WithAssertions controls whether compile-time interface assertions are
// emitted for every generated type. Enabled by default.
func WithAssertions(enabled bool) Option {
	return option(func(opts *options) {
		opts.assertions = enabled
	})
}

// Generate renders the adapters of every schema and payload in set as one
// formatted Go file. Output is identical for identical sets.
func Generate(set *schema.Set, opts ...Option) ([]byte, error) {
	genOpts := &options{assertions: true}
	for _, opt := range opts {
		opt.apply(genOpts)
	}

	g := &generator{
		set:  set,
		opts: genOpts,
		file: jen.NewFilePathName(set.ImportPath, set.Package),
	}
	g.file.ImportName(capgen.ImportPath, "capgen")
	if err := g.emitSet(); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := g.file.Render(&body); err != nil {
		return nil, fmt.Errorf("codegen: render %s: %w", set.Package, err)
	}
	return withHeader(body.Bytes()), nil
}

type generator struct {
	set  *schema.Set
	opts *options
	file *jen.File
}

func (g *generator) emitSet() error {
	for _, payload := range g.set.Payloads {
		g.emitPayload(payload)
	}
	for _, s := range g.set.Schemas {
		if err := g.emitSchema(s); err != nil {
			return err
		}
	}
	return nil
}

func qual(name string) *jen.Statement {
	return jen.Qual(capgen.ImportPath, name)
}

func byteLits(buf []byte) []jen.Code {
	out := make([]jen.Code, 0, len(buf))
	for _, b := range buf {
		out = append(out, jen.Lit(int(b)))
	}
	return out
}

func (g *generator) emitPayload(payload *schema.Payload) {
	f := g.file
	f.Func().Params(jen.Id(payload.Name)).Id("TypeTag").Params().Add(qual("TypeTag")).Block(
		jen.Return(qual("TypeTag").Values(byteLits(payload.Tag[:])...)),
	)
	f.Line()
	if g.opts.assertions {
		f.Var().Id("_").Add(qual("Payload")).Op("=").Id(payload.Name).Values()
		f.Line()
	}
}

func (g *generator) ownerExpr(owner schema.Owner) (jen.Code, error) {
	switch owner.Kind {
	case schema.OwnerKind_IDENT:
		if owner.Ident.ImportPath == "" || owner.Ident.ImportPath == g.set.ImportPath {
			return jen.Id(owner.Ident.Name), nil
		}
		return jen.Qual(owner.Ident.ImportPath, owner.Ident.Name), nil
	case schema.OwnerKind_LITERAL:
		return qual("Address").Values(byteLits(owner.Address[:])...), nil
	default:
		return nil, fmt.Errorf("codegen: unknown owner kind %d", owner.Kind)
	}
}

// boundType returns the bound aggregate type of a nested field.
func (g *generator) boundType(ref schema.TypeRef) *jen.Statement {
	bound := strings.TrimSuffix(ref.Name, capgen.SchemaSuffix) + capgen.BoundSuffix
	if ref.ImportPath == "" || ref.ImportPath == g.set.ImportPath {
		return jen.Id(bound)
	}
	return jen.Qual(ref.ImportPath, bound)
}

func (g *generator) emitSchema(s *schema.Schema) error {
	payload, err := g.set.Link(s.Name)
	if err != nil {
		return fmt.Errorf("codegen: %w", err)
	}
	owner, err := g.ownerExpr(s.Owner)
	if err != nil {
		return err
	}
	for _, field := range s.Fields {
		if field.Kind == schema.FieldKind_NESTED {
			if nested, _ := g.set.Resolve(nil, field.Ref); nested == nil && isLocalRef(g.set, field.Ref) {
				return fmt.Errorf("codegen: %s.%s: schema %s not found", s.Name, field.Name, field.Ref)
			}
		}
	}

	f := g.file
	bound := s.BoundName()

	f.Commentf("%s is %s bound to live resource handles.", bound, s.Name)
	f.Type().Id(bound).StructFunc(func(grp *jen.Group) {
		for _, field := range s.Fields {
			switch field.Kind {
			case schema.FieldKind_ADDRESS:
				grp.Id(field.Name).Op("*").Add(qual("ResourceHandle"))
			case schema.FieldKind_NESTED:
				grp.Id(field.Name).Add(g.boundType(field.Ref))
			}
		}
	})
	f.Line()

	for _, recv := range []string{s.Name, bound} {
		f.Func().Params(jen.Id(recv)).Id("Owner").Params().Add(qual("Address")).Block(
			jen.Return(owner),
		)
		f.Line()
	}

	g.emitAccounts(s)
	g.emitDescriptors(s)
	g.emitHandles(s)

	for _, recv := range []string{s.Name, bound} {
		f.Func().Params(jen.Id(recv)).Id("LinkedPayload").Params(jen.Id(payload.Name)).Block()
		f.Line()
	}

	if g.opts.assertions {
		f.Var().Defs(
			jen.Id("_").Add(qual("Accounts")).Types(jen.Id(payload.Name)).Op("=").Id(s.Name).Values(),
			jen.Id("_").Add(qual("Bound")).Types(jen.Id(payload.Name)).Op("=").Id(bound).Values(),
		)
		f.Line()
	}
	return nil
}

func isLocalRef(set *schema.Set, ref schema.TypeRef) bool {
	return ref.ImportPath == "" || ref.ImportPath == set.ImportPath
}

// emitAccounts converts a bound aggregate to its plain schema. The reverse
// direction is not generated.
func (g *generator) emitAccounts(s *schema.Schema) {
	var items []jen.Code
	for _, field := range s.Fields {
		value := jen.Id("b").Dot(field.Name)
		switch field.Kind {
		case schema.FieldKind_ADDRESS:
			value = value.Dot("Key")
		case schema.FieldKind_NESTED:
			value = value.Dot("Accounts").Call()
		}
		items = append(items, jen.Id(field.Name).Op(":").Add(value))
	}
	var lit *jen.Statement
	if len(items) == 0 {
		lit = jen.Id(s.Name).Values()
	} else {
		lit = jen.Id(s.Name).Custom(multiValues, items...)
	}
	g.file.Func().Params(jen.Id("b").Id(s.BoundName())).Id("Accounts").Params().Id(s.Name).Block(
		jen.Return(lit),
	)
	g.file.Line()
}

// emitDescriptors lists every address field in declaration order, followed
// by the descriptors of every nested field in declaration order.
func (g *generator) emitDescriptors(s *schema.Schema) {
	listType := jen.Index().Add(qual("ResourceDescriptor"))

	var direct []jen.Code
	var nested []string
	for _, field := range s.Fields {
		switch field.Kind {
		case schema.FieldKind_ADDRESS:
			ctor := "ReadOnly"
			if field.Mut {
				ctor = "Writable"
			}
			direct = append(direct, qual(ctor).Call(
				jen.Id("a").Dot(field.Name),
				jen.Lit(field.Signer),
			))
		case schema.FieldKind_NESTED:
			nested = append(nested, field.Name)
		}
	}

	g.file.Func().Params(jen.Id("a").Id(s.Name)).Id("ResourceDescriptors").Params().Add(listType).BlockFunc(func(grp *jen.Group) {
		g.emitList(grp, listType, direct, nested, "ResourceDescriptors", "a")
	})
	g.file.Line()

	g.file.Func().Params(jen.Id("b").Id(s.BoundName())).Id("ResourceDescriptors").Params().Add(listType.Clone()).Block(
		jen.Return(jen.Id("b").Dot("Accounts").Call().Dot("ResourceDescriptors").Call()),
	)
	g.file.Line()
}

// emitHandles lists handles in the same order as emitDescriptors.
func (g *generator) emitHandles(s *schema.Schema) {
	listType := jen.Index().Op("*").Add(qual("ResourceHandle"))

	var direct []jen.Code
	var nested []string
	for _, field := range s.Fields {
		switch field.Kind {
		case schema.FieldKind_ADDRESS:
			direct = append(direct, jen.Id("b").Dot(field.Name))
		case schema.FieldKind_NESTED:
			nested = append(nested, field.Name)
		}
	}

	g.file.Func().Params(jen.Id("b").Id(s.BoundName())).Id("ResourceHandles").Params().Add(listType).BlockFunc(func(grp *jen.Group) {
		g.emitList(grp, listType, direct, nested, "ResourceHandles", "b")
	})
	g.file.Line()
}

func (g *generator) emitList(
	grp *jen.Group,
	listType *jen.Statement,
	direct []jen.Code,
	nested []string,
	method string,
	recv string,
) {
	var lit *jen.Statement
	if len(direct) == 0 {
		lit = listType.Clone().Values()
	} else {
		lit = listType.Clone().Custom(multiValues, direct...)
	}
	if len(nested) == 0 {
		grp.Return(lit)
		return
	}
	grp.Id("out").Op(":=").Add(lit)
	for _, name := range nested {
		grp.Id("out").Op("=").Append(
			jen.Id("out"),
			jen.Id(recv).Dot(name).Dot(method).Call().Op("..."),
		)
	}
	grp.Return(jen.Id("out"))
}
