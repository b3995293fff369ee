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

// Package syntax extracts capability schema and payload declarations from
// Go source files.
//
// Declarations are ordinary Go type declarations whose doc comment carries
// one or more directives:
//
//	//capgen:accounts [data=Name]
//	//capgen:owner ProgramID
//	type DepositAccounts struct {
//		State    capgen.Address `capgen:"mut"`
//		Transfer capgen.Address `capgen:"mut,signer"`
//	}
//
//	//capgen:data
//	//capgen:tag [242, 35, 198, 137, 82, 225, 242, 182]
//	type DepositData struct {
//		Lamports uint64
//	}
package syntax

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"iter"
	"math"
	"path"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

const maxSrcLen = math.MaxUint32

const (
	directivePrefix = "//capgen:"
	structTagKey    = "capgen"
)

type DirectiveKind uint8

const (
	DirectiveKind_UNKNOWN DirectiveKind = iota
	DirectiveKind_ACCOUNTS
	DirectiveKind_OWNER
	DirectiveKind_DATA
	DirectiveKind_TAG
)

var directiveKinds = map[string]DirectiveKind{
	"accounts": DirectiveKind_ACCOUNTS,
	"owner":    DirectiveKind_OWNER,
	"data":     DirectiveKind_DATA,
	"tag":      DirectiveKind_TAG,
}

const directiveNames = "'accounts', 'owner', 'data', 'tag'"

func (k DirectiveKind) String() string {
	for name, kind := range directiveKinds {
		if kind == k {
			return directivePrefix + name
		}
	}
	return "DirectiveKind(" + strconv.Itoa(int(k)) + ")"
}

type Directive struct {
	Kind DirectiveKind
	Args string

	span     Span
	argsSpan Span
}

func (d *Directive) Span() Span {
	return d.span
}

func (d *Directive) ArgsSpan() Span {
	return d.argsSpan
}

// A TypeExpr is the declared type of a field. Name is empty unless the
// type is a named type, optionally qualified by an imported package.
type TypeExpr struct {
	Package    string
	ImportPath string
	Name       string
	Text       string

	span Span
}

func (t *TypeExpr) Span() Span {
	return t.span
}

type Field struct {
	Name     string
	Embedded bool
	Type     *TypeExpr

	// Tag is the value of the field's `capgen:"..."` struct tag.
	Tag    string
	HasTag bool

	span    Span
	tagSpan Span
}

func (f *Field) Span() Span {
	return f.span
}

// TagSpan is the span of the field's struct tag literal, or of the field
// name when there is no tag.
func (f *Field) TagSpan() Span {
	if f.HasTag {
		return f.tagSpan
	}
	return f.span
}

type Decl struct {
	Name       string
	IsStruct   bool
	Directives []*Directive
	Fields     []*Field

	file     *File
	span     Span
	nameSpan Span
}

func (d *Decl) File() *File {
	return d.file
}

func (d *Decl) Span() Span {
	return d.span
}

func (d *Decl) NameSpan() Span {
	return d.nameSpan
}

// DirectivesOf iterates the decl's directives of one kind.
func (d *Decl) DirectivesOf(kind DirectiveKind) iter.Seq[*Directive] {
	return func(yield func(*Directive) bool) {
		for _, directive := range d.Directives {
			if directive.Kind == kind && !yield(directive) {
				return
			}
		}
	}
}

type File struct {
	Name    string
	Package string

	// Imports maps the local name of each import to its path.
	Imports map[string]string

	Decls []*Decl

	typeNames map[string]Span
}

// TypeSpan returns the name span of any type declared in the file,
// including types without directives.
func (f *File) TypeSpan(name string) (Span, bool) {
	span, ok := f.typeNames[name]
	return span, ok
}

func ParseFile(name string, src []byte) (*File, error) {
	if uint64(len(src)) > maxSrcLen {
		return nil, errSourceTooLong(name, len(src))
	}

	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, name, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			return nil, errGoSyntax(name, list[0].Pos.Offset, list[0].Msg)
		}
		return nil, errGoSyntax(name, 0, err.Error())
	}

	p := fileParser{
		fset: fset,
		src:  src,
		file: &File{
			Name:      name,
			Package:   astFile.Name.Name,
			Imports:   make(map[string]string),
			typeNames: make(map[string]Span),
		},
	}
	for _, imp := range astFile.Imports {
		p.addImport(imp)
	}
	for _, decl := range astFile.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}
			if err := p.typeDecl(typeSpec, doc); err != nil {
				return nil, err
			}
		}
	}
	return p.file, nil
}

type fileParser struct {
	fset *token.FileSet
	src  []byte
	file *File
}

func (p *fileParser) offset(pos token.Pos) uint32 {
	return uint32(p.fset.Position(pos).Offset)
}

func (p *fileParser) span(node ast.Node) Span {
	start := p.offset(node.Pos())
	return Span{start, p.offset(node.End()) - start}
}

var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

func (p *fileParser) addImport(imp *ast.ImportSpec) {
	importPath, err := strconv.Unquote(imp.Path.Value)
	if err != nil {
		return
	}
	var name string
	if imp.Name != nil {
		name = imp.Name.Name
	} else {
		name = path.Base(importPath)
		if majorVersion.MatchString(name) {
			name = path.Base(path.Dir(importPath))
		}
		name = strings.ReplaceAll(name, "-", "_")
	}
	if name == "_" || name == "." {
		return
	}
	p.file.Imports[name] = importPath
}

func (p *fileParser) typeDecl(spec *ast.TypeSpec, doc *ast.CommentGroup) error {
	p.file.typeNames[spec.Name.Name] = p.span(spec.Name)

	directives, err := p.directives(doc)
	if err != nil {
		return err
	}
	if len(directives) == 0 {
		return nil
	}

	decl := &Decl{
		Name:       spec.Name.Name,
		Directives: directives,
		file:       p.file,
		span:       p.span(spec),
		nameSpan:   p.span(spec.Name),
	}
	structType, isStruct := spec.Type.(*ast.StructType)
	decl.IsStruct = isStruct && !spec.Assign.IsValid() && spec.TypeParams == nil
	if decl.IsStruct {
		for _, astField := range structType.Fields.List {
			fields, err := p.fields(astField)
			if err != nil {
				return err
			}
			decl.Fields = append(decl.Fields, fields...)
		}
	}
	p.file.Decls = append(p.file.Decls, decl)
	return nil
}

func (p *fileParser) directives(doc *ast.CommentGroup) ([]*Directive, error) {
	if doc == nil {
		return nil, nil
	}
	var out []*Directive
	for _, comment := range doc.List {
		if !strings.HasPrefix(comment.Text, directivePrefix) {
			continue
		}
		start := p.offset(comment.Pos())
		body := comment.Text[len(directivePrefix):]
		name, args := body, ""
		if idx := strings.IndexAny(body, " \t"); idx >= 0 {
			name, args = body[:idx], body[idx:]
		}
		kind, ok := directiveKinds[name]
		if !ok {
			return nil, errUnknownDirective(
				p.file.Name,
				name,
				Span{start, uint32(len(comment.Text))},
			)
		}

		argsStart := uint32(len(comment.Text))
		if trimmed := strings.TrimSpace(args); trimmed != "" {
			lead := len(args) - len(strings.TrimLeft(args, " \t"))
			argsStart = uint32(len(directivePrefix) + len(name) + lead)
			args = trimmed
		} else {
			args = ""
		}
		out = append(out, &Directive{
			Kind:     kind,
			Args:     args,
			span:     Span{start, uint32(len(comment.Text))},
			argsSpan: Span{start + argsStart, uint32(len(args))},
		})
	}
	return out, nil
}

func (p *fileParser) fields(astField *ast.Field) ([]*Field, error) {
	typeExpr := p.typeExpr(astField.Type)

	var tag string
	var hasTag bool
	var tagSpan Span
	if astField.Tag != nil {
		tagSpan = p.span(astField.Tag)
		raw, err := strconv.Unquote(astField.Tag.Value)
		if err != nil {
			return nil, errInvalidStructTag(p.file.Name, fieldName(astField, typeExpr), tagSpan)
		}
		tag, hasTag = reflect.StructTag(raw).Lookup(structTagKey)
		if !hasTag && strings.Contains(raw, structTagKey+":") {
			return nil, errInvalidStructTag(p.file.Name, fieldName(astField, typeExpr), tagSpan)
		}
	}

	if len(astField.Names) == 0 {
		return []*Field{{
			Name:     typeExpr.Name,
			Embedded: true,
			Type:     typeExpr,
			Tag:      tag,
			HasTag:   hasTag,
			span:     typeExpr.span,
			tagSpan:  tagSpan,
		}}, nil
	}

	out := make([]*Field, 0, len(astField.Names))
	for _, name := range astField.Names {
		out = append(out, &Field{
			Name:    name.Name,
			Type:    typeExpr,
			Tag:     tag,
			HasTag:  hasTag,
			span:    p.span(name),
			tagSpan: tagSpan,
		})
	}
	return out, nil
}

func fieldName(astField *ast.Field, typeExpr *TypeExpr) string {
	if len(astField.Names) > 0 {
		return astField.Names[0].Name
	}
	return typeExpr.Text
}

func (p *fileParser) typeExpr(expr ast.Expr) *TypeExpr {
	span := p.span(expr)
	out := &TypeExpr{
		Text: string(p.src[span.Start():span.End()]),
		span: span,
	}
	switch expr := expr.(type) {
	case *ast.Ident:
		out.Name = expr.Name
	case *ast.SelectorExpr:
		if pkg, ok := expr.X.(*ast.Ident); ok {
			out.Package = pkg.Name
			out.ImportPath = p.file.Imports[pkg.Name]
			out.Name = expr.Sel.Name
		}
	}
	return out
}
