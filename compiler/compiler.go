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

// Package compiler validates and links capability schema declarations
// into a [schema.Set].
package compiler

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"go.capgen.dev/capgen"
	"go.capgen.dev/capgen/schema"
	"go.capgen.dev/capgen/syntax"
)

type declType uint8

const (
	declType_UNKNOWN declType = iota
	declType_SCHEMA
	declType_PAYLOAD
)

type CompileOption interface {
	apply(*CompileOptions)
}

type compileOption func(*CompileOptions)

func (f compileOption) apply(opts *CompileOptions) { f(opts) }

type CompileOptions struct {
	deps       *Dependencies
	importPath string
}

func WithDependencies(dependencies *Dependencies) CompileOption {
	return compileOption(func(opts *CompileOptions) {
		opts.deps = dependencies
	})
}

// WithImportPath sets the import path of the package being compiled, so
// that sets compiled later can depend on it.
func WithImportPath(importPath string) CompileOption {
	return compileOption(func(opts *CompileOptions) {
		opts.importPath = importPath
	})
}

type CompileResult struct {
	set *schema.Set

	Errors   []*Error
	Warnings []*Warning
}

// Set returns the compiled set, or nil if compilation failed.
func (r *CompileResult) Set() *schema.Set {
	return r.set
}

// Err returns all compile errors as one error, or nil.
func (r *CompileResult) Err() error {
	var merr *multierror.Error
	for _, err := range r.Errors {
		merr = multierror.Append(merr, err)
	}
	return merr.ErrorOrNil()
}

func Compile(pkg *syntax.Package, opts ...CompileOption) CompileResult {
	return NewCompileOptions(opts...).Compile(pkg)
}

func NewCompileOptions(opts ...CompileOption) *CompileOptions {
	compileOptions := &CompileOptions{}
	for _, opt := range opts {
		opt.apply(compileOptions)
	}
	return compileOptions
}

func (opts *CompileOptions) Compile(pkg *syntax.Package) CompileResult {
	c := compiler{
		opts:  opts,
		pkg:   pkg,
		decls: make(map[string]*declInfo),
	}
	c.compilePackage()

	sortDiagnostics(c.errors)
	sortDiagnostics(c.warnings)
	if len(c.errors) > 0 {
		return CompileResult{
			Errors:   c.errors,
			Warnings: c.warnings,
		}
	}
	return CompileResult{
		set:      c.buildSet(),
		Warnings: c.warnings,
	}
}

type declInfo struct {
	type_ declType
	decl  *syntax.Decl

	schema  *schema.Schema
	payload *schema.Payload

	data     string
	dataSpan syntax.Span
	fields   map[string]*syntax.Field
	linked   bool
}

type compiler struct {
	opts  *CompileOptions
	pkg   *syntax.Package
	decls map[string]*declInfo
	order []*declInfo

	errors   []*Error
	warnings []*Warning
}

func (c *compiler) err(err *Error) {
	c.errors = append(c.errors, err)
}

func (c *compiler) warn(warn *Warning) {
	c.warnings = append(c.warnings, warn)
}

func (c *compiler) compilePackage() {
	c.registerDecls()
	for _, info := range c.order {
		switch info.type_ {
		case declType_PAYLOAD:
			c.compilePayload(info)
		case declType_SCHEMA:
			c.compileSchema(info)
		}
	}
	for _, info := range c.order {
		if info.type_ == declType_SCHEMA && info.schema != nil {
			c.linkSchema(info)
		}
	}
	c.checkCycles()
	c.checkPayloads()
}

func (c *compiler) registerDecls() {
	for decl := range c.pkg.Decls() {
		file := decl.File().Name
		info := &declInfo{decl: decl}

		var hasAccounts, hasData bool
		for range decl.DirectivesOf(syntax.DirectiveKind_ACCOUNTS) {
			hasAccounts = true
		}
		for range decl.DirectivesOf(syntax.DirectiveKind_DATA) {
			hasData = true
		}
		switch {
		case hasAccounts && hasData:
			c.err(errConflictingDirectives(file, decl.Name, decl.NameSpan()))
			continue
		case hasAccounts:
			info.type_ = declType_SCHEMA
		case hasData:
			info.type_ = declType_PAYLOAD
		default:
			for _, directive := range decl.Directives {
				c.err(errMisplacedDirective(file, directive.Kind, decl.Name, directive.Span()))
			}
			continue
		}

		if !decl.IsStruct {
			c.err(errNotStruct(file, decl.Name, decl.NameSpan()))
			continue
		}
		if _, conflict := c.decls[decl.Name]; conflict {
			c.err(errDuplicateDecl(file, decl.Name, decl.NameSpan()))
			continue
		}
		c.decls[decl.Name] = info
		c.order = append(c.order, info)
	}
}

func (c *compiler) compilePayload(info *declInfo) {
	decl := info.decl
	file := decl.File().Name
	errCount := len(c.errors)

	var tags []*syntax.Directive
	for ii, directive := range decl.Directives {
		switch directive.Kind {
		case syntax.DirectiveKind_DATA:
			if ii > 0 && hasKindBefore(decl.Directives[:ii], syntax.DirectiveKind_DATA) {
				c.err(errDuplicateDirective(file, directive.Kind, decl.Name, directive.Span()))
			}
		case syntax.DirectiveKind_TAG:
			tags = append(tags, directive)
		default:
			c.err(errMisplacedDirective(file, directive.Kind, decl.Name, directive.Span()))
		}
	}

	var tag capgen.TypeTag
	switch len(tags) {
	case 0:
		c.err(errMissingTag(file, decl.Name, decl.NameSpan()))
	case 1:
		var reason string
		if tag, reason = parseTypeTag(tags[0].Args); reason != "" {
			span := tags[0].ArgsSpan()
			if tags[0].Args == "" {
				span = tags[0].Span()
			}
			c.err(errInvalidTag(file, tags[0].Args, reason, span))
		}
	default:
		for _, directive := range tags[1:] {
			c.err(errDuplicateTag(file, decl.Name, directive.Span()))
		}
	}
	for _, field := range decl.Fields {
		if _, reserved := reservedPayloadFields[field.Name]; reserved {
			c.err(errReservedFieldName(file, decl.Name, field.Name, field.Span()))
		}
	}
	if len(c.errors) > errCount {
		return
	}

	payload := &schema.Payload{
		Name: decl.Name,
		Tag:  tag,
	}
	for _, field := range decl.Fields {
		payload.Args = append(payload.Args, &schema.Arg{
			Name: field.Name,
			Type: field.Type.Text,
		})
	}
	info.payload = payload
}

// Field names that would collide with methods or accessors in generated code.
var (
	reservedPayloadFields = map[string]struct{}{
		"TypeTag": {},
	}
	reservedSchemaFields = map[string]struct{}{
		"_":                   {},
		"Owner":               {},
		"Accounts":            {},
		"ResourceDescriptors": {},
		"ResourceHandles":     {},
		"LinkedPayload":       {},
	}
)

func (c *compiler) compileSchema(info *declInfo) {
	decl := info.decl
	file := decl.File()
	errCount := len(c.errors)

	base, ok := BaseName(decl.Name)
	if !ok {
		c.err(errMissingSuffix(file.Name, decl.Name, decl.NameSpan()))
	}
	info.data = DataName(base)
	info.dataSpan = decl.NameSpan()

	var owners []*syntax.Directive
	for ii, directive := range decl.Directives {
		switch directive.Kind {
		case syntax.DirectiveKind_ACCOUNTS:
			if hasKindBefore(decl.Directives[:ii], syntax.DirectiveKind_ACCOUNTS) {
				c.err(errDuplicateDirective(file.Name, directive.Kind, decl.Name, directive.Span()))
				continue
			}
			data, ok := parseAccountsArgs(directive.Args)
			if !ok {
				c.err(errInvalidAccountsArg(file.Name, directive.Args, directive.ArgsSpan()))
			} else if data != "" {
				info.data = data
				info.dataSpan = directive.ArgsSpan()
			}
		case syntax.DirectiveKind_OWNER:
			owners = append(owners, directive)
		default:
			c.err(errMisplacedDirective(file.Name, directive.Kind, decl.Name, directive.Span()))
		}
	}

	var owner schema.Owner
	switch len(owners) {
	case 0:
		c.err(errMissingOwner(file.Name, decl.Name, decl.NameSpan()))
	case 1:
		owner, ok = c.parseOwner(file, owners[0])
	default:
		for _, directive := range owners[1:] {
			c.err(errDuplicateOwner(file.Name, decl.Name, directive.Span()))
		}
	}

	out := &schema.Schema{
		Name:  decl.Name,
		Owner: owner,
	}
	info.fields = make(map[string]*syntax.Field, len(decl.Fields))
	for _, f := range decl.Fields {
		if f.Embedded {
			c.err(errEmbeddedField(file.Name, decl.Name, f.Span()))
			continue
		}
		if _, reserved := reservedSchemaFields[f.Name]; reserved {
			c.err(errReservedFieldName(file.Name, decl.Name, f.Name, f.Span()))
			continue
		}
		if _, dup := info.fields[f.Name]; dup {
			c.err(errDuplicateField(file.Name, decl.Name, f.Name, f.Span()))
			continue
		}
		info.fields[f.Name] = f
		if field, ok := c.classifyField(file, f); ok {
			out.Fields = append(out.Fields, field)
		}
	}

	if base != "" {
		bound := BoundName(base)
		if _, _, conflict := c.pkg.TypeSpan(bound); conflict {
			c.err(errBoundNameConflict(file.Name, decl.Name, bound, decl.NameSpan()))
		}
	}

	if len(c.errors) > errCount {
		return
	}
	info.schema = out
}

func (c *compiler) parseOwner(file *syntax.File, directive *syntax.Directive) (schema.Owner, bool) {
	const expected = "expected an identifier or an address literal"

	text := directive.Args
	if text == "" {
		c.err(errInvalidOwner(file.Name, text, expected, directive.Span()))
		return schema.Owner{}, false
	}
	expr, err := parser.ParseExpr(text)
	if err != nil {
		c.err(errInvalidOwner(file.Name, text, expected, directive.ArgsSpan()))
		return schema.Owner{}, false
	}

	switch expr := expr.(type) {
	case *ast.Ident:
		return schema.Owner{
			Kind:  schema.OwnerKind_IDENT,
			Ident: schema.TypeRef{Name: expr.Name},
		}, true
	case *ast.SelectorExpr:
		pkg, ok := expr.X.(*ast.Ident)
		if !ok {
			break
		}
		importPath, ok := file.Imports[pkg.Name]
		if !ok {
			reason := fmt.Sprintf("package '%s' is not imported", pkg.Name)
			c.err(errInvalidOwner(file.Name, text, reason, directive.ArgsSpan()))
			return schema.Owner{}, false
		}
		return schema.Owner{
			Kind:  schema.OwnerKind_IDENT,
			Ident: schema.TypeRef{ImportPath: importPath, Name: expr.Sel.Name},
		}, true
	case *ast.BasicLit:
		if expr.Kind != token.STRING {
			break
		}
		value, _ := strconv.Unquote(expr.Value)
		addr, err := capgen.ParseAddress(value)
		if err != nil {
			c.err(errInvalidOwner(file.Name, text, "not a base58 address", directive.ArgsSpan()))
			return schema.Owner{}, false
		}
		return schema.Owner{
			Kind:    schema.OwnerKind_LITERAL,
			Address: addr,
		}, true
	}
	c.err(errInvalidOwner(file.Name, text, expected, directive.ArgsSpan()))
	return schema.Owner{}, false
}

func parseTypeTag(text string) (capgen.TypeTag, string) {
	var tag capgen.TypeTag
	inner, ok := strings.CutPrefix(text, "[")
	if ok {
		inner, ok = strings.CutSuffix(inner, "]")
	}
	if !ok {
		return tag, fmt.Sprintf("expected a bracketed list of %d bytes", capgen.TypeTagSize)
	}
	var parts []string
	if strings.TrimSpace(inner) != "" {
		parts = strings.Split(inner, ",")
	}
	if len(parts) != capgen.TypeTagSize {
		return tag, fmt.Sprintf("expected %d bytes, got %d", capgen.TypeTagSize, len(parts))
	}
	for ii, part := range parts {
		part = strings.TrimSpace(part)
		value, err := strconv.ParseUint(part, 0, 8)
		if err != nil {
			return tag, fmt.Sprintf("byte %q is not in the range 0-255", part)
		}
		tag[ii] = uint8(value)
	}
	return tag, ""
}

func hasKindBefore(directives []*syntax.Directive, kind syntax.DirectiveKind) bool {
	return slices.ContainsFunc(directives, func(d *syntax.Directive) bool {
		return d.Kind == kind
	})
}

func (c *compiler) buildSet() *schema.Set {
	set := &schema.Set{
		Package:    c.pkg.Name,
		ImportPath: c.opts.importPath,
	}
	for _, info := range c.order {
		switch info.type_ {
		case declType_PAYLOAD:
			set.Payloads = append(set.Payloads, info.payload)
		case declType_SCHEMA:
			set.Schemas = append(set.Schemas, info.schema)
		}
	}
	if c.opts.deps != nil {
		for _, dep := range c.opts.deps.Sets() {
			set.AddDependency(dep)
		}
	}
	return set
}

type diagnostic interface {
	File() string
	Span() syntax.Span
	Code() uint32
}

func sortDiagnostics[D diagnostic](diags []D) {
	slices.SortStableFunc(diags, func(a, b D) int {
		if x := cmp.Compare(a.File(), b.File()); x != 0 {
			return x
		}
		if x := cmp.Compare(a.Span().Start(), b.Span().Start()); x != 0 {
			return x
		}
		return cmp.Compare(a.Code(), b.Code())
	})
}
