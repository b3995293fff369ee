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

package codegen_test

import (
	"bytes"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"go.capgen.dev/capgen/codegen"
	"go.capgen.dev/capgen/compiler"
	"go.capgen.dev/capgen/internal/testutil"
	"go.capgen.dev/capgen/schema"
	"go.capgen.dev/capgen/syntax"
)

const testImportPrefix = "testdata.capgen.dev/"

func compileCase(t *testing.T, name string, deps ...*schema.Set) *schema.Set {
	t.Helper()
	testdataDir, err := testutil.TestdataDir()
	testutil.AssertNoError(t, err)
	return compileDir(t, filepath.Join(testdataDir, "schema", name), testImportPrefix+name, deps...)
}

func compileDir(t *testing.T, dir, importPath string, deps ...*schema.Set) *schema.Set {
	t.Helper()
	pkg, err := syntax.ParseDir(dir)
	testutil.AssertNoError(t, err)

	opts := []compiler.CompileOption{compiler.WithImportPath(importPath)}
	if len(deps) > 0 {
		merged, err := compiler.Merge(deps)
		testutil.AssertNoError(t, err)
		opts = append(opts, compiler.WithDependencies(merged))
	}
	result := compiler.Compile(pkg, opts...)
	testutil.AssertNoError(t, result.Err())
	return result.Set()
}

func generate(t *testing.T, set *schema.Set, opts ...codegen.Option) []byte {
	t.Helper()
	src, err := codegen.Generate(set, opts...)
	testutil.AssertNoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), codegen.DefaultOutput, src, parser.AllErrors)
	testutil.AssertNoError(t, err)
	return src
}

func expectContains(t *testing.T, src []byte, snippets ...string) {
	t.Helper()
	for _, snippet := range snippets {
		if !bytes.Contains(src, []byte(snippet)) {
			t.Errorf("generated code lacks %q", snippet)
		}
	}
}

func TestGenerateBasic(t *testing.T) {
	set := compileCase(t, "basic")
	src := generate(t, set)

	testutil.ExpectTrue(t, syntax.IsGenerated(src))
	testutil.ExpectNoError(t, codegen.VerifyDigest(src))
	expectContains(t, src,
		"package basic\n",
		"func (DepositData) TypeTag() capgen.TypeTag {",
		"return capgen.TypeTag{242, 35, 198, 137, 82, 225, 242, 182}",
		"var _ capgen.Payload = DepositData{}",
		"type DepositAccountInfos struct {",
		"TransferFrom *capgen.ResourceHandle",
		"func (DepositAccounts) Owner() capgen.Address {",
		"func (DepositAccountInfos) Owner() capgen.Address {",
		"return capgen.Address{5, 69, 227, 101,",
		"func (b DepositAccountInfos) Accounts() DepositAccounts {",
		"b.State.Key,",
		"capgen.Writable(a.State, false),",
		"capgen.Writable(a.TransferFrom, true),",
		"capgen.ReadOnly(a.Authority, true),",
		"capgen.ReadOnly(a.TokenProgram, false),",
		"return b.Accounts().ResourceDescriptors()",
		"func (b DepositAccountInfos) ResourceHandles() []*capgen.ResourceHandle {",
		"func (DepositAccounts) LinkedPayload(DepositData) {}",
		"capgen.Bound[DepositData]",
	)

	// Descriptors and handles list fields in declaration order.
	order := []string{"a.State", "a.ReservePDA", "a.TransferFrom", "a.Authority", "a.TokenProgram"}
	last := -1
	for _, name := range order {
		idx := bytes.Index(src, []byte(name+","))
		testutil.ExpectTrue(t, idx > last)
		last = idx
	}
}

func TestGenerateEmptySchema(t *testing.T) {
	set := compileCase(t, "empty_schema")
	slots, err := set.Layout("EmptyAccounts")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 0, len(slots))

	src := generate(t, set)
	expectContains(t, src,
		"type EmptyAccountInfos struct{}",
		"func (EmptyAccounts) Owner() capgen.Address {",
		"return capgen.Address{5, 69, 227, 101,",
		"func (b EmptyAccountInfos) Accounts() EmptyAccounts {\n\treturn EmptyAccounts{}\n}",
		"func (a EmptyAccounts) ResourceDescriptors() []capgen.ResourceDescriptor {\n\treturn []capgen.ResourceDescriptor{}\n}",
		"func (b EmptyAccountInfos) ResourceHandles() []*capgen.ResourceHandle {\n\treturn []*capgen.ResourceHandle{}\n}",
		"func (EmptyAccounts) LinkedPayload(EmptyData) {}",
	)
}

func TestGenerateDeterministic(t *testing.T) {
	set := compileCase(t, "nested_local")
	first := generate(t, set)
	second := generate(t, compileCase(t, "nested_local"))
	testutil.ExpectNoDiff(t, string(first), string(second))
}

func TestGenerateNestedImport(t *testing.T) {
	testdataDir, err := testutil.TestdataDir()
	testutil.AssertNoError(t, err)
	pool := compileDir(t,
		filepath.Join(testdataDir, "schema", "nested_import", "dep_pool"),
		testImportPrefix+"pool",
	)
	set := compileCase(t, "nested_import", pool)
	src := generate(t, set)

	expectContains(t, src,
		`"testdata.capgen.dev/pool"`,
		"return pool.ProgramID",
		"Pool pool.PoolAccountInfos",
		"b.Pool.Accounts(),",
		"out = append(out, a.Pool.ResourceDescriptors()...)",
		"out = append(out, b.Pool.ResourceHandles()...)",
	)

	// The pool package gets its own adapters when generated on its own.
	poolSrc := generate(t, pool)
	expectContains(t, poolSrc, "return ProgramID", "func (PoolData) TypeTag() capgen.TypeTag {")
}

func TestGenerateWithoutAssertions(t *testing.T) {
	src := generate(t, compileCase(t, "basic"), codegen.WithAssertions(false))
	testutil.ExpectFalse(t, bytes.Contains(src, []byte("var _ capgen.Payload")))
	testutil.ExpectFalse(t, bytes.Contains(src, []byte("capgen.Bound[DepositData]")))
}

func TestGenerateUnlinked(t *testing.T) {
	set := &schema.Set{
		Package:    "broken",
		ImportPath: testImportPrefix + "broken",
		Schemas: []*schema.Schema{{
			Name:    "VoteAccounts",
			Owner:   schema.Owner{Kind: schema.OwnerKind_IDENT, Ident: schema.TypeRef{Name: "ProgramID"}},
			Payload: "VoteData",
		}},
	}
	_, err := codegen.Generate(set)
	testutil.ExpectErrorIs(t, schema.ErrPayloadNotFound, err)
}

func TestVerifyDigest(t *testing.T) {
	src := generate(t, compileCase(t, "basic"))
	testutil.ExpectNoError(t, codegen.VerifyDigest(src))

	tampered := bytes.Replace(src, []byte("capgen.Writable(a.State"), []byte("capgen.ReadOnly(a.State"), 1)
	testutil.ExpectErrorIs(t, codegen.ErrDigestMismatch, codegen.VerifyDigest(tampered))

	_, body, _ := strings.Cut(string(src), "\n\n")
	testutil.ExpectErrorIs(t, codegen.ErrNotGenerated, codegen.VerifyDigest([]byte(body)))

	noDigest := strings.Replace(string(src), "// digest: ", "// hash: ", 1)
	testutil.ExpectErrorIs(t, codegen.ErrNotGenerated, codegen.VerifyDigest([]byte(noDigest)))
}

func TestDigest(t *testing.T) {
	d := codegen.Digest([]byte("package x\n"))
	testutil.ExpectTrue(t, strings.HasPrefix(d, "Qm"))
	testutil.ExpectEq(t, d, codegen.Digest([]byte("package x\n")))
	testutil.ExpectFalse(t, d == codegen.Digest([]byte("package y\n")))
}
