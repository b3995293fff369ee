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

package syntax_test

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"go.capgen.dev/capgen/internal/testutil"
	"go.capgen.dev/capgen/syntax"
)

var (
	testdata     fs.FS
	syntaxErrors map[string]*testutil.Diagnostic
)

func init() {
	var err error
	testdata, err = testutil.TestdataFS()
	if err != nil {
		panic(err)
	}
	syntaxErrors, err = testutil.LoadSyntaxErrors(testdata)
	if err != nil {
		panic(err)
	}
}

func specTest(t *testing.T, testName string) {
	t.Parallel()

	srcPath := fmt.Sprintf("syntax/%s/%s.go", testName, testName)
	src, err := fs.ReadFile(testdata, srcPath)
	testutil.AssertNoError(t, err)

	expectOK := fmt.Sprintf("syntax/%s/expect_ok.json", testName)
	expectErr := fmt.Sprintf("syntax/%s/expect_err.json", testName)

	if _, err := fs.Stat(testdata, expectErr); err == nil {
		testExpectErr(t, srcPath, src, expectErr)
	} else {
		testExpectOK(t, srcPath, src, expectOK)
	}
}

func decodeJSON(t *testing.T, data []byte) any {
	t.Helper()
	var out any
	testutil.AssertNoError(t, json.Unmarshal(data, &out))
	return out
}

func testExpectOK(t *testing.T, srcPath string, src []byte, expectPath string) {
	expectJSON, err := fs.ReadFile(testdata, expectPath)
	testutil.AssertNoError(t, err)

	file, err := syntax.ParseFile(srcPath, src)
	testutil.AssertNoError(t, err)

	testutil.ExpectCmp(t, decodeJSON(t, expectJSON), decodeJSON(t, testutil.DumpJSON(file)))
}

func testExpectErr(t *testing.T, srcPath string, src []byte, expectPath string) {
	expectErrors := testutil.LoadExpectedErrors(t, syntaxErrors, testdata, expectPath)
	if len(expectErrors) != 1 {
		t.Fatalf("len(expectErrors) == %d, want 1", len(expectErrors))
	}
	expectErr := expectErrors[0]

	_, err := syntax.ParseFile(srcPath, src)
	testutil.AssertError(t, err)

	parseErr := err.(*syntax.Error)
	testutil.ExpectEq(t, expectErr.Code, parseErr.Code())
	testutil.ExpectTrue(t, expectErr.Matches(parseErr.Message()))
	testutil.ExpectEq(t, srcPath, parseErr.File())
	testutil.ExpectEq(t, expectErr.Span, parseErr.Span())
}

func TestSyntax(t *testing.T) {
	t.Parallel()

	testDirs, err := fs.ReadDir(testdata, "syntax")
	testutil.AssertNoError(t, err)

	for _, testDir := range testDirs {
		if testDir.IsDir() {
			testName := testDir.Name()
			t.Run(testName, func(t *testing.T) {
				specTest(t, testName)
			})
		}
	}
}

func TestIsGenerated(t *testing.T) {
	t.Parallel()

	testutil.ExpectTrue(t, syntax.IsGenerated([]byte(
		"// Code generated by capgen. DO NOT EDIT.\n// digest: x\n\npackage p\n",
	)))
	testutil.ExpectTrue(t, syntax.IsGenerated([]byte(
		"// Copyright notice\n\n// Code generated by other-tool. DO NOT EDIT.\n\npackage p\n",
	)))
	testutil.ExpectFalse(t, syntax.IsGenerated([]byte(
		"package p\n\n// Code generated by capgen. DO NOT EDIT.\n",
	)))
	testutil.ExpectFalse(t, syntax.IsGenerated([]byte(
		"// Code generated by capgen.\n\npackage p\n",
	)))
}

func TestParseDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		testutil.AssertNoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("a.go", "package p\n\n//capgen:data\n//capgen:tag [1, 2, 3, 4, 5, 6, 7, 8]\ntype AData struct{}\n")
	write("b.go", "package p\n\n//capgen:data\n//capgen:tag [8, 7, 6, 5, 4, 3, 2, 1]\ntype BData struct{}\n")
	write("capgen_gen.go", "// Code generated by capgen. DO NOT EDIT.\n\npackage p\n\n//capgen:bogus\ntype X struct{}\n")
	write("p_test.go", "package p\n\nnot go\n")
	write("notes.txt", "//capgen:bogus\n")

	pkg, err := syntax.ParseDir(dir)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "p", pkg.Name)
	testutil.ExpectEq(t, 2, len(pkg.Files))

	var names []string
	for decl := range pkg.Decls() {
		names = append(names, decl.Name)
	}
	testutil.ExpectSliceEq(t, []string{"AData", "BData"}, names)

	file, span, ok := pkg.TypeSpan("BData")
	if testutil.ExpectTrue(t, ok); ok {
		testutil.ExpectEq(t, filepath.Join(dir, "b.go"), file.Name)
		testutil.ExpectEq(t, syntax.NewSpan(68, 5), span)
	}

	pkg, err = syntax.ParseDir(dir, "b.go")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 1, len(pkg.Files))
}

func TestParseDirMixedPackages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.AssertNoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a\n"), 0o644))
	testutil.AssertNoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte("package b\n"), 0o644))

	_, err := syntax.ParseDir(dir)
	testutil.AssertError(t, err)
}

func TestParseDirBuildConstraints(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, src string) {
		testutil.AssertNoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	write("schema.go", "package schema\n")
	write("extra.go", "//go:build !ignore\n\npackage schema\n")
	write("gen.go", "//go:build ignore\n\npackage main\n")

	pkg, err := syntax.ParseDir(dir)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "schema", pkg.Name)
	testutil.ExpectEq(t, 2, len(pkg.Files))
}

func TestParseDirEmpty(t *testing.T) {
	t.Parallel()

	_, err := syntax.ParseDir(t.TempDir())
	testutil.AssertError(t, err)
}
