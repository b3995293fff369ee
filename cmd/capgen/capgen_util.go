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

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.capgen.dev/capgen/compiler"
	"go.capgen.dev/capgen/encoding/capcbor"
	"go.capgen.dev/capgen/schema"
	"go.capgen.dev/capgen/syntax"
)

// importPathOf derives the import path of dir from the nearest enclosing
// go.mod file.
func importPathOf(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for root := abs; ; {
		data, err := os.ReadFile(filepath.Join(root, "go.mod"))
		if err == nil {
			modPath := modulePath(data)
			if modPath == "" {
				return "", fmt.Errorf("%s: no module directive", filepath.Join(root, "go.mod"))
			}
			rel, err := filepath.Rel(root, abs)
			if err != nil {
				return "", err
			}
			if rel == "." {
				return modPath, nil
			}
			return modPath + "/" + filepath.ToSlash(rel), nil
		}
		parent := filepath.Dir(root)
		if parent == root {
			return "", fmt.Errorf("%s is not inside a Go module", dir)
		}
		root = parent
	}
}

func modulePath(gomod []byte) string {
	lines := bufio.NewScanner(bytes.NewReader(gomod))
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		rest, ok := strings.CutPrefix(line, "module")
		if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		rest = strings.TrimSpace(rest)
		if unquoted, err := strconv.Unquote(rest); err == nil {
			return unquoted
		}
		return rest
	}
	return ""
}

type packageSource struct {
	dir        string
	importPath string
	deps       []string
	depSets    []*schema.Set
	exclude    []string
}

type compileOutcome struct {
	set      *schema.Set
	warnings int
	errors   int
}

// compilePackage parses and compiles one package directory, after
// compiling each of its dependency directories. Precompiled dependency
// sets are merged in as-is. Diagnostics are written
// to w with file:line:col positions.
func compilePackage(w io.Writer, src packageSource) (compileOutcome, error) {
	deps := append([]*schema.Set(nil), src.depSets...)
	for _, depDir := range src.deps {
		dep, err := compilePackage(w, packageSource{dir: depDir})
		if err != nil {
			return compileOutcome{}, err
		}
		if dep.set == nil {
			return dep, nil
		}
		deps = append(deps, dep.set)
	}

	importPath := src.importPath
	if importPath == "" {
		var err error
		if importPath, err = importPathOf(src.dir); err != nil {
			return compileOutcome{}, err
		}
	}

	parsed, err := syntax.ParseDir(src.dir, src.exclude...)
	if err != nil {
		var synErr *syntax.Error
		if errors.As(err, &synErr) {
			fmt.Fprintf(w, "%s: %v\n", position(synErr.File(), synErr.Span()), synErr)
			return compileOutcome{errors: 1}, nil
		}
		return compileOutcome{}, err
	}

	opts := []compiler.CompileOption{compiler.WithImportPath(importPath)}
	if len(deps) > 0 {
		merged, err := compiler.Merge(deps)
		if err != nil {
			return compileOutcome{}, err
		}
		opts = append(opts, compiler.WithDependencies(merged))
	}

	result := compiler.Compile(parsed, opts...)
	for _, warn := range result.Warnings {
		fmt.Fprintf(w, "%s: %v\n", position(warn.File(), warn.Span()), warn)
	}
	for _, err := range result.Errors {
		fmt.Fprintf(w, "%s: %v\n", position(err.File(), err.Span()), err)
	}
	return compileOutcome{
		set:      result.Set(),
		warnings: len(result.Warnings),
		errors:   len(result.Errors),
	}, nil
}

// position formats a span start as file:line:col, falling back to the
// byte offset if the file cannot be read.
func position(file string, span syntax.Span) string {
	src, err := os.ReadFile(file)
	offset := int(span.Start())
	if err != nil || offset > len(src) {
		return fmt.Sprintf("%s:#%d", file, offset)
	}
	before := src[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	col := offset - (bytes.LastIndexByte(before, '\n') + 1) + 1
	return fmt.Sprintf("%s:%d:%d", file, line, col)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readDepSets(paths []string) ([]*schema.Set, error) {
	var sets []*schema.Set
	for _, path := range paths {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		set, err := capcbor.DecodeSet(buf)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		sets = append(sets, set)
	}
	return sets, nil
}
