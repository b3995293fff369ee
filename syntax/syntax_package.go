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

package syntax

import (
	"bufio"
	"bytes"
	"fmt"
	"go/build"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// A Package is the set of parsed files sharing one Go package clause.
type Package struct {
	Name  string
	Files []*File
}

func NewPackage(files ...*File) (*Package, error) {
	pkg := &Package{}
	for _, file := range files {
		if pkg.Name == "" {
			pkg.Name = file.Package
		} else if pkg.Name != file.Package {
			return nil, fmt.Errorf(
				"file %s is in package %q, expected %q",
				file.Name, file.Package, pkg.Name,
			)
		}
		pkg.Files = append(pkg.Files, file)
	}
	return pkg, nil
}

func (p *Package) Decls() iter.Seq[*Decl] {
	return func(yield func(*Decl) bool) {
		for _, file := range p.Files {
			for _, decl := range file.Decls {
				if !yield(decl) {
					return
				}
			}
		}
	}
}

// TypeSpan looks up a type declared in any file of the package.
func (p *Package) TypeSpan(name string) (*File, Span, bool) {
	for _, file := range p.Files {
		if span, ok := file.TypeSpan(name); ok {
			return file, span, true
		}
	}
	return nil, Span{}, false
}

// ParseDir parses the non-test Go files of dir. Generated files, files
// excluded by build constraints for the host platform, and files whose base
// name is listed in exclude are skipped.
func ParseDir(dir string, exclude ...string) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []*File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") || slices.Contains(exclude, name) {
			continue
		}
		if match, err := build.Default.MatchFile(dir, name); err != nil {
			return nil, err
		} else if !match {
			continue
		}
		src, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if IsGenerated(src) {
			continue
		}
		file, err := ParseFile(filepath.Join(dir, name), src)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Go source files in %s", dir)
	}
	return NewPackage(files...)
}

var generatedMarker = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// IsGenerated reports whether src carries the standard generated-code
// marker before its package clause.
func IsGenerated(src []byte) bool {
	lines := bufio.NewScanner(bytes.NewReader(src))
	for lines.Scan() {
		line := lines.Text()
		if strings.HasPrefix(line, "package ") {
			return false
		}
		if generatedMarker.MatchString(line) {
			return true
		}
	}
	return false
}
