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

//go:build !tinygo

//go:generate go run ../../internal/build -output=capgen-codegen-go.wasm .

package main

import (
	"log"
	"os"

	"go.capgen.dev/capgen/compiler"
	"go.capgen.dev/capgen/internal/plugin"
	"go.capgen.dev/capgen/syntax"
)

func main() {
	args := os.Args[1:]
	if len(args) < 1 {
		log.Fatalf("usage: %s PACKAGE_DIR [IMPORT_PATH]", os.Args[0])
	}
	pkgDir := args[0]

	parsed, err := syntax.ParseDir(pkgDir)
	if err != nil {
		log.Fatalf("ParseDir(%q): %v", pkgDir, err)
	}

	var opts []compiler.CompileOption
	if len(args) > 1 {
		opts = append(opts, compiler.WithImportPath(args[1]))
	}
	compiled := compiler.Compile(parsed, opts...)
	if len(compiled.Warnings) > 0 {
		for _, warn := range compiled.Warnings {
			log.Printf("[WARN ] %v", warn)
		}
	}
	if len(compiled.Errors) > 0 {
		for _, err := range compiled.Errors {
			log.Printf("[ERROR] %v", err)
		}
		os.Exit(1)
	}

	resp := plugin.Handle(&plugin.Request{Set: compiled.Set()})
	if resp.Error != "" {
		log.Fatal(resp.Error)
	}
	for _, file := range resp.Files {
		if _, err := os.Stdout.Write(file.Content); err != nil {
			log.Fatal(err)
		}
	}
}
