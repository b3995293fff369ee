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

// Command build compiles a codegen plugin to WebAssembly with TinyGo.
//
//	go run ./internal/build -output=capgen-codegen-go.wasm ./cmd/capgen-codegen-go
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

var (
	tinygo  = flag.String("tinygo", "tinygo", "path to the tinygo binary")
	output  = flag.String("output", "", "path of the .wasm file to write")
	chdir   = flag.String("chdir", "", "directory to run tinygo in")
	target  = flag.String("target", "wasm-unknown", "tinygo target")
	wasmOpt = flag.String("wasm-opt", "", "path to the wasm-opt binary")
)

func main() {
	flag.Parse()
	if *output == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: build -output=FILE.wasm PACKAGE")
		os.Exit(2)
	}
	pwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	outPath := *output
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(pwd, outPath)
	}
	tinygoArgs := []string{"build", "-target=" + *target, "-o=" + outPath}
	tinygoArgs = append(tinygoArgs, flag.Args()...)

	cmd := exec.Command(*tinygo, tinygoArgs...)
	cmd.Env = os.Environ()
	if *wasmOpt != "" {
		cmd.Env = append(cmd.Env, "WASMOPT="+*wasmOpt)
	}
	cmd.Dir = filepath.Join(pwd, *chdir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
