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
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"go.capgen.dev/capgen/codegen"
	"go.capgen.dev/capgen/config"
	"go.capgen.dev/capgen/internal/plugin"
)

type cmdGenerate struct {
	global *globalOptions

	output     string
	pluginPath string
	importPath string
	deps       []string
	check      bool
	strict     bool
}

func (*cmdGenerate) help() *commandHelp {
	return &commandHelp{
		usage:   "generate [options] [PACKAGE_DIR]",
		summary: "Generate adapters for the schemas of a Go package",
	}
}

func (cmd *cmdGenerate) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.output, "output", "o", "", "generated file name, written into the package directory (default "+codegen.DefaultOutput+")")
	flags.StringVar(&cmd.pluginPath, "plugin", "", "run a codegen plugin compiled to WebAssembly instead of the built-in generator")
	flags.StringVar(&cmd.importPath, "import-path", "", "import path of the package (default: derived from go.mod)")
	flags.StringArrayVar(&cmd.deps, "dep", nil, "directory of a package whose schemas are nested (repeatable)")
	flags.BoolVar(&cmd.check, "check", false, "verify that the generated files are up to date instead of writing them")
	flags.BoolVar(&cmd.strict, "strict", false, "treat compiler warnings as errors")
}

func (cmd *cmdGenerate) run(ctx context.Context, argv []string) int {
	var packages []config.PackageConfig
	switch len(argv) {
	case 0:
		packages = cmd.global.config.Packages
		if len(packages) == 0 {
			fmt.Fprintln(os.Stderr, "No package directory given and no packages configured")
			return 1
		}
	case 1:
		output := cmd.output
		if output == "" {
			output = codegen.DefaultOutput
		}
		packages = []config.PackageConfig{{
			Dir:        argv[0],
			ImportPath: cmd.importPath,
			Output:     output,
			Plugin:     cmd.pluginPath,
			Deps:       cmd.deps,
		}}
	default:
		fmt.Fprintln(os.Stderr, "usage: capgen generate [options] [PACKAGE_DIR]")
		return 1
	}

	strict := cmd.strict || cmd.global.config.Strict
	rc := 0
	for _, pkg := range packages {
		if !cmd.generate(ctx, pkg, strict) {
			rc = 1
		}
	}
	return rc
}

func (cmd *cmdGenerate) generate(ctx context.Context, pkg config.PackageConfig, strict bool) bool {
	log := cmd.global.log.With(zap.String("dir", pkg.Dir))

	outcome, err := compilePackage(os.Stderr, packageSource{
		dir:        pkg.Dir,
		importPath: pkg.ImportPath,
		deps:       pkg.Deps,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	if outcome.set == nil {
		return false
	}
	if strict && outcome.warnings > 0 {
		fmt.Fprintf(os.Stderr, "%s: %d warning(s) treated as errors\n", pkg.Dir, outcome.warnings)
		return false
	}

	req := &plugin.Request{
		Set:          outcome.set,
		Dependencies: outcome.set.Dependencies(),
		Options:      map[string]string{plugin.OptionOutput: pkg.Output},
	}
	resp, err := cmd.runPlugin(ctx, pkg.Plugin, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	if resp.Error != "" {
		fmt.Fprintf(os.Stderr, "%s: %s\n", pkg.Dir, resp.Error)
		return false
	}
	if len(resp.Files) == 0 {
		fmt.Fprintln(os.Stderr, "Plugin did not generate any output files")
		return false
	}

	ok := true
	for _, file := range resp.Files {
		outPath, err := plugin.OutputPath(pkg.Dir, file.Path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		if cmd.check {
			if !checkOutput(outPath, file.Content) {
				ok = false
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		if err := os.WriteFile(outPath, file.Content, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		log.Info("wrote adapters",
			zap.String("path", outPath),
			zap.Int("schemas", len(outcome.set.Schemas)),
			zap.Int("payloads", len(outcome.set.Payloads)),
		)
	}
	return ok
}

func (cmd *cmdGenerate) runPlugin(ctx context.Context, pluginPath string, req *plugin.Request) (*plugin.Response, error) {
	if pluginPath == "" {
		return plugin.Handle(req), nil
	}
	pluginBin, err := os.ReadFile(pluginPath)
	if err != nil {
		return nil, err
	}
	host, err := plugin.Load(ctx, pluginBin)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pluginPath, err)
	}
	defer host.Close(ctx)
	return host.Generate(ctx, req)
}

// checkOutput reports whether the file at path matches want and still
// carries a valid digest, so hand edits are caught as well as stale output.
func checkOutput(path string, want []byte) bool {
	have, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	if err := codegen.VerifyDigest(have); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}
	if !bytes.Equal(have, want) {
		fmt.Fprintf(os.Stderr, "%s: out of date (run capgen generate)\n", path)
		return false
	}
	return true
}
