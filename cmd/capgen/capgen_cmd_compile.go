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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"go.capgen.dev/capgen/encoding/anchoridl"
	"go.capgen.dev/capgen/encoding/capcbor"
	"go.capgen.dev/capgen/encoding/captext"
)

type cmdCompile struct {
	global *globalOptions

	outPath    string
	format     string
	importPath string
	deps       []string
	depSets    []string
	idlName    string
	idlVersion string
	idlAddress string
}

func (*cmdCompile) help() *commandHelp {
	return &commandHelp{
		usage:   "compile [options] PACKAGE_DIR",
		summary: "Compile the schemas of a Go package and print the resulting set",
	}
}

func (cmd *cmdCompile) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.outPath, "output", "o", "", "write to this file instead of stdout")
	flags.StringVarP(&cmd.format, "format", "f", "", `output format: "text", "binary", or "idl" (default: from the output extension, else "text")`)
	flags.StringVar(&cmd.importPath, "import-path", "", "import path of the package (default: derived from go.mod)")
	flags.StringArrayVar(&cmd.deps, "dep", nil, "directory of a package whose schemas are nested (repeatable)")
	flags.StringArrayVar(&cmd.depSets, "dep-set", nil, "binary set of a dependency, as written by -f binary (repeatable)")
	flags.StringVar(&cmd.idlName, "idl-name", "", "program name for -f idl (default: package name)")
	flags.StringVar(&cmd.idlVersion, "idl-version", "", "program version for -f idl")
	flags.StringVar(&cmd.idlAddress, "idl-address", "", "program address for -f idl")
}

func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bin", ".cbor":
		return "binary"
	case ".json":
		return "idl"
	}
	return "text"
}

func (cmd *cmdCompile) run(ctx context.Context, argv []string) int {
	if len(argv) != 1 {
		fmt.Fprintln(os.Stderr, "usage: capgen compile [options] PACKAGE_DIR")
		return 1
	}
	log := cmd.global.log

	format := cmd.format
	if format == "" {
		format = formatFor(cmd.outPath)
	}
	switch format {
	case "text", "captext", "binary", "bin", "cbor", "idl", "json":
	default:
		fmt.Fprintf(os.Stderr, "Unsupported output format %q\n", format)
		return 1
	}

	depSets, err := readDepSets(cmd.depSets)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	outcome, err := compilePackage(os.Stderr, packageSource{
		dir:        argv[0],
		importPath: cmd.importPath,
		deps:       cmd.deps,
		depSets:    depSets,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if outcome.set == nil {
		return 1
	}
	if cmd.global.config.Strict && outcome.warnings > 0 {
		fmt.Fprintf(os.Stderr, "%d warning(s) treated as errors\n", outcome.warnings)
		return 1
	}
	log.Debug("compiled package",
		zap.String("dir", argv[0]),
		zap.String("import_path", outcome.set.ImportPath),
		zap.Int("schemas", len(outcome.set.Schemas)),
		zap.Int("payloads", len(outcome.set.Payloads)),
	)

	var output []byte
	switch format {
	case "text", "captext":
		output = []byte(captext.Encode(outcome.set))
	case "binary", "bin", "cbor":
		output, err = capcbor.EncodeSet(outcome.set)
	case "idl", "json":
		var opts []anchoridl.Option
		if cmd.idlName != "" {
			opts = append(opts, anchoridl.WithName(cmd.idlName))
		}
		if cmd.idlVersion != "" {
			opts = append(opts, anchoridl.WithVersion(cmd.idlVersion))
		}
		if cmd.idlAddress != "" {
			opts = append(opts, anchoridl.WithAddress(cmd.idlAddress))
		}
		output, err = anchoridl.Marshal(outcome.set, opts...)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := writeOutput(cmd.outPath, output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
