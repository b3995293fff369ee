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
	stdflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"go.capgen.dev/capgen"
	"go.capgen.dev/capgen/config"
	"go.capgen.dev/capgen/internal/plugin"
	"go.capgen.dev/capgen/simulate"
)

type command interface {
	help() *commandHelp
	flags(flags *pflag.FlagSet)
	run(ctx context.Context, argv []string) int
}

type commandHelp struct {
	usage   string
	summary string
}

type globalOptions struct {
	configPath string
	logLevel   string

	config *config.Config
	log    *zap.Logger
}

func main() {
	ctx := context.Background()
	global := &globalOptions{}

	capgenCmd := &cobra.Command{
		Use: "capgen [options] COMMAND",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	capgenCmd.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, capgenCmd.UsageString())
		os.Exit(1)
		return nil
	}
	persistent := capgenCmd.PersistentFlags()
	persistent.StringVar(&global.configPath, "config", "", "project file (default: capgen.yaml in the working directory, if present)")
	persistent.StringVar(&global.logLevel, "log-level", "", "override log.level from the project file")

	commands := []command{
		&cmdCompile{global: global},
		&cmdGenerate{global: global},
	}
	for _, cmd := range commands {
		help := cmd.help()
		cobraCmd := &cobra.Command{
			Use:   help.usage,
			Short: help.summary,
			RunE: func(_ *cobra.Command, args []string) error {
				if rc := global.init(); rc != 0 {
					os.Exit(rc)
				}
				rc := cmd.run(ctx, args)
				_ = global.log.Sync()
				os.Exit(rc)
				return nil
			},
		}
		capgenCmd.AddCommand(cobraCmd)
		cmd.flags(cobraCmd.Flags())
	}

	capgenCmd.Flags().AddGoFlagSet(stdflag.CommandLine)
	if _, err := capgenCmd.ExecuteC(); err != nil {
		os.Exit(1)
	}
}

// init loads the project file and installs the configured logger in every
// package that logs.
func (g *globalOptions) init() int {
	cfg := config.Default()
	path := g.configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.Find(wd)
		}
	}
	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		cfg = loaded
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log, err := cfg.Log.BuildLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	capgen.SetLogger(log.Named("capgen"))
	simulate.SetLogger(log.Named("simulate"))
	plugin.SetLogger(log.Named("plugin"))

	g.config = cfg
	g.log = log
	return 0
}
