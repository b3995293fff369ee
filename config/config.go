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

// Package config loads capgen project files.
//
// A project file lists the packages whose schemas are compiled and where
// their generated adapters are written. It is YAML ("capgen.yaml") or JSON
// with comments ("capgen.jsonc"):
//
//	packages:
//	  - dir: ./catalog/marinade
//	    import_path: go.capgen.dev/capgen/catalog/marinade
//	strict: true
//	log:
//	  level: debug
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"go.capgen.dev/capgen/codegen"
)

// DefaultFiles are the project file names looked up in the working
// directory when no file is given explicitly.
var DefaultFiles = []string{"capgen.yaml", "capgen.yml", "capgen.jsonc"}

type Config struct {
	Packages []PackageConfig `yaml:"packages" json:"packages"`

	// Strict treats compiler warnings as errors.
	Strict bool `yaml:"strict" json:"strict"`

	Log LogConfig `yaml:"log" json:"log"`
}

type PackageConfig struct {
	Dir        string `yaml:"dir" json:"dir"`
	ImportPath string `yaml:"import_path" json:"import_path"`

	// Output is the file name of the generated adapters, written into Dir.
	Output string `yaml:"output" json:"output"`

	// Plugin is an optional codegen plugin compiled to WebAssembly.
	Plugin string `yaml:"plugin" json:"plugin"`

	// Deps are the directories of packages whose schemas are nested by
	// this package.
	Deps []string `yaml:"deps" json:"deps"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadFile reads a project file over the defaults. Relative package
// directories are resolved against the directory containing the file.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// Find returns the first of DefaultFiles present in dir, or "".
func Find(dir string) string {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return yaml.Unmarshal(data, c)
	}
}

func (c *Config) resolvePaths(base string) {
	for ii := range c.Packages {
		pkg := &c.Packages[ii]
		if pkg.Output == "" {
			pkg.Output = codegen.DefaultOutput
		}
		pkg.Dir = resolve(base, pkg.Dir)
		if pkg.Plugin != "" {
			pkg.Plugin = resolve(base, pkg.Plugin)
		}
		for jj, dep := range pkg.Deps {
			pkg.Deps[jj] = resolve(base, dep)
		}
	}
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
)

func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", logLevels))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", logFormats))
	}
	for ii, pkg := range c.Packages {
		if pkg.Dir == "" {
			errs = append(errs, fmt.Errorf("packages[%d].dir is required", ii))
		}
		if pkg.Output != "" && (filepath.Base(pkg.Output) != pkg.Output || !strings.HasSuffix(pkg.Output, ".go")) {
			errs = append(errs, fmt.Errorf("packages[%d].output must be a .go file name", ii))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// BuildLogger constructs the logger described by the log section.
func (l LogConfig) BuildLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, err
	}
	var zapConfig zap.Config
	if l.Format == "json" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = level
	return zapConfig.Build()
}
