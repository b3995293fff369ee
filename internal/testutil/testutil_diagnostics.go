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

package testutil

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"testing"

	"go.capgen.dev/capgen/syntax"
)

// A Diagnostic is one entry of a diagnostics table under
// testdata/diagnostics, keyed by a stable name.
type Diagnostic struct {
	Key     string
	Code    uint32
	Message string
	Pattern *regexp.Regexp
}

// Matches reports whether a rendered message is the one described.
func (d *Diagnostic) Matches(message string) bool {
	if d.Pattern != nil {
		return d.Pattern.MatchString(message)
	}
	return d.Message == message
}

func LoadSyntaxErrors(testdata fs.FS) (map[string]*Diagnostic, error) {
	return loadDiagnostics(testdata, "diagnostics/syntax_errors.json", "syntax error")
}

func LoadSchemaErrors(testdata fs.FS) (map[string]*Diagnostic, error) {
	return loadDiagnostics(testdata, "diagnostics/schema_errors.json", "schema error")
}

func LoadSchemaWarnings(testdata fs.FS) (map[string]*Diagnostic, error) {
	return loadDiagnostics(testdata, "diagnostics/schema_warnings.json", "schema warning")
}

func loadDiagnostics(testdata fs.FS, path, kind string) (map[string]*Diagnostic, error) {
	type raw struct {
		Code    uint32 `json:"code"`
		Message string `json:"message"`
		Pattern string `json:"message_pattern"`
	}

	jsonData, err := fs.ReadFile(testdata, path)
	if err != nil {
		return nil, err
	}

	var rawDiags map[string]raw
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	if err := decoder.Decode(&rawDiags); err != nil {
		return nil, err
	}

	out := make(map[string]*Diagnostic, len(rawDiags))
	codes := make(map[uint32]struct{}, len(rawDiags))
	for key, raw := range rawDiags {
		if key[0] == '_' {
			if raw.Code != 0 {
				if _, conflict := codes[raw.Code]; conflict {
					return nil, fmt.Errorf("duplicate %s code %d", kind, raw.Code)
				}
				codes[raw.Code] = struct{}{}
			}
			continue
		}

		if raw.Code == 0 {
			return nil, fmt.Errorf("%s %q has no error code", kind, key)
		}
		if _, conflict := codes[raw.Code]; conflict {
			return nil, fmt.Errorf("duplicate %s code %d", kind, raw.Code)
		}
		codes[raw.Code] = struct{}{}

		var pattern *regexp.Regexp
		if raw.Pattern != "" {
			pattern, err = regexp.Compile(raw.Pattern)
			if err != nil {
				return nil, err
			}
		}
		out[key] = &Diagnostic{
			Key:     key,
			Code:    raw.Code,
			Message: raw.Message,
			Pattern: pattern,
		}
	}

	return out, nil
}

type ExpectedDiagnostic struct {
	Diagnostic
	File string
	Span syntax.Span
}

// LoadExpectedErrors reads a list of the form
// {"errors": [{"error": KEY, "file": NAME, "error_span": {"start": N, "len": N}}]}.
// File is optional and defaults to the case's main source file.
func LoadExpectedErrors(
	t *testing.T,
	table map[string]*Diagnostic,
	testdata fs.FS,
	jsonPath string,
) []*ExpectedDiagnostic {
	t.Helper()
	return loadExpected(t, table, testdata, jsonPath, "errors", "error")
}

// LoadExpectedWarnings is LoadExpectedErrors for lists of the form
// {"warnings": [{"warning": KEY, "warning_span": {...}}]}.
func LoadExpectedWarnings(
	t *testing.T,
	table map[string]*Diagnostic,
	testdata fs.FS,
	jsonPath string,
) []*ExpectedDiagnostic {
	t.Helper()
	return loadExpected(t, table, testdata, jsonPath, "warnings", "warning")
}

func loadExpected(
	t *testing.T,
	table map[string]*Diagnostic,
	testdata fs.FS,
	jsonPath string,
	listKey string,
	itemKey string,
) []*ExpectedDiagnostic {
	t.Helper()

	jsonData, err := fs.ReadFile(testdata, jsonPath)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string][]map[string]json.RawMessage
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		t.Fatalf("%s: %v", jsonPath, err)
	}

	type rawSpan struct {
		Start uint32 `json:"start"`
		Len   uint32 `json:"len"`
	}

	var out []*ExpectedDiagnostic
	for _, item := range raw[listKey] {
		var key, file string
		var span rawSpan
		if err := json.Unmarshal(item[itemKey], &key); err != nil {
			t.Fatalf("%s: %v", jsonPath, err)
		}
		if fileJSON, ok := item["file"]; ok {
			if err := json.Unmarshal(fileJSON, &file); err != nil {
				t.Fatalf("%s: %v", jsonPath, err)
			}
		}
		if err := json.Unmarshal(item[itemKey+"_span"], &span); err != nil {
			t.Fatalf("%s: %v", jsonPath, err)
		}
		diag, ok := table[key]
		if !ok {
			t.Fatalf("unknown %s name %q", itemKey, key)
		}
		out = append(out, &ExpectedDiagnostic{
			Diagnostic: *diag,
			File:       file,
			Span:       syntax.NewSpan(span.Start, span.Len),
		})
	}

	slices.SortFunc(out, func(a, b *ExpectedDiagnostic) int {
		if x := cmp.Compare(a.File, b.File); x != 0 {
			return x
		}
		if x := cmp.Compare(a.Span.Start(), b.Span.Start()); x != 0 {
			return x
		}
		return cmp.Compare(a.Code, b.Code)
	})
	return out
}
