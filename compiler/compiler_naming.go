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

package compiler

import (
	"strings"

	"go.capgen.dev/capgen"
)

// BaseName strips the schema suffix from name. It reports false if name
// does not follow the naming convention.
func BaseName(name string) (string, bool) {
	base, ok := strings.CutSuffix(name, capgen.SchemaSuffix)
	if !ok || base == "" {
		return "", false
	}
	return base, true
}

func BoundName(base string) string {
	return base + capgen.BoundSuffix
}

func DataName(base string) string {
	return base + capgen.DataSuffix
}

// parseAccountsArgs parses the arguments of an accounts directive, which
// may name the linked payload explicitly.
func parseAccountsArgs(args string) (data string, ok bool) {
	if args == "" {
		return "", true
	}
	key, value, found := strings.Cut(args, "=")
	if !found || strings.TrimSpace(key) != "data" {
		return "", false
	}
	value = strings.TrimSpace(value)
	if !isIdent(value) {
		return "", false
	}
	return value, true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for ii, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case ii > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
