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
	"bytes"
	"fmt"
	"maps"
	"slices"

	"go.capgen.dev/capgen/encoding/capcbor"
	"go.capgen.dev/capgen/schema"
)

// Dependencies are compiled sets of other packages, keyed by import path.
type Dependencies struct {
	sets map[string]*schema.Set
}

// Merge collects dependency sets. The same package may appear more than
// once only if every copy is identical.
func Merge(deps []*schema.Set) (*Dependencies, error) {
	merged := &Dependencies{sets: make(map[string]*schema.Set, len(deps))}
	for _, dep := range deps {
		if dep.ImportPath == "" {
			return nil, fmt.Errorf("dependency package %q has no import path", dep.Package)
		}
		prev, ok := merged.sets[dep.ImportPath]
		if !ok {
			merged.sets[dep.ImportPath] = dep
			continue
		}
		prevData, err := capcbor.EncodeSet(prev)
		if err != nil {
			return nil, err
		}
		depData, err := capcbor.EncodeSet(dep)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(prevData, depData) {
			return nil, fmt.Errorf(
				"conflicting definitions of dependency %q",
				dep.ImportPath,
			)
		}
	}
	return merged, nil
}

func (d *Dependencies) Set(importPath string) *schema.Set {
	return d.sets[importPath]
}

// Sets returns the dependency sets ordered by import path.
func (d *Dependencies) Sets() []*schema.Set {
	out := make([]*schema.Set, 0, len(d.sets))
	for _, key := range slices.Sorted(maps.Keys(d.sets)) {
		out = append(out, d.sets[key])
	}
	return out
}
