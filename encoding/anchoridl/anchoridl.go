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

// Package anchoridl exports compiled schema sets as Anchor-compatible IDL
// documents, so clients in other ecosystems can build the same calls.
//
// Accounts are listed in dispatch order: direct addresses first, then one
// group per nested schema.
package anchoridl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.capgen.dev/capgen/schema"
)

type IDL struct {
	Version      string        `json:"version"`
	Name         string        `json:"name"`
	Instructions []Instruction `json:"instructions"`
	Metadata     *Metadata     `json:"metadata,omitempty"`
}

type Metadata struct {
	Address string `json:"address"`
}

type Instruction struct {
	Name          string        `json:"name"`
	Discriminator []int         `json:"discriminator"`
	Accounts      []AccountItem `json:"accounts"`
	Args          []Arg         `json:"args"`
}

// An AccountItem is either a single account or, when Accounts is set, a
// named group of accounts contributed by a nested schema.
type AccountItem struct {
	Name     string
	IsMut    bool
	IsSigner bool
	Accounts []AccountItem
}

func (item AccountItem) MarshalJSON() ([]byte, error) {
	if item.Accounts != nil {
		return json.Marshal(struct {
			Name     string        `json:"name"`
			Accounts []AccountItem `json:"accounts"`
		}{item.Name, item.Accounts})
	}
	return json.Marshal(struct {
		Name     string `json:"name"`
		IsMut    bool   `json:"isMut"`
		IsSigner bool   `json:"isSigner"`
	}{item.Name, item.IsMut, item.IsSigner})
}

type Arg struct {
	Name string `json:"name"`
	Type any    `json:"type"`
}

type Option interface {
	apply(*options)
}

type option func(*options)

func (f option) apply(opts *options) { f(opts) }

type options struct {
	name    string
	version string
	address string
}

func WithName(name string) Option {
	return option(func(opts *options) { opts.name = name })
}

func WithVersion(version string) Option {
	return option(func(opts *options) { opts.version = version })
}

// WithAddress records the program address in the IDL metadata. Without it
// the address is taken from the first schema with a literal owner.
func WithAddress(address string) Option {
	return option(func(opts *options) { opts.address = address })
}

func Export(set *schema.Set, opts ...Option) (*IDL, error) {
	exportOpts := &options{
		name:    set.Package,
		version: "0.1.0",
	}
	for _, opt := range opts {
		opt.apply(exportOpts)
	}

	idl := &IDL{
		Version:      exportOpts.version,
		Name:         exportOpts.name,
		Instructions: []Instruction{},
	}
	address := exportOpts.address
	for _, s := range set.Schemas {
		payload, err := set.Link(s.Name)
		if err != nil {
			return nil, fmt.Errorf("anchoridl: %w", err)
		}
		accounts, err := accountItems(set, nil, s, make(map[*schema.Schema]bool))
		if err != nil {
			return nil, err
		}
		inst := Instruction{
			Name:     lowerCamel(s.BaseName()),
			Accounts: accounts,
			Args:     []Arg{},
		}
		for _, b := range payload.Tag {
			inst.Discriminator = append(inst.Discriminator, int(b))
		}
		for _, arg := range payload.Args {
			inst.Args = append(inst.Args, Arg{
				Name: lowerCamel(arg.Name),
				Type: argType(arg.Type),
			})
		}
		idl.Instructions = append(idl.Instructions, inst)

		if address == "" && s.Owner.Kind == schema.OwnerKind_LITERAL {
			address = s.Owner.Address.String()
		}
	}
	if address != "" {
		idl.Metadata = &Metadata{Address: address}
	}
	return idl, nil
}

func Marshal(set *schema.Set, opts ...Option) ([]byte, error) {
	idl, err := Export(set, opts...)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(idl, "", "  ")
}

func accountItems(
	root *schema.Set,
	from *schema.Set,
	s *schema.Schema,
	visiting map[*schema.Schema]bool,
) ([]AccountItem, error) {
	if visiting[s] {
		return nil, &schema.LinkError{Schema: s.Name, Err: schema.ErrCycle}
	}
	visiting[s] = true
	defer delete(visiting, s)

	out := []AccountItem{}
	for _, field := range s.Fields {
		if field.Kind == schema.FieldKind_ADDRESS {
			out = append(out, AccountItem{
				Name:     lowerCamel(field.Name),
				IsMut:    field.Mut,
				IsSigner: field.Signer,
			})
		}
	}
	for _, field := range s.Fields {
		if field.Kind != schema.FieldKind_NESTED {
			continue
		}
		nested, owner := root.Resolve(from, field.Ref)
		if nested == nil {
			return nil, &schema.LinkError{
				Schema: s.Name,
				Field:  field.Name,
				Ref:    field.Ref,
				Err:    schema.ErrSchemaNotFound,
			}
		}
		items, err := accountItems(root, owner, nested, visiting)
		if err != nil {
			return nil, err
		}
		out = append(out, AccountItem{
			Name:     lowerCamel(field.Name),
			Accounts: items,
		})
	}
	return out, nil
}

var scalarTypes = map[string]string{
	"bool":           "bool",
	"uint8":          "u8",
	"byte":           "u8",
	"int8":           "i8",
	"uint16":         "u16",
	"int16":          "i16",
	"uint32":         "u32",
	"int32":          "i32",
	"uint64":         "u64",
	"int64":          "i64",
	"float32":        "f32",
	"float64":        "f64",
	"string":         "string",
	"[]byte":         "bytes",
	"[]uint8":        "bytes",
	"capgen.Address": "publicKey",
	"bin.Uint128":    "u128",
	"bin.Int128":     "i128",
}

func argType(goType string) any {
	goType = strings.TrimSpace(goType)
	if scalar, ok := scalarTypes[goType]; ok {
		return scalar
	}
	if elem, ok := strings.CutPrefix(goType, "*"); ok {
		return map[string]any{"option": argType(elem)}
	}
	if elem, ok := strings.CutPrefix(goType, "[]"); ok {
		return map[string]any{"vec": argType(elem)}
	}
	if rest, ok := strings.CutPrefix(goType, "["); ok {
		if size, elem, ok := strings.Cut(rest, "]"); ok {
			if n, err := strconv.Atoi(size); err == nil {
				return map[string]any{"array": []any{argType(elem), n}}
			}
		}
	}
	if _, name, ok := strings.Cut(goType, "."); ok {
		goType = name
	}
	return map[string]any{"defined": goType}
}

// lowerCamel converts an exported Go name to the IDL's camelCase. A
// leading initialism is lowered as a unit, so "LPMint" becomes "lpMint".
func lowerCamel(name string) string {
	runes := []rune(name)
	var upper int
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	lower := upper
	if upper > 1 && upper < len(runes) {
		lower = upper - 1
	}
	for ii := 0; ii < lower; ii++ {
		runes[ii] = unicode.ToLower(runes[ii])
	}
	return string(runes)
}
