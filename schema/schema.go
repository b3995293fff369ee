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

// Package schema is the compiled form of capability schemas and payloads.
//
// A [Set] holds every schema and payload declared in one Go package. Sets
// are immutable once produced by the compiler and may be shared freely.
package schema

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.capgen.dev/capgen"
)

type FieldKind uint8

const (
	FieldKind_UNKNOWN FieldKind = iota
	FieldKind_ADDRESS
	FieldKind_NESTED
)

func (k FieldKind) String() string {
	switch k {
	case FieldKind_ADDRESS:
		return "address"
	case FieldKind_NESTED:
		return "nested"
	default:
		return fmt.Sprintf("FieldKind(%d)", uint8(k))
	}
}

// A TypeRef names a declaration. An empty ImportPath refers to the package
// containing the reference.
type TypeRef struct {
	ImportPath string `cbor:"1,keyasint,omitempty"`
	Name       string `cbor:"2,keyasint"`
}

func (r TypeRef) String() string {
	if r.ImportPath == "" {
		return r.Name
	}
	return fmt.Sprintf("%q.%s", r.ImportPath, r.Name)
}

type Field struct {
	Name   string    `cbor:"1,keyasint"`
	Kind   FieldKind `cbor:"2,keyasint"`
	Mut    bool      `cbor:"3,keyasint,omitempty"`
	Signer bool      `cbor:"4,keyasint,omitempty"`

	// Ref is the referenced schema of a nested field.
	Ref TypeRef `cbor:"5,keyasint,omitempty"`
}

type OwnerKind uint8

const (
	OwnerKind_UNKNOWN OwnerKind = iota
	OwnerKind_IDENT
	OwnerKind_LITERAL
)

// An Owner is the expression producing the owning program's address. It is
// either a reference to a package-level identifier or an address literal.
type Owner struct {
	Kind    OwnerKind      `cbor:"1,keyasint"`
	Ident   TypeRef        `cbor:"2,keyasint,omitempty"`
	Address capgen.Address `cbor:"3,keyasint,omitempty"`
}

func (o Owner) String() string {
	switch o.Kind {
	case OwnerKind_IDENT:
		return o.Ident.String()
	case OwnerKind_LITERAL:
		return fmt.Sprintf("%q", o.Address.String())
	default:
		return "<unknown>"
	}
}

type Schema struct {
	Name    string   `cbor:"1,keyasint"`
	Owner   Owner    `cbor:"2,keyasint"`
	Payload string   `cbor:"3,keyasint"`
	Fields  []*Field `cbor:"4,keyasint"`
}

// BaseName returns the schema name without its "Accounts" suffix.
func (s *Schema) BaseName() string {
	return strings.TrimSuffix(s.Name, capgen.SchemaSuffix)
}

// BoundName returns the name of the schema's bound aggregate.
func (s *Schema) BoundName() string {
	return s.BaseName() + capgen.BoundSuffix
}

func (s *Schema) Field(name string) *Field {
	for _, field := range s.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// An Arg is one field of a payload struct, with its Go type as written.
type Arg struct {
	Name string `cbor:"1,keyasint"`
	Type string `cbor:"2,keyasint"`
}

type Payload struct {
	Name string         `cbor:"1,keyasint"`
	Tag  capgen.TypeTag `cbor:"2,keyasint"`
	Args []*Arg         `cbor:"3,keyasint,omitempty"`
}

type Set struct {
	Package    string     `cbor:"1,keyasint"`
	ImportPath string     `cbor:"2,keyasint,omitempty"`
	Schemas    []*Schema  `cbor:"3,keyasint,omitempty"`
	Payloads   []*Payload `cbor:"4,keyasint,omitempty"`

	deps map[string]*Set
}

func (s *Set) Schema(name string) *Schema {
	for _, schema := range s.Schemas {
		if schema.Name == name {
			return schema
		}
	}
	return nil
}

func (s *Set) Payload(name string) *Payload {
	for _, payload := range s.Payloads {
		if payload.Name == name {
			return payload
		}
	}
	return nil
}

// AddDependency makes the schemas of dep resolvable from s by import path.
func (s *Set) AddDependency(dep *Set) {
	if s.deps == nil {
		s.deps = make(map[string]*Set)
	}
	s.deps[dep.ImportPath] = dep
}

func (s *Set) Dependency(importPath string) *Set {
	return s.deps[importPath]
}

// Dependencies returns the sets added with AddDependency, ordered by
// import path.
func (s *Set) Dependencies() []*Set {
	out := make([]*Set, 0, len(s.deps))
	for _, key := range slices.Sorted(maps.Keys(s.deps)) {
		out = append(out, s.deps[key])
	}
	return out
}

// Link returns the payload linked to the named schema.
func (s *Set) Link(schemaName string) (*Payload, error) {
	schema := s.Schema(schemaName)
	if schema == nil {
		return nil, &LinkError{Schema: schemaName, Err: ErrSchemaNotFound}
	}
	payload := s.Payload(schema.Payload)
	if payload == nil {
		return nil, &LinkError{
			Schema: schemaName,
			Ref:    TypeRef{Name: schema.Payload},
			Err:    ErrPayloadNotFound,
		}
	}
	return payload, nil
}

// Resolve finds the schema named by ref, as seen from the package of from.
// A nil from means s.
func (s *Set) Resolve(from *Set, ref TypeRef) (*Schema, *Set) {
	if from == nil {
		from = s
	}
	var owner *Set
	switch ref.ImportPath {
	case "", from.ImportPath:
		owner = from
	case s.ImportPath:
		owner = s
	default:
		if owner = from.deps[ref.ImportPath]; owner == nil {
			owner = s.deps[ref.ImportPath]
		}
	}
	if owner == nil {
		return nil, nil
	}
	if schema := owner.Schema(ref.Name); schema != nil {
		return schema, owner
	}
	return nil, nil
}
