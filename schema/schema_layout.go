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

package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSchemaNotFound  = errors.New("schema not found")
	ErrPayloadNotFound = errors.New("payload not found")
	ErrCycle           = errors.New("nested schemas form a cycle")
)

type LinkError struct {
	Schema string
	Field  string
	Ref    TypeRef
	Err    error
}

func (err *LinkError) Error() string {
	var buf strings.Builder
	buf.WriteString(err.Schema)
	if err.Field != "" {
		buf.WriteString(".")
		buf.WriteString(err.Field)
	}
	buf.WriteString(": ")
	buf.WriteString(err.Err.Error())
	if err.Ref.Name != "" {
		fmt.Fprintf(&buf, " (%s)", err.Ref)
	}
	return buf.String()
}

func (err *LinkError) Unwrap() error {
	return err.Err
}

// A Slot is one entry of a flattened descriptor list.
type Slot struct {
	Path     []string
	Writable bool
	Signer   bool
}

func (s Slot) String() string {
	mode := "r"
	if s.Writable {
		mode = "w"
	}
	if s.Signer {
		mode += "s"
	}
	return strings.Join(s.Path, ".") + " " + mode
}

// Layout flattens the named schema into the order its descriptors and
// handles are listed in: every address field in declaration order, then
// the layout of every nested field in declaration order.
func (s *Set) Layout(schemaName string) ([]Slot, error) {
	schema := s.Schema(schemaName)
	if schema == nil {
		return nil, &LinkError{Schema: schemaName, Err: ErrSchemaNotFound}
	}
	l := layout{root: s, visiting: make(map[*Schema]bool)}
	if err := l.visit(s, schema, nil); err != nil {
		return nil, err
	}
	return l.slots, nil
}

type layout struct {
	root     *Set
	visiting map[*Schema]bool
	slots    []Slot
}

func (l *layout) visit(from *Set, schema *Schema, prefix []string) error {
	if l.visiting[schema] {
		return &LinkError{Schema: schema.Name, Err: ErrCycle}
	}
	l.visiting[schema] = true
	defer delete(l.visiting, schema)

	for _, field := range schema.Fields {
		if field.Kind != FieldKind_ADDRESS {
			continue
		}
		l.slots = append(l.slots, Slot{
			Path:     appendPath(prefix, field.Name),
			Writable: field.Mut,
			Signer:   field.Signer,
		})
	}
	for _, field := range schema.Fields {
		if field.Kind != FieldKind_NESTED {
			continue
		}
		nested, owner := l.root.Resolve(from, field.Ref)
		if nested == nil {
			return &LinkError{
				Schema: schema.Name,
				Field:  field.Name,
				Ref:    field.Ref,
				Err:    ErrSchemaNotFound,
			}
		}
		if err := l.visit(owner, nested, appendPath(prefix, field.Name)); err != nil {
			return err
		}
	}
	return nil
}

func appendPath(prefix []string, name string) []string {
	path := make([]string, 0, len(prefix)+1)
	path = append(path, prefix...)
	return append(path, name)
}
