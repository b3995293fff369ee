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

package capgen

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

const TypeTagSize = 8

// A TypeTag is the fixed 8-byte discriminator written in front of every
// encoded payload and record.
type TypeTag [TypeTagSize]byte

func (t TypeTag) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for ii, b := range t {
		if ii != 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%d", b)
	}
	buf.WriteByte(']')
	return buf.String()
}

type Tagged interface {
	TypeTag() TypeTag
}

// A Payload is the argument data of one operation.
type Payload interface {
	Tagged
}

// TagRegistry maps type tags to the Go types carrying them. Tags are not
// required to be globally unique; a registry refuses to hold two distinct
// types under the same tag, so decoders that discriminate by tag can opt in
// to uniqueness.
type TagRegistry struct {
	mu    sync.RWMutex
	types map[TypeTag]reflect.Type
}

func NewTagRegistry(values ...Tagged) (*TagRegistry, error) {
	r := &TagRegistry{}
	for _, v := range values {
		if err := r.Register(v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *TagRegistry) Register(v Tagged) error {
	tag := v.TypeTag()
	typ := reflect.TypeOf(v)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.types == nil {
		r.types = make(map[TypeTag]reflect.Type)
	}
	if prev, ok := r.types[tag]; ok && prev != typ {
		return &TagCollisionError{Tag: tag, Existing: prev, Conflicting: typ}
	}
	r.types[tag] = typ
	return nil
}

func (r *TagRegistry) Lookup(tag TypeTag) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	typ, ok := r.types[tag]
	return typ, ok
}

// Decode reads the tag at the front of data and decodes the remainder into
// a new value of the registered type.
func (r *TagRegistry) Decode(data []byte, opts ...CallOption) (Tagged, error) {
	if len(data) < TypeTagSize {
		return nil, ErrTagNotFound
	}
	typ, ok := r.Lookup(TypeTag(data[:TypeTagSize]))
	if !ok {
		return nil, fmt.Errorf("%w: no type registered for %v", ErrTagMismatch, TypeTag(data[:TypeTagSize]))
	}
	ptr := reflect.New(typ)
	if err := newCallOptions(opts).codec.Unmarshal(data[TypeTagSize:], ptr.Interface()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDidNotDecode, err)
	}
	return ptr.Elem().Interface().(Tagged), nil
}
