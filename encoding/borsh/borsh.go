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

// Package borsh encodes payload fields in the borsh binary format.
package borsh

import (
	bin "github.com/gagliardetto/binary"
)

// Codec implements capgen.Codec.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	return bin.MarshalBorsh(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return bin.UnmarshalBorsh(v, data)
}

func Marshal(v any) ([]byte, error) {
	return Codec{}.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return Codec{}.Unmarshal(data, v)
}
