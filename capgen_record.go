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
)

// EncodeRecord writes the record's type tag followed by its encoded fields.
func EncodeRecord(v Tagged, opts ...CallOption) ([]byte, error) {
	return encodeTagged(newCallOptions(opts).codec, v)
}

// DecodeRecord checks the type tag at the front of data against T and
// decodes the remainder.
func DecodeRecord[T Tagged](data []byte, opts ...CallOption) (T, error) {
	var out T
	if len(data) < TypeTagSize {
		return out, ErrTagNotFound
	}
	if got, want := TypeTag(data[:TypeTagSize]), out.TypeTag(); got != want {
		return out, fmt.Errorf("%w: got %v, expected %v", ErrTagMismatch, got, want)
	}
	return DecodeRecordUnchecked[T](data, opts...)
}

// DecodeRecordUnchecked decodes data without comparing its type tag.
func DecodeRecordUnchecked[T Tagged](data []byte, opts ...CallOption) (T, error) {
	var out T
	if len(data) < TypeTagSize {
		return out, ErrTagNotFound
	}
	if err := newCallOptions(opts).codec.Unmarshal(data[TypeTagSize:], &out); err != nil {
		return out, fmt.Errorf("%w %T: %v", ErrDidNotDecode, out, err)
	}
	return out, nil
}
