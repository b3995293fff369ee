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

package codegen

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/multiformats/go-multihash"
)

const digestPrefix = "// digest: "

var (
	ErrNotGenerated   = errors.New("codegen: missing generated-code header")
	ErrDigestMismatch = errors.New("codegen: generated file was modified")
)

// Digest returns the base58 sha2-256 multihash of a generated file body.
func Digest(body []byte) string {
	sum, err := multihash.Sum(body, multihash.SHA2_256, -1)
	if err != nil {
		panic(fmt.Sprintf("codegen: multihash: %v", err))
	}
	return sum.B58String()
}

func withHeader(body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(generatedMarker)
	buf.WriteString("\n")
	buf.WriteString(digestPrefix)
	buf.WriteString(Digest(body))
	buf.WriteString("\n\n")
	buf.Write(body)
	return buf.Bytes()
}

// VerifyDigest checks that src still matches the digest recorded in its
// header when it was generated.
func VerifyDigest(src []byte) error {
	marker, rest, ok := bytes.Cut(src, []byte("\n"))
	if !ok || string(marker) != generatedMarker {
		return ErrNotGenerated
	}
	digestLine, body, ok := bytes.Cut(rest, []byte("\n\n"))
	want, hasDigest := bytes.CutPrefix(digestLine, []byte(digestPrefix))
	if !ok || !hasDigest {
		return ErrNotGenerated
	}
	if got := Digest(body); got != string(want) {
		return fmt.Errorf("%w: digest %s, recorded %s", ErrDigestMismatch, got, want)
	}
	return nil
}
