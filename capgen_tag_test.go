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

package capgen_test

import (
	"errors"
	"reflect"
	"testing"

	"go.capgen.dev/capgen"
	"go.capgen.dev/capgen/internal/testutil"
)

type pingData struct {
	Nonce uint32
}

func (pingData) TypeTag() capgen.TypeTag {
	return capgen.TypeTag{1, 2, 3, 4, 5, 6, 7, 8}
}

type pongData struct {
	Nonce uint32
}

func (pongData) TypeTag() capgen.TypeTag {
	return capgen.TypeTag{8, 7, 6, 5, 4, 3, 2, 1}
}

// Shares its tag with pingData.
type echoData struct {
	Text string
}

func (echoData) TypeTag() capgen.TypeTag {
	return capgen.TypeTag{1, 2, 3, 4, 5, 6, 7, 8}
}

func TestTypeTagString(t *testing.T) {
	t.Parallel()

	testutil.ExpectEq(t, "[1, 2, 3, 4, 5, 6, 7, 8]", pingData{}.TypeTag().String())
	testutil.ExpectEq(t, "[0, 0, 0, 0, 0, 0, 0, 0]", capgen.TypeTag{}.String())
}

func TestTagRegistry(t *testing.T) {
	t.Parallel()

	reg, err := capgen.NewTagRegistry(pingData{}, pongData{})
	testutil.AssertNoError(t, err)

	typ, ok := reg.Lookup(pongData{}.TypeTag())
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, reflect.TypeOf(pongData{}), typ)

	_, ok = reg.Lookup(capgen.TypeTag{})
	testutil.ExpectFalse(t, ok)

	// Registering the same type twice is allowed.
	testutil.ExpectNoError(t, reg.Register(pingData{}))
}

func TestTagRegistryCollision(t *testing.T) {
	t.Parallel()

	_, err := capgen.NewTagRegistry(pingData{}, echoData{})
	var collision *capgen.TagCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected *TagCollisionError, got %v", err)
	}
	testutil.ExpectEq(t, pingData{}.TypeTag(), collision.Tag)
	testutil.ExpectEq(t, reflect.TypeOf(pingData{}), collision.Existing)
	testutil.ExpectEq(t, reflect.TypeOf(echoData{}), collision.Conflicting)
}

func TestTagRegistryDecode(t *testing.T) {
	t.Parallel()

	reg, err := capgen.NewTagRegistry(pingData{}, pongData{})
	testutil.AssertNoError(t, err)

	buf, err := capgen.EncodeRecord(pongData{Nonce: 0x01020304})
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{8, 7, 6, 5, 4, 3, 2, 1, 4, 3, 2, 1}, buf)

	decoded, err := reg.Decode(buf)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, capgen.Tagged(pongData{Nonce: 0x01020304}), decoded)

	_, err = reg.Decode(buf[:4])
	testutil.ExpectErrorIs(t, capgen.ErrTagNotFound, err)

	_, err = reg.Decode(append([]byte{9, 9, 9, 9, 9, 9, 9, 9}, buf[8:]...))
	testutil.ExpectErrorIs(t, capgen.ErrTagMismatch, err)

	_, err = reg.Decode(buf[:10])
	testutil.ExpectErrorIs(t, capgen.ErrDidNotDecode, err)
}
