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

package borsh_test

import (
	"testing"

	"go.capgen.dev/capgen/encoding/borsh"
	"go.capgen.dev/capgen/internal/testutil"
)

type mergeArgs struct {
	DestinationStakeIndex uint32
	SourceStakeIndex      uint32
	ValidatorIndex        uint32
}

type depositArgs struct {
	Lamports uint64
	Memo     string
	Referral bool
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	buf, err := borsh.Marshal(mergeArgs{
		DestinationStakeIndex: 1,
		SourceStakeIndex:      0x0203,
		ValidatorIndex:        7,
	})
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{
		1, 0, 0, 0,
		3, 2, 0, 0,
		7, 0, 0, 0,
	}, buf)

	buf, err = borsh.Marshal(depositArgs{Lamports: 1000, Memo: "hi", Referral: true})
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{
		232, 3, 0, 0, 0, 0, 0, 0,
		2, 0, 0, 0, 'h', 'i',
		1,
	}, buf)
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	want := depositArgs{Lamports: 1 << 40, Memo: "liquid", Referral: false}
	buf, err := borsh.Marshal(want)
	testutil.AssertNoError(t, err)

	var got depositArgs
	testutil.AssertNoError(t, borsh.Unmarshal(buf, &got))
	testutil.ExpectEq(t, want, got)

	var short mergeArgs
	testutil.AssertError(t, borsh.Unmarshal([]byte{1, 0, 0}, &short))
}
