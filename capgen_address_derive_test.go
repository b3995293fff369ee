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
	"bytes"
	"testing"

	"go.capgen.dev/capgen"
	"go.capgen.dev/capgen/internal/testutil"
)

var upgradeableLoader = capgen.MustParseAddress("BPFLoaderUpgradeab1e11111111111111111111111")

func TestCreateProgramAddress(t *testing.T) {
	t.Parallel()

	seedKey := capgen.MustParseAddress("SeedPubey1111111111111111111111111111111111")
	tests := []struct {
		seeds capgen.Seeds
		want  string
	}{
		{capgen.Seeds{[]byte(""), {1}}, "BwqrghZA2htAcqq8dzP1WDAhTXYTYWj7CHxF5j7TDBAe"},
		{capgen.Seeds{[]byte("☉"), {0}}, "13yWmRpaTR4r5nAktwLqMpRNr28tnVUZw26rTvPSSB19"},
		{capgen.Seeds{[]byte("Talking"), []byte("Squirrels")}, "2fnQrngrQT4SeLcdToJAD96phoEjNL2man2kfRLCASVk"},
		{capgen.Seeds{seedKey[:], {1}}, "976ymqVnfE32QFe6NfGDctSvVa36LWnvYxhU6G2232YL"},
	}
	for _, test := range tests {
		addr, err := capgen.CreateProgramAddress(test.seeds, upgradeableLoader)
		if testutil.ExpectNoError(t, err); err == nil {
			testutil.ExpectEq(t, test.want, addr.String())
		}
	}
}

func TestCreateProgramAddressOnCurve(t *testing.T) {
	t.Parallel()

	_, err := capgen.CreateProgramAddress(capgen.Seeds{[]byte("seed1")}, upgradeableLoader)
	testutil.ExpectErrorIs(t, capgen.ErrInvalidSeeds, err)
}

func TestCreateProgramAddressLimits(t *testing.T) {
	t.Parallel()

	tooLong := bytes.Repeat([]byte{1}, capgen.MaxSeedLen+1)
	_, err := capgen.CreateProgramAddress(capgen.Seeds{tooLong}, upgradeableLoader)
	testutil.ExpectErrorIs(t, capgen.ErrMaxSeedLenExceeded, err)

	maxLen := bytes.Repeat([]byte{1}, capgen.MaxSeedLen)
	_, err = capgen.CreateProgramAddress(capgen.Seeds{maxLen}, upgradeableLoader)
	if err != nil {
		testutil.ExpectErrorIs(t, capgen.ErrInvalidSeeds, err)
	}

	tooMany := make(capgen.Seeds, capgen.MaxSeeds+1)
	_, err = capgen.CreateProgramAddress(tooMany, upgradeableLoader)
	testutil.ExpectErrorIs(t, capgen.ErrMaxSeedsExceeded, err)
}

func TestFindProgramAddress(t *testing.T) {
	t.Parallel()

	addr, bump, err := capgen.FindProgramAddress(capgen.Seeds{[]byte("seed1")}, upgradeableLoader)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "7Jci7jrRiGQAqRZHJ8dQzE9e4Th5x2FbheoMgavV5rKY", addr.String())
	testutil.ExpectEq(t, uint8(255), bump)

	addr, bump, err = capgen.FindProgramAddress(capgen.Seeds{[]byte("liq_sol")}, marinadeBytes)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "4QFQXLVLzdkse88vcK16928fzue11SpJdKJP5SzLP1nP", addr.String())
	testutil.ExpectEq(t, uint8(253), bump)

	derived, err := capgen.CreateProgramAddress(capgen.Seeds{[]byte("liq_sol"), {bump}}, marinadeBytes)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, addr, derived)
}

func TestFindProgramAddressSeedLimit(t *testing.T) {
	t.Parallel()

	_, _, err := capgen.FindProgramAddress(make(capgen.Seeds, capgen.MaxSeeds), upgradeableLoader)
	testutil.ExpectErrorIs(t, capgen.ErrMaxSeedsExceeded, err)
}
