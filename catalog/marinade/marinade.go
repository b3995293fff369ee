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

// Package marinade declares capability schemas for the Marinade liquid
// staking program. The adapters in capgen_gen.go are generated from the
// declarations in this package.
package marinade

import (
	"go.capgen.dev/capgen"
)

//go:generate go run go.capgen.dev/capgen/cmd/capgen generate .

// ProgramID is the address of the deployed Marinade program.
var ProgramID = capgen.MustParseAddress("MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD")

// Payloads returns a registry of every payload type in this package,
// keyed by type tag.
func Payloads() (*capgen.TagRegistry, error) {
	return capgen.NewTagRegistry(
		DepositData{},
		LiquidUnstakeData{},
		MergeStakesData{},
		InitializeData{},
		LiqPoolInitializeData{},
		AddLiquidityData{},
	)
}
