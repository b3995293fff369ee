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

package marinade

import (
	"go.capgen.dev/capgen"
)

// Deposit stakes lamports from TransferFrom and mints mSOL to MintTo.
//
//capgen:accounts
//capgen:owner ProgramID
type DepositAccounts struct {
	State                   capgen.Address `capgen:"mut"`
	MsolMint                capgen.Address `capgen:"mut"`
	LiqPoolSolLegPDA        capgen.Address `capgen:"mut"`
	LiqPoolMsolLeg          capgen.Address `capgen:"mut"`
	LiqPoolMsolLegAuthority capgen.Address
	ReservePDA              capgen.Address `capgen:"mut"`
	TransferFrom            capgen.Address `capgen:"mut,signer"`
	MintTo                  capgen.Address `capgen:"mut"`
	MsolMintAuthority       capgen.Address
	SystemProgram           capgen.Address
	TokenProgram            capgen.Address
}

//capgen:data
//capgen:tag [242, 35, 198, 137, 82, 225, 242, 182]
type DepositData struct {
	Lamports uint64
}

// LiquidUnstake swaps mSOL for lamports through the liquidity pool, paying
// a fee to the treasury.
//
//capgen:accounts
//capgen:owner ProgramID
type LiquidUnstakeAccounts struct {
	State                capgen.Address `capgen:"mut"`
	MsolMint             capgen.Address `capgen:"mut"`
	LiqPoolSolLegPDA     capgen.Address `capgen:"mut"`
	LiqPoolMsolLeg       capgen.Address `capgen:"mut"`
	TreasuryMsolAccount  capgen.Address `capgen:"mut"`
	GetMsolFrom          capgen.Address `capgen:"mut"`
	GetMsolFromAuthority capgen.Address `capgen:"signer"`
	TransferSolTo        capgen.Address `capgen:"mut"`
	SystemProgram        capgen.Address
	TokenProgram         capgen.Address
}

//capgen:data
//capgen:tag [30, 30, 119, 240, 191, 227, 12, 16]
type LiquidUnstakeData struct {
	MsolAmount uint64
}

//capgen:accounts
//capgen:owner ProgramID
type MergeStakesAccounts struct {
	State                  capgen.Address `capgen:"mut"`
	StakeList              capgen.Address `capgen:"mut"`
	ValidatorList          capgen.Address `capgen:"mut"`
	DestinationStake       capgen.Address `capgen:"mut"`
	SourceStake            capgen.Address `capgen:"mut"`
	StakeDepositAuthority  capgen.Address
	StakeWithdrawAuthority capgen.Address
	OperationalSolAccount  capgen.Address `capgen:"mut"`
	Clock                  capgen.Address
	StakeHistory           capgen.Address
	StakeProgram           capgen.Address
}

//capgen:data
//capgen:tag [216, 36, 141, 225, 243, 78, 125, 237]
type MergeStakesData struct {
	DestinationStakeIndex uint32
	SourceStakeIndex      uint32
	ValidatorIndex        uint32
}

// LiqPoolInitializeAccounts are the liquidity pool resources set up by
// Initialize.
//
//capgen:accounts
//capgen:owner ProgramID
type LiqPoolInitializeAccounts struct {
	LPMint    capgen.Address
	SolLegPDA capgen.Address
	MsolLeg   capgen.Address
}

//capgen:data
//capgen:tag [1, 2, 3, 4, 5, 6, 7, 8]
type LiqPoolInitializeData struct{}

//capgen:accounts
//capgen:owner ProgramID
type InitializeAccounts struct {
	CreatorAuthority      capgen.Address `capgen:"signer"`
	State                 capgen.Address `capgen:"mut"`
	ReservePDA            capgen.Address
	StakeList             capgen.Address `capgen:"mut"`
	ValidatorList         capgen.Address `capgen:"mut"`
	MsolMint              capgen.Address
	OperationalSolAccount capgen.Address
	LiqPool               LiqPoolInitializeAccounts
	TreasuryMsolAccount   capgen.Address
	Clock                 capgen.Address
	Rent                  capgen.Address
}

//capgen:data
//capgen:tag [175, 175, 109, 31, 13, 152, 155, 237]
type InitializeData struct {
	RewardsFee    uint32
	MaxStakeCount uint32
	MaxValidators uint32
}

//capgen:accounts
//capgen:owner ProgramID
type AddLiquidityAccounts struct {
	State            capgen.Address `capgen:"mut"`
	LPMint           capgen.Address `capgen:"mut"`
	LPMintAuthority  capgen.Address
	LiqPoolMsolLeg   capgen.Address
	LiqPoolSolLegPDA capgen.Address `capgen:"mut"`
	TransferFrom     capgen.Address `capgen:"mut,signer"`
	MintTo           capgen.Address `capgen:"mut"`
	SystemProgram    capgen.Address
	TokenProgram     capgen.Address
}

//capgen:data
//capgen:tag [181, 157, 89, 67, 143, 182, 52, 72]
type AddLiquidityData struct {
	Lamports uint64
}
