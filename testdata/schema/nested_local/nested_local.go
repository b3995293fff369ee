package nested_local

import (
	"go.capgen.dev/capgen"
)

var ProgramID = capgen.MustParseAddress("MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD")

//capgen:accounts
//capgen:owner ProgramID
type InitializeAccounts struct {
	Creator  capgen.Address `capgen:"signer"`
	Pool     PoolAccounts
	State    capgen.Address `capgen:"mut"`
	Treasury capgen.Address
}

//capgen:accounts data=PoolArgs
//capgen:owner ProgramID
type PoolAccounts struct {
	Mint   capgen.Address `capgen:"mut"`
	Legs   LegAccounts
	SolLeg capgen.Address
}

//capgen:accounts
//capgen:owner ProgramID
type LegAccounts struct {
	Msol capgen.Address `capgen:"mut"`
	Sol  capgen.Address `capgen:"mut"`
}

//capgen:data
//capgen:tag [0xAF, 0xAF, 0x6D, 0x1F, 0x0D, 0x98, 0x9B, 0xED]
type InitializeData struct {
	RewardsFee    uint32
	MaxValidators uint32
}

//capgen:data
//capgen:tag [1, 2, 3, 4, 5, 6, 7, 8]
type PoolArgs struct{}

//capgen:data
//capgen:tag [8, 7, 6, 5, 4, 3, 2, 1]
type LegData struct{}
