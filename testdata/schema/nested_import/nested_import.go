package nested_import

import (
	cg "go.capgen.dev/capgen"
	lp "testdata.capgen.dev/pool"
)

//capgen:accounts
//capgen:owner lp.ProgramID
type SwapAccounts struct {
	User cg.Address `capgen:"mut,signer"`
	Pool lp.PoolAccounts
}

//capgen:data
//capgen:tag [0, 0, 0, 0, 0, 0, 0, 1]
type SwapData struct {
	Amount uint64
	MinOut uint64
}
