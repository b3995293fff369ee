package pool

import (
	"go.capgen.dev/capgen"
)

var ProgramID = capgen.MustParseAddress("MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD")

//capgen:accounts
//capgen:owner ProgramID
type PoolAccounts struct {
	Mint capgen.Address `capgen:"mut"`
	Leg  capgen.Address
}

//capgen:data
//capgen:tag [10, 20, 30, 40, 50, 60, 70, 80]
type PoolData struct{}
