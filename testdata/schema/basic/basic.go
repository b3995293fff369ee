package basic

import (
	"go.capgen.dev/capgen"
)

// DepositAccounts lists the resources of a deposit.
//
//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type DepositAccounts struct {
	State        capgen.Address `capgen:"mut"`
	ReservePDA   capgen.Address `capgen:"mut"`
	TransferFrom capgen.Address `capgen:"mut,signer"`
	Authority    capgen.Address `capgen:"signer"`
	TokenProgram capgen.Address
}

//capgen:data
//capgen:tag [242, 35, 198, 137, 82, 225, 242, 182]
type DepositData struct {
	Lamports uint64
}
