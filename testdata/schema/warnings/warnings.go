package warnings

import (
	"go.capgen.dev/capgen"
)

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type TransferAccounts struct {
	From capgen.Address `capgen:"mut,signer,mut"`
	To   capgen.Address `capgen:"mut"`
}

//capgen:data
//capgen:tag [9, 9, 9, 9, 9, 9, 9, 9]
type TransferData struct {
	Amount uint64
}

//capgen:data
//capgen:tag [9, 9, 9, 9, 9, 9, 9, 9]
type LegacyTransferData struct {
	Amount uint64
}
