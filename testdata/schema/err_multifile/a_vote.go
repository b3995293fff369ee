package err_multifile

import (
	"go.capgen.dev/capgen"
)

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type VoteAccounts struct {
	Voter capgen.Address `capgen:"signer"`
}

//capgen:data
//capgen:tag [7, 7, 7, 7, 7, 7, 7, 7]
type VoteData struct{}
