package empty_schema

import (
	"go.capgen.dev/capgen"
)

// EmptyAccounts touches no resources.
//
//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type EmptyAccounts struct{}

//capgen:data
//capgen:tag [9, 8, 7, 6, 5, 4, 3, 2]
type EmptyData struct{}

var _ capgen.Address
