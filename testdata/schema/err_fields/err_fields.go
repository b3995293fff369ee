package err_fields

import (
	"go.capgen.dev/capgen"
)

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type FieldsAccounts struct {
	Typo     capgen.Address `capgen:"mutable"`
	Count    uint64
	Ptr      *capgen.Address
	Handle   capgen.ResourceHandle
	Inner    InnerAccounts `capgen:"mut"`
	Other    capgen.Address `json:"other"`
	Other    capgen.Address
	Owner    capgen.Address
	_        capgen.Address
	InnerAccounts
}

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type InnerAccounts struct {
	Key capgen.Address
}

//capgen:data
//capgen:tag [1, 1, 1, 1, 1, 1, 1, 1]
type FieldsData struct {
	TypeTag uint8
}

//capgen:data
//capgen:tag [2, 2, 2, 2, 2, 2, 2, 2]
type InnerData struct{}
