package err_payload

import (
	"go.capgen.dev/capgen"
)

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type PayAccounts struct {
	State capgen.Address
}

//capgen:data
type PayData struct{}

//capgen:data
//capgen:tag [1, 2, 3]
type ShortData struct{}

//capgen:data
//capgen:tag [1, 2, 3, 4, 5, 6, 7, 256]
type WideData struct{}

//capgen:data
//capgen:tag 0x0102030405060708
type UnbracketedData struct{}

//capgen:data
//capgen:tag
type EmptyData struct{}

//capgen:data
//capgen:tag [1, 1, 1, 1, 1, 1, 1, 1]
//capgen:tag [2, 2, 2, 2, 2, 2, 2, 2]
type TwoTagsData struct{}

//capgen:data
//capgen:data
//capgen:tag [3, 3, 3, 3, 3, 3, 3, 3]
type TwiceData struct{}

//capgen:data
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
//capgen:tag [4, 4, 4, 4, 4, 4, 4, 4]
type OwnedData struct{}

//capgen:data
//capgen:tag [5, 5, 5, 5, 5, 5, 5, 5]
type ScalarData uint64

//capgen:accounts
//capgen:data
type BothAccounts struct{}

//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type Stray struct{}
