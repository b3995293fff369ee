package err_link

import (
	"go.capgen.dev/capgen"
	ext "testdata.capgen.dev/absent"
)

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type OrphanAccounts struct {
	State capgen.Address
}

//capgen:accounts data=Plain
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type PlainAccounts struct {
	State capgen.Address
}

type Plain struct{}

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type RefsAccounts struct {
	Missing  MissingAccounts
	NotOne   Plain
	External ext.PoolAccounts
}

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type AAccounts struct {
	B BAccounts
}

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type BAccounts struct {
	A AAccounts
}

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type SelfAccounts struct {
	Key  capgen.Address
	Self SelfAccounts
}

//capgen:data
//capgen:tag [1, 1, 1, 1, 1, 1, 1, 1]
type RefsData struct{}

//capgen:data
//capgen:tag [2, 2, 2, 2, 2, 2, 2, 2]
type AData struct{}

//capgen:data
//capgen:tag [3, 3, 3, 3, 3, 3, 3, 3]
type BData struct{}

//capgen:data
//capgen:tag [4, 4, 4, 4, 4, 4, 4, 4]
type SelfData struct{}
