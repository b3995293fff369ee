package err_schema

import (
	"go.capgen.dev/capgen"
)

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type Deposit struct {
	State capgen.Address
}

//capgen:accounts
type NoOwnerAccounts struct {
	State capgen.Address
}

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type TwoOwnersAccounts struct {
	State capgen.Address
}

//capgen:accounts
//capgen:owner "not an address"
type BadOwnerAccounts struct {
	State capgen.Address
}

//capgen:accounts
//capgen:owner
type EmptyOwnerAccounts struct {
	State capgen.Address
}

//capgen:accounts
//capgen:owner missing.ProgramID
type UnimportedOwnerAccounts struct {
	State capgen.Address
}

//capgen:accounts payload=Other
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type BadArgAccounts struct {
	State capgen.Address
}

//capgen:accounts
//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type TwiceAccounts struct {
	State capgen.Address
}

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type ConflictAccounts struct {
	State capgen.Address
}

type ConflictAccountInfos struct{}

//capgen:data
//capgen:tag [1, 1, 1, 1, 1, 1, 1, 1]
type NoOwnerData struct{}

//capgen:data
//capgen:tag [2, 2, 2, 2, 2, 2, 2, 2]
type TwoOwnersData struct{}

//capgen:data
//capgen:tag [3, 3, 3, 3, 3, 3, 3, 3]
type BadOwnerData struct{}

//capgen:data
//capgen:tag [4, 4, 4, 4, 4, 4, 4, 4]
type EmptyOwnerData struct{}

//capgen:data
//capgen:tag [5, 5, 5, 5, 5, 5, 5, 5]
type UnimportedOwnerData struct{}

//capgen:data
//capgen:tag [6, 6, 6, 6, 6, 6, 6, 6]
type BadArgData struct{}

//capgen:data
//capgen:tag [7, 7, 7, 7, 7, 7, 7, 7]
type TwiceData struct{}

//capgen:data
//capgen:tag [8, 8, 8, 8, 8, 8, 8, 8]
type ConflictData struct{}
