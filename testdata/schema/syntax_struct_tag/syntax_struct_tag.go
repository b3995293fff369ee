package syntax_struct_tag

import (
	"go.capgen.dev/capgen"
)

//capgen:accounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type TagAccounts struct {
	State capgen.Address `capgen:mut`
}
