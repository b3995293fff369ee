package syntax_directive

import (
	"go.capgen.dev/capgen"
)

//capgen:acounts
//capgen:owner "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD"
type TypoAccounts struct {
	State capgen.Address
}
