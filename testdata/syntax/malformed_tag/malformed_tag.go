package p

import "go.capgen.dev/capgen"

//capgen:accounts
//capgen:owner ProgramID
type BadAccounts struct {
	State capgen.Address `json:"state" capgen:mut`
}
