package sample

import (
	_ "embed"
	cg "go.capgen.dev/capgen"
	"go.capgen.dev/capgen/catalog/marinade"
	"example.com/foo/v3"
	"github.com/acme/go-thing"
	lib "example.com/lib/v2"
)

// Plain carries no directives.
type Plain struct {
	X int
}

// SampleAccounts is documented.
//
//capgen:accounts   data=SampleArgs
//capgen:owner marinade.ProgramID
type SampleAccounts struct {
	A, B   cg.Address `capgen:"mut" json:"a"`
	Nested marinade.DepositAccounts
	Ptr    *cg.Address
	Skip   cg.Address `json:"skip"`
	lib.Embedded
}

type (
	//capgen:data
	//capgen:tag [1, 2, 3, 4, 5, 6, 7, 8]
	SampleArgs struct {
		Amount uint64
	}

	//capgen:data
	Alias = SampleArgs
)

func ignored() {}
