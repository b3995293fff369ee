package p

type Broken struct {
	State capgen.Address
	func
}
