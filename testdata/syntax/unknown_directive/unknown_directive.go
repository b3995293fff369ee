package p

//capgen:accounts
//capgen:ownr ProgramID
type BadAccounts struct{}
