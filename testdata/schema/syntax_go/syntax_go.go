package syntax_go

var x = )
