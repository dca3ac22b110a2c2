package ast

// Constructor is an uninterpreted data tag such as `Just` or `Nothing`.
// Applying it to arguments never reduces.
type Constructor struct {
	Name Identifier
}

func NewConstructor(name Identifier) Expression {
	return Constructor{Name: name}
}

func (Constructor) _expression() {}

func (e Constructor) String() string {
	return string(e.Name)
}
