package ast

type Var struct {
	Name Name
}

func NewVar(name Name) Expression {
	return Var{Name: name}
}

func (Var) _expression() {}

func (e Var) String() string {
	return e.Name.String()
}
