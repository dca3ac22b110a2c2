package ast

import "fmt"

type Lambda struct {
	Param Name
	Body  Expression
}

func NewLambda(param Name, body Expression) Expression {
	return Lambda{Param: param, Body: body}
}

func (Lambda) _expression() {}

func (e Lambda) String() string {
	return fmt.Sprintf("\\%s -> %s", e.Param, e.Body)
}
