package ast

import "fmt"

// Expression is a node of an untyped lambda term. Trees are never mutated once built:
// every transformation returns a new tree that may share unchanged subtrees.
type Expression interface {
	fmt.Stringer
	_expression()
}

// atomic reports whether e prints without surrounding parentheses in any position.
func atomic(e Expression) bool {
	switch e.(type) {
	case Var, Constructor, Const:
		return true
	}
	return false
}

func wrap(e Expression) string {
	if atomic(e) {
		return e.String()
	}
	return "(" + e.String() + ")"
}
