package processors

import "github.com/chrisdone/redex/internal/pkg/ast"

// ExpandWHNF performs at most one call-by-name reduction at the head of expr.
// Lambdas, constructor applications and case expressions are returned as is.
func ExpandWHNF(expr ast.Expression) ast.Expression {
	e, ok := expr.(ast.Apply)
	if !ok {
		return expr
	}
	switch fn := e.Func.(type) {
	case ast.Lambda:
		return Substitute(fn.Param, fn.Body, e.Arg)
	case ast.Constructor:
		return e
	default:
		return ast.Apply{Func: ExpandWHNF(e.Func), Arg: e.Arg}
	}
}

// Substitute replaces every occurrence of target in body with its own copy of
// replacement. Binders are assumed to be unique, so no capture check is made.
func Substitute(target ast.Name, body ast.Expression, replacement ast.Expression) ast.Expression {
	switch e := body.(type) {
	case ast.Var:
		if e.Name == target {
			return ast.Clone(replacement)
		}
		return e
	case ast.Apply:
		return ast.Apply{
			Func: Substitute(target, e.Func, replacement),
			Arg:  Substitute(target, e.Arg, replacement),
		}
	case ast.Lambda:
		return ast.Lambda{Param: e.Param, Body: Substitute(target, e.Body, replacement)}
	}
	return body
}
