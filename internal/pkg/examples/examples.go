// Package examples holds the sample programs the command line and the tests step through.
package examples

import (
	"github.com/chrisdone/redex/internal/pkg/ast"
	"github.com/samber/lo"
	"slices"
)

const (
	x ast.Name = iota + 1
	y
	f
	p
)

// Identity is `\x -> x`.
func Identity() ast.Expression {
	return ast.NewLambda(x, ast.NewVar(x))
}

// YCombinator is `\f -> (\x -> f (x x)) (\x -> f (x x))`.
func YCombinator() ast.Expression {
	half := func() ast.Expression {
		return ast.NewLambda(x, ast.NewApply(ast.NewVar(f), ast.NewApply(ast.NewVar(x), ast.NewVar(x))))
	}
	return ast.NewLambda(f, ast.NewApply(half(), half()))
}

var programs = map[string]func() ast.Expression{
	"identity": func() ast.Expression {
		return ast.NewApply(Identity(), ast.NewInt(123))
	},
	"const": func() ast.Expression {
		k := ast.NewLambda(x, ast.NewLambda(y, ast.NewVar(x)))
		return ast.NewApplyN(k, ast.NewInt(1), ast.NewInt(2))
	},
	"leftmost": func() ast.Expression {
		return ast.NewApplyN(ast.NewLambda(p, ast.NewVar(p)), ast.NewConstructor("A"), ast.NewConstructor("B"))
	},
	"just": func() ast.Expression {
		return ast.NewApply(ast.NewConstructor("Just"), ast.NewInt(123))
	},
	"lambda": func() ast.Expression {
		return ast.NewLambda(x, ast.NewApply(ast.NewVar(x), ast.NewVar(x)))
	},
	"shadow": func() ast.Expression {
		// \x shadows \x; the inner body must see the argument 2.
		inner := ast.NewLambda(x, ast.NewVar(x))
		return ast.NewApplyN(ast.NewLambda(x, inner), ast.NewInt(1), ast.NewInt(2))
	},
	"select": func() ast.Expression {
		return ast.NewSelect(
			ast.NewApply(ast.NewConstructor("Just"), ast.NewInt(1)),
			ast.NewSelectCase(ast.NewPDataOption("Just", ast.NewPNamed(x)), ast.NewVar(x)),
			ast.NewSelectCase(ast.NewPAny(), ast.NewInt(0)),
		)
	},
	"omega": func() ast.Expression {
		w := func() ast.Expression { return ast.NewLambda(x, ast.NewApply(ast.NewVar(x), ast.NewVar(x))) }
		return ast.NewApply(w(), w())
	},
	"y-identity": func() ast.Expression {
		return ast.NewApply(YCombinator(), Identity())
	},
	"unbound": func() ast.Expression {
		return ast.NewApply(ast.NewLambda(x, ast.NewVar(y)), ast.NewInt(1))
	},
}

// Lookup builds a fresh copy of the named program.
func Lookup(name string) (ast.Expression, bool) {
	build, ok := programs[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

func Names() []string {
	names := lo.Keys(programs)
	slices.Sort(names)
	return names
}
