package processors

import (
	"github.com/chrisdone/redex/internal/pkg/ast"
	"github.com/chrisdone/redex/internal/pkg/common"
	"maps"
	"math"
)

// FreshSeed is the counter value every renaming pass starts from.
const FreshSeed = ast.Name(0)

// Scope maps a name as written to the fresh name it was renamed to.
type Scope map[ast.Name]ast.Name

// extend returns a copy of the scope with one more binding; s is left as is.
func (s Scope) extend(from, to ast.Name) Scope {
	inner := maps.Clone(s)
	if inner == nil {
		inner = Scope{}
	}
	inner[from] = to
	return inner
}

// Fresh hands out names strictly greater than its seed.
type Fresh struct {
	last ast.Name
}

func NewFresh(seed ast.Name) *Fresh {
	return &Fresh{last: seed}
}

// Next fails with common.ErrNamesExhausted instead of wrapping around to names
// that may already be free in the term.
func (f *Fresh) Next() (ast.Name, error) {
	if f.last == math.MaxUint64 {
		return 0, common.ErrNamesExhausted
	}
	f.last++
	return f.last, nil
}

// RootScope binds every free name of expr to itself and returns a counter seeded
// above all of them, so that open terms can be renamed without clashes.
func RootScope(expr ast.Expression, seed ast.Name) (Scope, *Fresh) {
	scope := Scope{}
	for _, name := range ast.FreeNames(expr).Slice() {
		scope[name] = name
		if name > seed {
			seed = name
		}
	}
	return scope, NewFresh(seed)
}

// Rename gives every lambda parameter in expr a fresh name and rewrites variable
// references through scope. Case alternatives are left as written: pattern
// variables are never bound here.
func Rename(scope Scope, expr ast.Expression, fresh *Fresh) (ast.Expression, error) {
	switch e := expr.(type) {
	case ast.Const, ast.Constructor:
		return e, nil
	case ast.Var:
		name, ok := scope[e.Name]
		if !ok {
			return nil, common.MissingNameError{Name: e.Name}
		}
		return ast.Var{Name: name}, nil
	case ast.Apply:
		fn, err := Rename(scope, e.Func, fresh)
		if err != nil {
			return nil, err
		}
		arg, err := Rename(scope, e.Arg, fresh)
		if err != nil {
			return nil, err
		}
		return ast.Apply{Func: fn, Arg: arg}, nil
	case ast.Lambda:
		param, err := fresh.Next()
		if err != nil {
			return nil, err
		}
		body, err := Rename(scope.extend(e.Param, param), e.Body, fresh)
		if err != nil {
			return nil, err
		}
		return ast.Lambda{Param: param, Body: body}, nil
	case ast.Select:
		condition, err := Rename(scope, e.Condition, fresh)
		if err != nil {
			return nil, err
		}
		return ast.Select{Condition: condition, Cases: e.Cases}, nil
	default:
		return nil, common.NewCompilerError("impossible case")
	}
}
