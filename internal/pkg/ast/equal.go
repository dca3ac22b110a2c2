package ast

import "golang.org/x/exp/slices"

// Equal compares two trees structurally.
func Equal(a, b Expression) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Constructor:
		y, ok := b.(Constructor)
		return ok && x.Name == y.Name
	case Const:
		y, ok := b.(Const)
		return ok && x.Value.EqualsTo(y.Value)
	case Apply:
		y, ok := b.(Apply)
		return ok && Equal(x.Func, y.Func) && Equal(x.Arg, y.Arg)
	case Lambda:
		y, ok := b.(Lambda)
		return ok && x.Param == y.Param && Equal(x.Body, y.Body)
	case Select:
		y, ok := b.(Select)
		return ok && Equal(x.Condition, y.Condition) &&
			slices.EqualFunc(x.Cases, y.Cases, func(p, q SelectCase) bool {
				return PatternEqual(p.Pattern, q.Pattern) && Equal(p.Expression, q.Expression)
			})
	}
	return false
}

func PatternEqual(a, b Pattern) bool {
	switch x := a.(type) {
	case PAny:
		_, ok := b.(PAny)
		return ok
	case PNamed:
		y, ok := b.(PNamed)
		return ok && x.Name == y.Name
	case PDataOption:
		y, ok := b.(PDataOption)
		return ok && x.Name == y.Name && slices.EqualFunc(x.Values, y.Values, PatternEqual)
	}
	return false
}
