package ast

import "golang.org/x/exp/slices"

// Clone returns a deep copy of e that shares no nodes with it.
func Clone(e Expression) Expression {
	switch x := e.(type) {
	case Apply:
		return Apply{Func: Clone(x.Func), Arg: Clone(x.Arg)}
	case Lambda:
		return Lambda{Param: x.Param, Body: Clone(x.Body)}
	case Select:
		cases := slices.Clone(x.Cases)
		for i, c := range cases {
			cases[i] = SelectCase{Pattern: ClonePattern(c.Pattern), Expression: Clone(c.Expression)}
		}
		return Select{Condition: Clone(x.Condition), Cases: cases}
	}
	return e
}

func ClonePattern(p Pattern) Pattern {
	if d, ok := p.(PDataOption); ok {
		values := slices.Clone(d.Values)
		for i, v := range values {
			values[i] = ClonePattern(v)
		}
		return PDataOption{Name: d.Name, Values: values}
	}
	return p
}
