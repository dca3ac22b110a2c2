package ast

import "github.com/hashicorp/go-set/v2"

// FreeNames returns the names referenced in e that no enclosing lambda or
// pattern binds.
func FreeNames(e Expression) *set.Set[Name] {
	free := set.New[Name](0)
	collectFree(e, set.New[Name](0), free)
	return free
}

func collectFree(e Expression, bound *set.Set[Name], free *set.Set[Name]) {
	switch x := e.(type) {
	case Var:
		if !bound.Contains(x.Name) {
			free.Insert(x.Name)
		}
	case Apply:
		collectFree(x.Func, bound, free)
		collectFree(x.Arg, bound, free)
	case Lambda:
		inner := set.From(bound.Slice())
		inner.Insert(x.Param)
		collectFree(x.Body, inner, free)
	case Select:
		collectFree(x.Condition, bound, free)
		for _, c := range x.Cases {
			inner := set.From(bound.Slice())
			inner.InsertSlice(PatternNames(c.Pattern))
			collectFree(c.Expression, inner, free)
		}
	}
}

// Binders lists lambda parameters of e in pre-order, duplicates included.
func Binders(e Expression) []Name {
	var names []Name
	Walk(e, func(x Expression) {
		if l, ok := x.(Lambda); ok {
			names = append(names, l.Param)
		}
	})
	return names
}

// PatternNames lists the variables a pattern binds, left to right.
func PatternNames(p Pattern) []Name {
	switch x := p.(type) {
	case PNamed:
		return []Name{x.Name}
	case PDataOption:
		var names []Name
		for _, v := range x.Values {
			names = append(names, PatternNames(v)...)
		}
		return names
	}
	return nil
}

// Walk calls f for e and every sub expression of e in pre-order.
func Walk(e Expression, f func(Expression)) {
	f(e)
	switch x := e.(type) {
	case Apply:
		Walk(x.Func, f)
		Walk(x.Arg, f)
	case Lambda:
		Walk(x.Body, f)
	case Select:
		Walk(x.Condition, f)
		for _, c := range x.Cases {
			Walk(c.Expression, f)
		}
	}
}
