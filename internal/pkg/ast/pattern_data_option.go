package ast

import (
	"github.com/samber/lo"
	"strings"
)

// PDataOption matches a constructor by name and its arguments positionally.
type PDataOption struct {
	Name   Identifier
	Values []Pattern
}

func NewPDataOption(name Identifier, values ...Pattern) Pattern {
	return PDataOption{Name: name, Values: values}
}

func (PDataOption) _pattern() {}

func (p PDataOption) String() string {
	if len(p.Values) == 0 {
		return string(p.Name)
	}
	values := lo.Map(p.Values, func(v Pattern, _ int) string {
		if d, ok := v.(PDataOption); ok && len(d.Values) > 0 {
			return "(" + v.String() + ")"
		}
		return v.String()
	})
	return string(p.Name) + " " + strings.Join(values, " ")
}
