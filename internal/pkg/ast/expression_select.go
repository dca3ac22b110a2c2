package ast

import (
	"fmt"
	"github.com/samber/lo"
	"strings"
)

// Select is a case expression: Condition is matched against each case in order.
type Select struct {
	Condition Expression
	Cases     []SelectCase
}

type SelectCase struct {
	Pattern    Pattern
	Expression Expression
}

func NewSelect(condition Expression, cases ...SelectCase) Expression {
	return Select{Condition: condition, Cases: cases}
}

func NewSelectCase(pattern Pattern, expression Expression) SelectCase {
	return SelectCase{Pattern: pattern, Expression: expression}
}

func (Select) _expression() {}

func (e Select) String() string {
	if len(e.Cases) == 0 {
		return fmt.Sprintf("case %s of {}", e.Condition)
	}
	cases := lo.Map(e.Cases, func(c SelectCase, _ int) string {
		return fmt.Sprintf("%s -> %s", c.Pattern, c.Expression)
	})
	return fmt.Sprintf("case %s of { %s }", e.Condition, strings.Join(cases, "; "))
}
