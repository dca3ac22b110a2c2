package ast

import "fmt"

// Identifier names a data constructor.
type Identifier string

// Name tags a bound variable. Two names are the same variable iff they are equal.
type Name uint64

func (n Name) String() string {
	return fmt.Sprintf("v%d", n)
}
