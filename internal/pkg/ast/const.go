package ast

import "strconv"

type ConstValue interface {
	EqualsTo(o ConstValue) bool
	Code() string
}

type CInt struct {
	Value int64
}

func (c CInt) EqualsTo(o ConstValue) bool {
	if y, ok := o.(CInt); ok {
		return c.Value == y.Value
	}
	return false
}

func (c CInt) Code() string {
	return strconv.FormatInt(c.Value, 10)
}
