package ast

type Apply struct {
	Func Expression
	Arg  Expression
}

func NewApply(function Expression, arg Expression) Expression {
	return Apply{Func: function, Arg: arg}
}

// NewApplyN builds a left nested application `f a1 a2 ... an`.
func NewApplyN(function Expression, args ...Expression) Expression {
	result := function
	for _, arg := range args {
		result = NewApply(result, arg)
	}
	return result
}

func (Apply) _expression() {}

func (e Apply) String() string {
	fn := e.Func.String()
	if _, ok := e.Func.(Apply); !ok && !atomic(e.Func) {
		fn = "(" + fn + ")"
	}
	return fn + " " + wrap(e.Arg)
}
