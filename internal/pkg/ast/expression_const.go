package ast

type Const struct {
	Value ConstValue
}

func NewConst(value ConstValue) Expression {
	return Const{Value: value}
}

func NewInt(value int64) Expression {
	return Const{Value: CInt{Value: value}}
}

func (Const) _expression() {}

func (e Const) String() string {
	return e.Value.Code()
}
