package ast

type PAny struct{}

func NewPAny() Pattern {
	return PAny{}
}

func (PAny) _pattern() {}

func (PAny) String() string {
	return "_"
}
