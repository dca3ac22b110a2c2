package ast

type Pattern interface {
	String() string
	_pattern()
}
