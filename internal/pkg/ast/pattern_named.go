package ast

type PNamed struct {
	Name Name
}

func NewPNamed(name Name) Pattern {
	return PNamed{Name: name}
}

func (PNamed) _pattern() {}

func (p PNamed) String() string {
	return p.Name.String()
}
