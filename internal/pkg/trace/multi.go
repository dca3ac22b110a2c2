package trace

import "github.com/chrisdone/redex/internal/pkg/ast"

// Tracer mirrors processors.Tracer.
type Tracer interface {
	Step(n int, expr ast.Expression)
	Done(n int, expr ast.Expression)
	Failed(n int, err error)
}

type MultiTracer []Tracer

// Multi forwards every event to each tracer in turn.
func Multi(tracers ...Tracer) MultiTracer {
	return tracers
}

func (m MultiTracer) Step(n int, expr ast.Expression) {
	for _, t := range m {
		t.Step(n, expr)
	}
}

func (m MultiTracer) Done(n int, expr ast.Expression) {
	for _, t := range m {
		t.Done(n, expr)
	}
}

func (m MultiTracer) Failed(n int, err error) {
	for _, t := range m {
		t.Failed(n, err)
	}
}
