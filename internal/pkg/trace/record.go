package trace

import "github.com/chrisdone/redex/internal/pkg/ast"

type Kind int

const (
	KindStep Kind = iota
	KindDone
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindDone:
		return "done"
	default:
		return "error"
	}
}

type Event struct {
	Kind Kind
	N    int
	Expr ast.Expression
	Err  error
}

// Record keeps every event in memory.
type Record struct {
	Events []Event
}

func (r *Record) Step(n int, expr ast.Expression) {
	r.Events = append(r.Events, Event{Kind: KindStep, N: n, Expr: expr})
}

func (r *Record) Done(n int, expr ast.Expression) {
	r.Events = append(r.Events, Event{Kind: KindDone, N: n, Expr: expr})
}

func (r *Record) Failed(n int, err error) {
	r.Events = append(r.Events, Event{Kind: KindFailed, N: n, Err: err})
}

// Steps returns the expressions iterations started from, in order.
func (r *Record) Steps() []ast.Expression {
	var steps []ast.Expression
	for _, e := range r.Events {
		if e.Kind == KindStep {
			steps = append(steps, e.Expr)
		}
	}
	return steps
}

// Replay sends the recorded events to t in the order they happened.
func (r *Record) Replay(t Tracer) {
	for _, e := range r.Events {
		switch e.Kind {
		case KindStep:
			t.Step(e.N, e.Expr)
		case KindDone:
			t.Done(e.N, e.Expr)
		case KindFailed:
			t.Failed(e.N, e.Err)
		}
	}
}
