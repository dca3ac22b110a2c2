package processors

import (
	"github.com/chrisdone/redex/internal/pkg/ast"
	"github.com/chrisdone/redex/internal/pkg/common"
)

// Tracer observes every iteration of a Stepper.
type Tracer interface {
	// Step is called with the expression an iteration starts from.
	Step(n int, expr ast.Expression)
	// Done is called once with the renamed expression that reduction left unchanged.
	Done(n int, expr ast.Expression)
	// Failed is called with the error that ends the run at iteration n: a renaming
	// failure or the step cap.
	Failed(n int, err error)
}

type nopTracer struct{}

func (nopTracer) Step(int, ast.Expression) {}
func (nopTracer) Done(int, ast.Expression) {}
func (nopTracer) Failed(int, error)        {}

type Outcome struct {
	Final ast.Expression
	Steps int
}

type Option func(s *Stepper)

func WithTracer(tracer Tracer) Option {
	return func(s *Stepper) {
		s.tracer = tracer
	}
}

// WithMaxSteps caps the number of iterations. Zero, the default, never stops a
// diverging term.
func WithMaxSteps(n int) Option {
	return func(s *Stepper) {
		s.maxSteps = n
	}
}

func WithFreshSeed(seed ast.Name) Option {
	return func(s *Stepper) {
		s.seed = seed
	}
}

// WithOpenTerms lets free variables of each iteration's input stand for themselves
// instead of failing with common.MissingNameError.
func WithOpenTerms() Option {
	return func(s *Stepper) {
		s.openTerms = true
	}
}

// Stepper drives an expression to weak head normal form one reduction at a time.
type Stepper struct {
	tracer    Tracer
	maxSteps  int
	seed      ast.Name
	openTerms bool
}

func NewStepper(options ...Option) *Stepper {
	s := &Stepper{tracer: nopTracer{}, seed: FreshSeed}
	for _, option := range options {
		option(s)
	}
	return s
}

// Step runs expr to a fixpoint with a Stepper built from options.
func Step(expr ast.Expression, options ...Option) (Outcome, error) {
	return NewStepper(options...).Run(expr)
}

// Next renames expr and reduces it once. done is true when reduction left the
// renamed expression unchanged, in which case next is that renamed expression.
func (s *Stepper) Next(expr ast.Expression) (next ast.Expression, done bool, err error) {
	scope, fresh := Scope{}, NewFresh(s.seed)
	if s.openTerms {
		scope, fresh = RootScope(expr, s.seed)
	}
	renamed, err := Rename(scope, ast.Clone(expr), fresh)
	if err != nil {
		return nil, false, err
	}
	reduced := ExpandWHNF(ast.Clone(renamed))
	if ast.Equal(renamed, reduced) {
		return renamed, true, nil
	}
	return reduced, false, nil
}

// Run iterates Next until a fixpoint, a renaming failure or the step cap.
// Without a cap a diverging term keeps Run busy forever.
func (s *Stepper) Run(expr ast.Expression) (Outcome, error) {
	current := expr
	for n := 1; ; n++ {
		if s.maxSteps > 0 && n > s.maxSteps {
			err := common.StepLimitError{Steps: s.maxSteps}
			s.tracer.Failed(s.maxSteps, err)
			return Outcome{Final: current, Steps: s.maxSteps}, err
		}
		s.tracer.Step(n, current)
		next, done, err := s.Next(current)
		if err != nil {
			s.tracer.Failed(n, err)
			return Outcome{Final: current, Steps: n}, err
		}
		if done {
			s.tracer.Done(n, next)
			return Outcome{Final: next, Steps: n}, nil
		}
		current = next
	}
}
