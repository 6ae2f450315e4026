package ode

import "github.com/HannesWell/hipparchus/internal/field"

// Derivatives is a bare right-hand side: y' = f(t, y). Implementations
// may fail, typically with ErrEvaluationsExceeded from a budget wrapper.
type Derivatives[T field.Element[T]] func(t T, y []T) ([]T, error)

// System is an ODE with a known state dimension.
type System[T field.Element[T]] interface {
	// Derive evaluates the right-hand side at (t, y).
	Derive(t T, y []T) ([]T, error)

	// Dimension is the expected state vector length.
	Dimension() int
}

// Evaluations counts right-hand-side calls against a budget. A max of
// zero or less means unlimited.
type Evaluations struct {
	count int
	max   int
}

func NewEvaluations(max int) *Evaluations {
	return &Evaluations{max: max}
}

// Increment consumes one evaluation, failing once the budget is spent.
func (e *Evaluations) Increment() error {
	if e.max > 0 && e.count >= e.max {
		return &EvaluationsError{Max: e.max}
	}
	e.count++
	return nil
}

func (e *Evaluations) Count() int { return e.count }

// Budgeted wraps a system's right-hand side with an evaluation counter.
func Budgeted[T field.Element[T]](sys System[T], evals *Evaluations) Derivatives[T] {
	return func(t T, y []T) ([]T, error) {
		if err := evals.Increment(); err != nil {
			return nil, err
		}
		return sys.Derive(t, y)
	}
}
