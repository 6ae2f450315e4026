package integrators

import (
	"github.com/HannesWell/hipparchus/internal/field"
	"github.com/HannesWell/hipparchus/internal/ode"
)

// Euler is the explicit first-order method. Mostly useful as a baseline.
type Euler[T field.Element[T]] struct{}

func NewEuler[T field.Element[T]]() *Euler[T] {
	return &Euler[T]{}
}

func (e *Euler[T]) Step(sys ode.System[T], t T, y []T, h T) ([]T, error) {
	yDot, err := sys.Derive(t, y)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(y))
	for i := range y {
		out[i] = y[i].Add(h.Multiply(yDot[i]))
	}
	return out, nil
}
