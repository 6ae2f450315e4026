package integrators

import (
	"github.com/HannesWell/hipparchus/internal/field"
	"github.com/HannesWell/hipparchus/internal/ode"
)

var (
	rk4B2 = []float64{0.5}
	rk4B3 = []float64{0, 0.5}
	rk4B4 = []float64{0, 0, 1}
	rk4C  = []float64{1.0 / 6.0, 1.0 / 3.0, 1.0 / 3.0, 1.0 / 6.0}
)

// RK4 is the classical fixed-step fourth-order Runge-Kutta formula.
type RK4[T field.Element[T]] struct{}

func NewRK4[T field.Element[T]]() *RK4[T] {
	return &RK4[T]{}
}

func (r *RK4[T]) Step(sys ode.System[T], t T, y []T, h T) ([]T, error) {
	k := make([][]T, 4)

	var err error
	k[0], err = sys.Derive(t, y)
	if err != nil {
		return nil, err
	}

	half := t.Add(h.Scale(0.5))
	k[1], err = sys.Derive(half, combine(y, h, rk4B2, k[:1]))
	if err != nil {
		return nil, err
	}
	k[2], err = sys.Derive(half, combine(y, h, rk4B3, k[:2]))
	if err != nil {
		return nil, err
	}
	k[3], err = sys.Derive(t.Add(h), combine(y, h, rk4B4, k[:3]))
	if err != nil {
		return nil, err
	}

	return combine(y, h, rk4C, k), nil
}
