package physics

import (
	"github.com/HannesWell/hipparchus/internal/field"
)

// VanDerPol implements the Van der Pol oscillator.
// State: [x, y] where y = dx/dt
// Equations:
//
//	dx/dt = y
//	dy/dt = μ(1 - x²)y - x
type VanDerPol[T field.Element[T]] struct {
	Mu float64 // nonlinearity parameter
}

func NewVanDerPol[T field.Element[T]]() *VanDerPol[T] {
	return &VanDerPol[T]{Mu: 1.0} // classic value for the limit cycle
}

func (v *VanDerPol[T]) Dimension() int { return 2 }

func (v *VanDerPol[T]) Derive(_ T, s []T) ([]T, error) {
	x, y := s[0], s[1]

	one := x.NewInstance(1)
	dy := one.Subtract(x.Multiply(x)).Multiply(y).Scale(v.Mu).Subtract(x)

	return []T{y, dy}, nil
}
