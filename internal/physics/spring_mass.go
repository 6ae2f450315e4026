package physics

import (
	"github.com/HannesWell/hipparchus/internal/field"
)

// SpringMass is the undamped harmonic oscillator.
// State: [x, v]
// Equations:
//
//	dx/dt = v
//	dv/dt = -(k/m) x
type SpringMass[T field.Element[T]] struct {
	Stiffness float64
	Mass      float64
}

func NewSpringMass[T field.Element[T]]() *SpringMass[T] {
	return &SpringMass[T]{Stiffness: 1.0, Mass: 1.0}
}

func (s *SpringMass[T]) Dimension() int { return 2 }

func (s *SpringMass[T]) Derive(_ T, y []T) ([]T, error) {
	return []T{y[1], y[0].Scale(-s.Stiffness / s.Mass)}, nil
}

// Energy is the Hamiltonian, conserved by the exact flow.
func (s *SpringMass[T]) Energy(y []T) float64 {
	x, v := y[0].Real(), y[1].Real()
	return 0.5*s.Mass*v*v + 0.5*s.Stiffness*x*x
}
