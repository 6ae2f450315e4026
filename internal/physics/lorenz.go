package physics

import (
	"github.com/HannesWell/hipparchus/internal/field"
)

// Lorenz is the Lorenz attractor with the usual chaotic parameters.
type Lorenz[T field.Element[T]] struct {
	Sigma, Rho, Beta float64
}

func NewLorenz[T field.Element[T]]() *Lorenz[T] {
	return &Lorenz[T]{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0}
}

func (l *Lorenz[T]) Dimension() int { return 3 }

func (l *Lorenz[T]) Derive(_ T, s []T) ([]T, error) {
	x, y, z := s[0], s[1], s[2]
	return []T{
		y.Subtract(x).Scale(l.Sigma),
		x.Scale(l.Rho).Subtract(x.Multiply(z)).Subtract(y),
		x.Multiply(y).Subtract(z.Scale(l.Beta)),
	}, nil
}
