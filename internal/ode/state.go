package ode

import "github.com/HannesWell/hipparchus/internal/field"

// StateAndDerivative bundles a point of the solution: time, state vector
// and its time derivative. The state is split into a primary block, the
// part under step-size error control, and zero or more secondary blocks
// appended for extended equations.
type StateAndDerivative[T field.Element[T]] struct {
	time         T
	primary      []T
	primaryDot   []T
	secondary    [][]T
	secondaryDot [][]T
}

// NewStateAndDerivative builds a state with a primary block only.
// The slices are not copied; callers hand over ownership.
func NewStateAndDerivative[T field.Element[T]](t T, y, yDot []T) *StateAndDerivative[T] {
	return &StateAndDerivative[T]{time: t, primary: y, primaryDot: yDot}
}

// AppendSecondary adds a secondary equation block. Secondary components
// appear in the complete state after the primary block, in insertion
// order, and are ignored by tolerance checks.
func (s *StateAndDerivative[T]) AppendSecondary(y, yDot []T) {
	s.secondary = append(s.secondary, y)
	s.secondaryDot = append(s.secondaryDot, yDot)
}

func (s *StateAndDerivative[T]) Time() T { return s.time }

// PrimaryStateDimension is the length of the primary block.
func (s *StateAndDerivative[T]) PrimaryStateDimension() int { return len(s.primary) }

// CompleteDimension is the length of the complete state.
func (s *StateAndDerivative[T]) CompleteDimension() int {
	n := len(s.primary)
	for _, sec := range s.secondary {
		n += len(sec)
	}
	return n
}

// CompleteState returns a fresh slice holding the primary block followed
// by the secondary blocks.
func (s *StateAndDerivative[T]) CompleteState() []T {
	return flatten(s.primary, s.secondary)
}

// CompleteDerivative returns a fresh slice holding the derivative of the
// complete state.
func (s *StateAndDerivative[T]) CompleteDerivative() []T {
	return flatten(s.primaryDot, s.secondaryDot)
}

func flatten[T any](primary []T, secondary [][]T) []T {
	out := make([]T, 0, len(primary))
	out = append(out, primary...)
	for _, sec := range secondary {
		out = append(out, sec...)
	}
	return out
}
