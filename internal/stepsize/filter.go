package stepsize

import (
	"math"

	"github.com/HannesWell/hipparchus/internal/ode"
)

// FilterStep bounds a signed step proposed by the error-control loop.
//
// The minimum check uses the field's own Norm, since composite elements
// may carry magnitude outside their real projection. A step below the
// minimum is either replaced by the signed minimum (acceptSmall) or
// fails with a MinimalStepError, which is terminal for the integration.
// The maximum bound clamps two-sided, preserving direction. No
// right-hand-side evaluation happens here.
func (c *Control[T]) FilterStep(h T, forward, acceptSmall bool) (T, error) {
	filtered := h
	if h.Norm() < c.minStep {
		if !acceptSmall {
			var zero T
			return zero, &ode.MinimalStepError{Step: math.Abs(h.Real()), MinStep: c.minStep}
		}
		if forward {
			filtered = h.NewInstance(c.minStep)
		} else {
			filtered = h.NewInstance(-c.minStep)
		}
	}

	if filtered.Real() > c.maxStep {
		filtered = filtered.NewInstance(c.maxStep)
	} else if filtered.Real() < -c.maxStep {
		filtered = filtered.NewInstance(-c.maxStep)
	}

	return filtered, nil
}
