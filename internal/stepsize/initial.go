package stepsize

import (
	"math"

	"github.com/HannesWell/hipparchus/internal/ode"
)

// InitializeStep produces the first integration step.
//
// When the user fixed an initial step, that value is returned with the
// sign matching the integration direction and rhs is never called.
// Otherwise a rough guess h = 0.01*||y/scale||/||y'/scale|| sizes an
// explicit Euler probe, whose single rhs evaluation yields a second
// derivative estimate; the final step is chosen so that the truncation
// term of the given order is about 0.01, floored against cancellation
// for large start times and clamped into the step bounds.
//
// The scale vector may be shorter than the complete state; components
// beyond its length stay out of the norms. order is the truncation-error
// order of the formula that will consume the step. Errors from rhs are
// propagated unchanged.
func (c *Control[T]) InitializeStep(forward bool, order int, scale []T,
	state0 *ode.StateAndDerivative[T], rhs ode.Derivatives[T]) (float64, error) {

	if c.initialStep > 0 {
		if forward {
			return c.initialStep, nil
		}
		return -c.initialStep, nil
	}

	// very rough first guess: h = 0.01 * ||y/scale|| / ||y'/scale||
	y0 := state0.CompleteState()
	yDot0 := state0.CompleteDerivative()
	yOnScale2 := 0.0
	yDotOnScale2 := 0.0
	for j := range scale {
		ratio := y0[j].Real() / scale[j].Real()
		yOnScale2 += ratio * ratio
		ratioDot := yDot0[j].Real() / scale[j].Real()
		yDotOnScale2 += ratioDot * ratioDot
	}

	h := 1.0e-6
	if yOnScale2 >= 1.0e-10 && yDotOnScale2 >= 1.0e-10 {
		h = 0.01 * math.Sqrt(yOnScale2/yDotOnScale2)
	}
	if !forward {
		h = -h
	}

	// perform an Euler step using the preceding rough guess
	y1 := make([]T, len(y0))
	for j := range y0 {
		y1[j] = y0[j].Add(yDot0[j].Scale(h))
	}
	t1 := state0.Time().Add(state0.Time().NewInstance(h))
	yDot1, err := rhs(t1, y1)
	if err != nil {
		return 0, err
	}

	// estimate the second derivative of the solution
	yDDotOnScale := 0.0
	for j := range scale {
		ratioDotDot := (yDot1[j].Real() - yDot0[j].Real()) / scale[j].Real()
		yDDotOnScale += ratioDotDot * ratioDotDot
	}
	yDDotOnScale = math.Sqrt(yDDotOnScale) / h

	// step size chosen so that
	// h^order * max(||y'/scale||, ||y''/scale||) = 0.01
	maxInv2 := math.Max(math.Sqrt(yDotOnScale2), yDDotOnScale)
	h1 := math.Max(1.0e-6, 0.001*math.Abs(h))
	if maxInv2 >= 1.0e-15 {
		h1 = math.Pow(0.01/maxInv2, 1.0/float64(order))
	}
	h = math.Min(100.0*math.Abs(h), h1)
	// avoids cancellation when computing t1 - t0
	h = math.Max(h, 1.0e-12*math.Abs(state0.Time().Real()))
	if h < c.minStep {
		h = c.minStep
	}
	if h > c.maxStep {
		h = c.maxStep
	}

	if !forward {
		h = -h
	}
	return h, nil
}
