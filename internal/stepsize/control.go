package stepsize

import (
	"math"

	"github.com/HannesWell/hipparchus/internal/field"
	"github.com/HannesWell/hipparchus/internal/ode"
)

// unset marks the user initial step as "estimate automatically".
const unset = -1.0

// Control is the step-size policy: step bounds, error tolerances, the
// optional user-supplied initial step, and the current step context.
// Bounds are stored as unsigned magnitudes; direction is supplied by
// callers as a forward flag.
type Control[T field.Element[T]] struct {
	minStep float64
	maxStep float64

	// user supplied initial step, unset when <= 0
	initialStep float64

	scalAbsTol float64
	scalRelTol float64
	vecAbsTol  []float64
	vecRelTol  []float64

	// primary state dimension, established by Validate
	mainSetDimension int

	current    float64
	hasCurrent bool
}

// NewControl builds a policy with scalar tolerances.
func NewControl[T field.Element[T]](minStep, maxStep, absTol, relTol float64) *Control[T] {
	c := &Control[T]{}
	c.SetScalarControl(minStep, maxStep, absTol, relTol)
	c.Reset()
	return c
}

// NewVectorControl builds a policy with per-component tolerances.
func NewVectorControl[T field.Element[T]](minStep, maxStep float64, absTol, relTol []float64) *Control[T] {
	c := &Control[T]{}
	c.SetVectorControl(minStep, maxStep, absTol, relTol)
	c.Reset()
	return c
}

// SetScalarControl stores the step bounds (magnitudes, sign ignored) and
// scalar tolerances, clearing any vector tolerances. As a side effect
// the user initial step reverts to unset, so the next integration start
// estimates it again unless SetInitialStep is called afterwards.
func (c *Control[T]) SetScalarControl(minStep, maxStep, absTol, relTol float64) {
	c.minStep = math.Abs(minStep)
	c.maxStep = math.Abs(maxStep)
	c.initialStep = unset

	c.scalAbsTol = absTol
	c.scalRelTol = relTol
	c.vecAbsTol = nil
	c.vecRelTol = nil
}

// SetVectorControl stores the step bounds and defensive copies of the
// per-component tolerances, zeroing the scalar tolerances. The user
// initial step reverts to unset.
func (c *Control[T]) SetVectorControl(minStep, maxStep float64, absTol, relTol []float64) {
	c.minStep = math.Abs(minStep)
	c.maxStep = math.Abs(maxStep)
	c.initialStep = unset

	c.scalAbsTol = 0
	c.scalRelTol = 0
	c.vecAbsTol = append([]float64(nil), absTol...)
	c.vecRelTol = append([]float64(nil), relTol...)
}

// SetInitialStep fixes the initial step instead of letting the estimator
// guess it. The value must be positive even for backward integration; a
// value outside [minStep, maxStep] is silently ignored and the step will
// be estimated automatically. Downstream callers rely on this fallback,
// so it is deliberately not an error.
func (c *Control[T]) SetInitialStep(step float64) {
	if step < c.minStep || step > c.maxStep {
		c.initialStep = unset
	} else {
		c.initialStep = step
	}
}

// Validate establishes the primary state dimension and checks the vector
// tolerances against it. It must run before any per-component threshold
// indexing, and runs again for every integration start: the dimension is
// recomputed, never cached across runs.
func (c *Control[T]) Validate(state *ode.StateAndDerivative[T]) error {
	c.mainSetDimension = state.PrimaryStateDimension()

	// Either vector present puts the control in vector mode, so both
	// lengths must match; a one-sided pair must fail here, before any
	// per-component indexing.
	if c.vecAbsTol != nil || c.vecRelTol != nil {
		if len(c.vecAbsTol) != c.mainSetDimension {
			return &ode.DimensionError{Expected: c.mainSetDimension, Actual: len(c.vecAbsTol)}
		}
		if len(c.vecRelTol) != c.mainSetDimension {
			return &ode.DimensionError{Expected: c.mainSetDimension, Actual: len(c.vecRelTol)}
		}
	}
	return nil
}

// Threshold is the error scale for primary component i, given the
// current and proposed values of that component.
func (c *Control[T]) Threshold(i int, y, y1 float64) float64 {
	m := math.Max(math.Abs(y), math.Abs(y1))
	if c.vecAbsTol != nil {
		return c.vecAbsTol[i] + c.vecRelTol[i]*m
	}
	return c.scalAbsTol + c.scalRelTol*m
}

func (c *Control[T]) MinStep() float64 { return c.minStep }
func (c *Control[T]) MaxStep() float64 { return c.maxStep }

// MainSetDimension is the primary state dimension established by the
// last Validate call, zero before any validation.
func (c *Control[T]) MainSetDimension() int { return c.mainSetDimension }

// Reset clears the current step context to "no previous step" and seeds
// a provisional step size at the geometric mean of the bounds, a
// scale-insensitive default used only until the first real estimate.
func (c *Control[T]) Reset() {
	c.hasCurrent = false
	c.current = math.Sqrt(c.minStep * c.maxStep)
}

// CurrentStep reports the cached signed step and whether it came from an
// actual estimate rather than the provisional seed.
func (c *Control[T]) CurrentStep() (float64, bool) {
	return c.current, c.hasCurrent
}

func (c *Control[T]) SetCurrentStep(h float64) {
	c.current = h
	c.hasCurrent = true
}
