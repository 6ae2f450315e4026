package integrators

import (
	"context"
	"math"

	"github.com/HannesWell/hipparchus/internal/field"
	"github.com/HannesWell/hipparchus/internal/ode"
	"github.com/HannesWell/hipparchus/internal/stat"
	"github.com/HannesWell/hipparchus/internal/stepsize"
)

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b2 = []float64{1.0 / 5.0}
	b3 = []float64{3.0 / 40.0, 9.0 / 40.0}
	b4 = []float64{44.0 / 45.0, -56.0 / 15.0, 32.0 / 9.0}
	b5 = []float64{19372.0 / 6561.0, -25360.0 / 2187.0, 64448.0 / 6561.0, -212.0 / 729.0}
	b6 = []float64{9017.0 / 3168.0, -355.0 / 33.0, 46732.0 / 5247.0, 49.0 / 176.0, -5103.0 / 18656.0}

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	c = []float64{c1, 0, c3, c4, c5, c6}

	dc = []float64{
		c1 - 5179.0/57600.0,
		0,
		c3 - 7571.0/16695.0,
		c4 - 393.0/640.0,
		c5 - -92097.0/339200.0,
		c6 - 187.0/2100.0,
		-1.0 / 40.0,
	}
)

// order is the truncation-error order fed to the initial-step estimator.
const order = 5

// RK45 is the embedded Dormand-Prince 5(4) pair with step-size control
// delegated to a stepsize.Control policy. The fifth-order solution is
// propagated; the embedded fourth-order formula only sizes the error.
type RK45[T field.Element[T]] struct {
	ctrl           *stepsize.Control[T]
	safety         float64
	minScale       float64
	maxScale       float64
	maxEvaluations int
}

func NewRK45[T field.Element[T]](ctrl *stepsize.Control[T]) *RK45[T] {
	return &RK45[T]{
		ctrl:           ctrl,
		safety:         0.9,
		minScale:       0.2,
		maxScale:       10.0,
		maxEvaluations: 100000,
	}
}

// SetMaxEvaluations bounds the right-hand-side evaluation budget for one
// integration. Zero or negative means unlimited.
func (r *RK45[T]) SetMaxEvaluations(n int) { r.maxEvaluations = n }

func (r *RK45[T]) Control() *stepsize.Control[T] { return r.ctrl }

// RunStats reports what one integration cost.
type RunStats struct {
	Accepted    int
	Rejected    int
	Evaluations int
	// StepSizes summarizes the magnitudes of accepted steps.
	StepSizes *stat.Summary
}

// Run is an integration in progress, advanced one accepted step at a
// time. Obtain it from Start; a Run is not reusable across integrations.
type Run[T field.Element[T]] struct {
	rk    *RK45[T]
	rhs   ode.Derivatives[T]
	evals *ode.Evaluations

	tEnd    float64
	forward bool

	t    T
	y    []T
	yDot []T

	done  bool
	stats RunStats
}

// Start validates the problem against the control policy, estimates the
// first step and returns a Run positioned at t0.
func (r *RK45[T]) Start(sys ode.System[T], t0 T, y0 []T, tEnd float64) (*Run[T], error) {
	if len(y0) != sys.Dimension() {
		return nil, &ode.DimensionError{Expected: sys.Dimension(), Actual: len(y0)}
	}

	evals := ode.NewEvaluations(r.maxEvaluations)
	rhs := ode.Budgeted(sys, evals)

	yDot0, err := rhs(t0, y0)
	if err != nil {
		return nil, err
	}
	state0 := ode.NewStateAndDerivative(t0, y0, yDot0)

	if err := r.ctrl.Validate(state0); err != nil {
		return nil, err
	}
	r.ctrl.Reset()

	n := state0.PrimaryStateDimension()
	scale := make([]T, n)
	for i := 0; i < n; i++ {
		yi := y0[i].Real()
		scale[i] = y0[i].NewInstance(r.ctrl.Threshold(i, yi, yi))
	}

	forward := tEnd > t0.Real()
	h, err := r.ctrl.InitializeStep(forward, order, scale, state0, rhs)
	if err != nil {
		return nil, err
	}
	r.ctrl.SetCurrentStep(h)

	return &Run[T]{
		rk:      r,
		rhs:     rhs,
		evals:   evals,
		tEnd:    tEnd,
		forward: forward,
		t:       t0,
		y:       y0,
		yDot:    yDot0,
		stats:   RunStats{StepSizes: stat.NewSummary()},
	}, nil
}

// Done reports whether the run reached the end of the interval.
func (run *Run[T]) Done() bool { return run.done }

// Time is the current independent variable.
func (run *Run[T]) Time() T { return run.t }

// State is the current point of the solution.
func (run *Run[T]) State() *ode.StateAndDerivative[T] {
	return ode.NewStateAndDerivative(run.t, run.y, run.yDot)
}

// StepSize is the current signed step held by the control policy.
func (run *Run[T]) StepSize() float64 {
	h, _ := run.rk.ctrl.CurrentStep()
	return h
}

func (run *Run[T]) Stats() RunStats {
	s := run.stats
	s.Evaluations = run.evals.Count()
	return s
}

// Advance takes exactly one accepted step, retrying rejected attempts
// with shrunken steps. On failure (budget exhausted, minimal step
// reached) the run keeps its last accepted point.
func (run *Run[T]) Advance() error {
	if run.done {
		return nil
	}

	ctrl := run.rk.ctrl
	main := ctrl.MainSetDimension()

	for {
		hReal, _ := ctrl.CurrentStep()
		isLast := false
		if run.forward {
			if run.t.Real()+hReal >= run.tEnd {
				hReal = run.tEnd - run.t.Real()
				isLast = true
			}
		} else {
			if run.t.Real()+hReal <= run.tEnd {
				hReal = run.tEnd - run.t.Real()
				isLast = true
			}
		}
		h := run.t.NewInstance(hReal)

		k := make([][]T, 7)
		k[0] = run.yDot // FSAL: derivative at the current point

		var err error
		stages := []struct {
			a float64
			b []float64
		}{
			{a2, b2}, {a3, b3}, {a4, b4}, {a5, b5}, {1.0, b6},
		}
		for s, st := range stages {
			ys := combine(run.y, h, st.b, k[:s+1])
			ts := run.t.Add(h.Scale(st.a))
			k[s+1], err = run.rhs(ts, ys)
			if err != nil {
				return err
			}
		}

		yNew := combine(run.y, h, c, k[:6])
		k[6], err = run.rhs(run.t.Add(h), yNew)
		if err != nil {
			return err
		}

		// error norm over the primary components only
		errSum := 0.0
		for i := 0; i < main; i++ {
			acc := run.y[i].NewInstance(0)
			for j, d := range dc {
				acc = acc.Add(k[j][i].Scale(d))
			}
			errEst := h.Multiply(acc).Real()
			ratio := errEst / ctrl.Threshold(i, run.y[i].Real(), yNew[i].Real())
			errSum += ratio * ratio
		}
		errNorm := math.Sqrt(errSum / float64(main))

		if errNorm >= 1.0 {
			// rejected: shrink and retry
			run.stats.Rejected++
			factor := math.Max(run.rk.minScale, run.rk.safety*math.Pow(errNorm, -0.25))
			filtered, ferr := ctrl.FilterStep(h.Scale(factor), run.forward, false)
			if ferr != nil {
				return ferr
			}
			ctrl.SetCurrentStep(filtered.Real())
			continue
		}

		// accepted
		run.t = run.t.Add(h)
		run.y = yNew
		run.yDot = k[6]
		run.stats.Accepted++
		run.stats.StepSizes.Add(math.Abs(hReal))
		run.done = isLast

		if !isLast {
			factor := run.rk.maxScale
			if errNorm > 0 {
				factor = math.Min(run.rk.maxScale, math.Max(run.rk.minScale, run.rk.safety*math.Pow(errNorm, -0.2)))
			}
			filtered, ferr := ctrl.FilterStep(h.Scale(factor), run.forward, true)
			if ferr != nil {
				return ferr
			}
			ctrl.SetCurrentStep(filtered.Real())
		}
		return nil
	}
}

// Integrate runs from (t0, y0) to tEnd and returns the final point plus
// run statistics. Partial results accompany a non-nil error.
func (r *RK45[T]) Integrate(ctx context.Context, sys ode.System[T], t0 T, y0 []T, tEnd float64) (*ode.StateAndDerivative[T], RunStats, error) {
	run, err := r.Start(sys, t0, y0, tEnd)
	if err != nil {
		return nil, RunStats{}, err
	}
	for !run.Done() {
		select {
		case <-ctx.Done():
			return run.State(), run.Stats(), ctx.Err()
		default:
		}
		if err := run.Advance(); err != nil {
			return run.State(), run.Stats(), err
		}
	}
	return run.State(), run.Stats(), nil
}

// combine computes y + h * sum(coeffs_j * ks_j), skipping zero weights.
func combine[T field.Element[T]](y []T, h T, coeffs []float64, ks [][]T) []T {
	out := field.Span(h, len(y))
	for i := range y {
		acc := out[i]
		for j, cj := range coeffs {
			if cj == 0 {
				continue
			}
			acc = acc.Add(ks[j][i].Scale(cj))
		}
		out[i] = y[i].Add(h.Multiply(acc))
	}
	return out
}
