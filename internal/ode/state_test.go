package ode_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/HannesWell/hipparchus/internal/field"
	"github.com/HannesWell/hipparchus/internal/ode"
)

type decay struct{}

func (decay) Dimension() int { return 1 }

func (decay) Derive(_ field.Real, y []field.Real) ([]field.Real, error) {
	return []field.Real{y[0].Scale(-1)}, nil
}

var _ = Describe("StateAndDerivative", func() {
	newState := func() *ode.StateAndDerivative[field.Real] {
		s := ode.NewStateAndDerivative(field.Real(2),
			field.Reals([]float64{1, 0}), field.Reals([]float64{0, -1}))
		s.AppendSecondary(field.Reals([]float64{5, 6, 7}), field.Reals([]float64{0, 0, 0}))
		return s
	}

	It("reports the primary dimension only", func() {
		Expect(newState().PrimaryStateDimension()).To(Equal(2))
	})

	It("reports the complete dimension including secondary blocks", func() {
		Expect(newState().CompleteDimension()).To(Equal(5))
	})

	It("flattens primary before secondary blocks", func() {
		Expect(newState().CompleteState()).To(Equal(field.Reals([]float64{1, 0, 5, 6, 7})))
		Expect(newState().CompleteDerivative()).To(Equal(field.Reals([]float64{0, -1, 0, 0, 0})))
	})

	It("returns fresh slices on every call", func() {
		s := newState()
		first := s.CompleteState()
		first[0] = 99
		Expect(s.CompleteState()[0]).To(Equal(field.Real(1)))
	})

	It("keeps the time it was built with", func() {
		Expect(newState().Time()).To(Equal(field.Real(2)))
	})
})

var _ = Describe("Evaluations", func() {
	It("counts increments", func() {
		e := ode.NewEvaluations(10)
		Expect(e.Increment()).To(Succeed())
		Expect(e.Increment()).To(Succeed())
		Expect(e.Count()).To(Equal(2))
	})

	It("fails once the budget is spent", func() {
		e := ode.NewEvaluations(2)
		Expect(e.Increment()).To(Succeed())
		Expect(e.Increment()).To(Succeed())

		err := e.Increment()
		Expect(err).To(MatchError(ode.ErrEvaluationsExceeded))
		Expect(e.Count()).To(Equal(2))
	})

	It("is unlimited when the budget is zero", func() {
		e := ode.NewEvaluations(0)
		for i := 0; i < 1000; i++ {
			Expect(e.Increment()).To(Succeed())
		}
	})
})

var _ = Describe("Budgeted", func() {
	It("delegates to the wrapped system", func() {
		evals := ode.NewEvaluations(5)
		rhs := ode.Budgeted[field.Real](decay{}, evals)

		yDot, err := rhs(0, field.Reals([]float64{3}))
		Expect(err).NotTo(HaveOccurred())
		Expect(yDot).To(Equal(field.Reals([]float64{-3})))
		Expect(evals.Count()).To(Equal(1))
	})

	It("cuts the system off when the budget is spent", func() {
		evals := ode.NewEvaluations(1)
		rhs := ode.Budgeted[field.Real](decay{}, evals)

		_, err := rhs(0, field.Reals([]float64{3}))
		Expect(err).NotTo(HaveOccurred())

		_, err = rhs(0, field.Reals([]float64{3}))
		Expect(err).To(MatchError(ode.ErrEvaluationsExceeded))
	})
})
