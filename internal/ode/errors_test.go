package ode_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/HannesWell/hipparchus/internal/ode"
)

var _ = Describe("domain errors", func() {
	It("unwraps a DimensionError to the sentinel", func() {
		var err error = &ode.DimensionError{Expected: 4, Actual: 3}
		Expect(errors.Is(err, ode.ErrDimensionMismatch)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("expected 4, got 3"))
	})

	It("unwraps a MinimalStepError to the sentinel", func() {
		var err error = &ode.MinimalStepError{Step: 0.5, MinStep: 1}
		Expect(errors.Is(err, ode.ErrMinimalStep)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("0.5"))
		Expect(err.Error()).To(ContainSubstring("1"))
	})

	It("unwraps an EvaluationsError to the sentinel", func() {
		var err error = &ode.EvaluationsError{Max: 10}
		Expect(errors.Is(err, ode.ErrEvaluationsExceeded)).To(BeTrue())
	})
})
