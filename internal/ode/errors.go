package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration operations.
var (
	// ErrDimensionMismatch indicates a vector tolerance or state slice
	// whose length disagrees with the primary state dimension.
	ErrDimensionMismatch = errors.New("ode: dimension mismatch")

	// ErrMinimalStep indicates the step-size control drove the step
	// below the configured minimum.
	ErrMinimalStep = errors.New("ode: minimal step size reached during integration")

	// ErrEvaluationsExceeded indicates the right-hand-side evaluation
	// budget ran out.
	ErrEvaluationsExceeded = errors.New("ode: maximal number of evaluations exceeded")
)

// DimensionError reports the expected and actual lengths behind an
// ErrDimensionMismatch.
type DimensionError struct {
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: expected %d, got %d", ErrDimensionMismatch, e.Expected, e.Actual)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// MinimalStepError carries the offending step magnitude and the
// configured minimum. It is terminal for the integration run.
type MinimalStepError struct {
	Step    float64
	MinStep float64
}

func (e *MinimalStepError) Error() string {
	return fmt.Sprintf("%v: step %g below minimum %g", ErrMinimalStep, e.Step, e.MinStep)
}

func (e *MinimalStepError) Unwrap() error { return ErrMinimalStep }

// EvaluationsError carries the exhausted budget.
type EvaluationsError struct {
	Max int
}

func (e *EvaluationsError) Error() string {
	return fmt.Sprintf("%v: limit %d", ErrEvaluationsExceeded, e.Max)
}

func (e *EvaluationsError) Unwrap() error { return ErrEvaluationsExceeded }
