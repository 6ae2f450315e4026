// Package integrators provides single-step formulas for ODE integration
// over a generic field: the adaptive Dormand-Prince 5(4) pair ([RK45])
// driven by a step-size control policy, and fixed-step [RK4] and [Euler]
// for comparison runs.
package integrators
