// Package stepsize implements adaptive step-size control for ODE
// integration: the tolerance model, the initial-step estimator, and the
// step filter.
//
// A [Control] is an independently constructible policy value that an
// integrator consults instead of guessing steps itself. The error
// threshold for component i of the primary state is
//
//	threshold_i = absTol_i + relTol_i * max(|y_i|, |y1_i|)
//
// where y is the current and y1 the proposed state. Tolerances come as
// one scalar pair broadcast to every component, or as per-component
// vectors whose length must match the primary state dimension. Only the
// primary part of the state feeds error control; secondary blocks are
// excluded.
//
// # Thread Safety
//
// A Control is NOT safe for concurrent use. Concurrent integrations
// need independent Control values.
package stepsize
