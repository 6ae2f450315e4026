// Package ode holds the primitives shared by step-size control and the
// integrators: the field-generic state/derivative container, the
// right-hand-side contracts, the evaluation budget, and the domain
// errors.
//
//   - [StateAndDerivative]: state vector, its derivative, and time,
//     split into a primary block and optional secondary blocks
//   - [System]: an ODE, dy/dt = f(t, y)
//   - [Derivatives]: a bare right-hand-side function
//   - [Evaluations]: budget on right-hand-side calls
//
// Secondary blocks (variational equations, parameter sensitivities) ride
// along in the complete state but are excluded from error control.
package ode
