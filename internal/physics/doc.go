// Package physics provides example ODE systems for integration runs.
//
// Each model implements the [ode.System] interface over a generic field,
// so the same equations drive plain float64 runs, sensitivity runs with
// dual numbers, or complex-valued states:
//
//   - [SpringMass]: simple harmonic oscillator
//   - [VanDerPol]: self-sustained nonlinear oscillator
//   - [Lorenz]: butterfly attractor
//
// All right-hand sides here are polynomial, so they need nothing beyond
// field arithmetic.
package physics
