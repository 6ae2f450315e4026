// Package field defines the scalar abstraction the integration code is
// generic over.
//
// An [Element] is any type closed under field arithmetic that can project
// itself onto the real line:
//
//   - [Real]: plain float64 arithmetic
//   - [Dual]: value plus first derivative (forward-mode differentiation)
//   - [Complex]: complex arithmetic, Norm is the modulus
//
// Integration code never constructs elements directly; it derives new
// values from existing ones via NewInstance, so precision or derivative
// structure carried by the caller's elements is preserved.
//
// # Thread Safety
//
// All element types are immutable values and safe for concurrent use.
package field
