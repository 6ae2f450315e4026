package field

import "math"

// Real is the trivial field: a float64 with Element plumbing.
type Real float64

func (r Real) Add(o Real) Real      { return r + o }
func (r Real) Subtract(o Real) Real { return r - o }
func (r Real) Multiply(o Real) Real { return r * o }
func (r Real) Divide(o Real) Real   { return r / o }

func (r Real) Scale(a float64) Real       { return r * Real(a) }
func (r Real) NewInstance(a float64) Real { return Real(a) }

func (r Real) Real() float64 { return float64(r) }
func (r Real) Norm() float64 { return math.Abs(float64(r)) }

// Reals converts a plain float64 slice into field values.
func Reals(vs []float64) []Real {
	out := make([]Real, len(vs))
	for i, v := range vs {
		out[i] = Real(v)
	}
	return out
}
