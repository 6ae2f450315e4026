package field

import "math"

// Complex is a complex scalar. Real returns the real part only, while
// Norm is the modulus, so ordering heuristics and magnitude checks see
// different numbers. Step filtering relies on that distinction.
type Complex struct {
	Re float64
	Im float64
}

func (c Complex) Add(o Complex) Complex      { return Complex{c.Re + o.Re, c.Im + o.Im} }
func (c Complex) Subtract(o Complex) Complex { return Complex{c.Re - o.Re, c.Im - o.Im} }

func (c Complex) Multiply(o Complex) Complex {
	return Complex{c.Re*o.Re - c.Im*o.Im, c.Re*o.Im + c.Im*o.Re}
}

func (c Complex) Divide(o Complex) Complex {
	d := o.Re*o.Re + o.Im*o.Im
	return Complex{(c.Re*o.Re + c.Im*o.Im) / d, (c.Im*o.Re - c.Re*o.Im) / d}
}

func (c Complex) Scale(a float64) Complex       { return Complex{a * c.Re, a * c.Im} }
func (c Complex) NewInstance(a float64) Complex { return Complex{Re: a} }

func (c Complex) Real() float64 { return c.Re }
func (c Complex) Norm() float64 { return math.Hypot(c.Re, c.Im) }
