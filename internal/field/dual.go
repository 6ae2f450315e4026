package field

import "math"

// Dual carries a value and its first derivative with respect to one
// parameter. Arithmetic follows the usual forward-mode rules, so a state
// seeded with Dot=1 yields sensitivities alongside the solution.
type Dual struct {
	Val float64
	Dot float64
}

func (d Dual) Add(o Dual) Dual      { return Dual{d.Val + o.Val, d.Dot + o.Dot} }
func (d Dual) Subtract(o Dual) Dual { return Dual{d.Val - o.Val, d.Dot - o.Dot} }

func (d Dual) Multiply(o Dual) Dual {
	return Dual{d.Val * o.Val, d.Dot*o.Val + d.Val*o.Dot}
}

func (d Dual) Divide(o Dual) Dual {
	q := d.Val / o.Val
	return Dual{q, (d.Dot - q*o.Dot) / o.Val}
}

func (d Dual) Scale(a float64) Dual       { return Dual{a * d.Val, a * d.Dot} }
func (d Dual) NewInstance(a float64) Dual { return Dual{Val: a} }

func (d Dual) Real() float64 { return d.Val }
func (d Dual) Norm() float64 { return math.Abs(d.Val) }
