package field

import (
	"math"
	"testing"
)

func TestRealArithmetic(t *testing.T) {
	a, b := Real(6), Real(3)

	if a.Add(b) != 9 || a.Subtract(b) != 3 || a.Multiply(b) != 18 || a.Divide(b) != 2 {
		t.Error("Real arithmetic broken")
	}
	if a.Scale(0.5) != 3 {
		t.Errorf("expected 3, got %v", a.Scale(0.5))
	}
	if a.NewInstance(7) != 7 {
		t.Error("NewInstance must ignore the receiver value")
	}
	if Real(-4).Norm() != 4 {
		t.Error("Norm must be the absolute value")
	}
}

func TestDualProductRule(t *testing.T) {
	// d(uv) = u'v + uv'
	u := Dual{Val: 3, Dot: 2}
	v := Dual{Val: 5, Dot: -1}

	p := u.Multiply(v)
	if p.Val != 15 || p.Dot != 2*5+3*(-1) {
		t.Errorf("product rule violated: %+v", p)
	}
}

func TestDualQuotientRule(t *testing.T) {
	u := Dual{Val: 3, Dot: 2}
	v := Dual{Val: 5, Dot: -1}

	q := u.Divide(v)
	want := (2*5 - 3*(-1)) / 25.0
	if math.Abs(q.Val-0.6) > 1e-15 || math.Abs(q.Dot-want) > 1e-15 {
		t.Errorf("quotient rule violated: %+v, want dot %g", q, want)
	}
}

func TestDualRoundTrip(t *testing.T) {
	// (u * v) / v recovers u up to rounding, derivative included
	u := Dual{Val: 1.5, Dot: 0.25}
	v := Dual{Val: -2, Dot: 3}

	r := u.Multiply(v).Divide(v)
	if math.Abs(r.Val-u.Val) > 1e-15 || math.Abs(r.Dot-u.Dot) > 1e-14 {
		t.Errorf("round trip lost structure: %+v", r)
	}
}

func TestComplexNormVsReal(t *testing.T) {
	z := Complex{Re: 3, Im: 4}

	if z.Norm() != 5 {
		t.Errorf("expected modulus 5, got %g", z.Norm())
	}
	if z.Real() != 3 {
		t.Errorf("expected real part 3, got %g", z.Real())
	}
}

func TestComplexArithmetic(t *testing.T) {
	i := Complex{Im: 1}

	if got := i.Multiply(i); got != (Complex{Re: -1}) {
		t.Errorf("i*i: expected -1, got %+v", got)
	}

	z := Complex{Re: 1, Im: 2}
	w := Complex{Re: 3, Im: -1}
	if got := z.Multiply(w).Divide(w); math.Abs(got.Re-1) > 1e-15 || math.Abs(got.Im-2) > 1e-15 {
		t.Errorf("division does not invert multiplication: %+v", got)
	}
}

func TestSpan(t *testing.T) {
	zs := Span(Dual{Val: 9, Dot: 9}, 3)

	if len(zs) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(zs))
	}
	for _, z := range zs {
		if z != (Dual{}) {
			t.Errorf("expected zero element, got %+v", z)
		}
	}
}
