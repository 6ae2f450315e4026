package integrators

import (
	"math"
	"testing"

	"github.com/HannesWell/hipparchus/internal/field"
	"github.com/HannesWell/hipparchus/internal/physics"
)

func TestRK4Accuracy(t *testing.T) {
	sys := physics.NewSpringMass[field.Real]()
	integ := NewRK4[field.Real]()

	y := field.Reals([]float64{1, 0})
	dt := 0.01
	steps := 100

	var err error
	for i := 0; i < steps; i++ {
		y, err = integ.Step(sys, field.Real(float64(i)*dt), y, field.Real(dt))
		if err != nil {
			t.Fatal(err)
		}
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(y[0].Real()-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", y[0].Real(), expectedX)
	}
	if math.Abs(y[1].Real()-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", y[1].Real(), expectedV)
	}
}

func TestEulerFirstOrder(t *testing.T) {
	sys := physics.NewSpringMass[field.Real]()
	integ := NewEuler[field.Real]()

	y := field.Reals([]float64{1, 0})
	dt := 0.001
	steps := 1000

	var err error
	for i := 0; i < steps; i++ {
		y, err = integ.Step(sys, field.Real(float64(i)*dt), y, field.Real(dt))
		if err != nil {
			t.Fatal(err)
		}
	}

	// first order: expect rough agreement only
	if math.Abs(y[0].Real()-math.Cos(1)) > 1e-2 {
		t.Errorf("position error too large for Euler: got %.6f, expected %.6f", y[0].Real(), math.Cos(1))
	}
}
