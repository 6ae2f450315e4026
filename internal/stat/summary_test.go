package stat

import (
	"math"
	"testing"
)

func TestSummaryMoments(t *testing.T) {
	s := NewSummary()
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Add(v)
	}

	if s.N() != 8 {
		t.Errorf("expected n=8, got %d", s.N())
	}
	if s.Min() != 2 || s.Max() != 9 {
		t.Errorf("extrema wrong: min=%g max=%g", s.Min(), s.Max())
	}
	if math.Abs(s.Mean()-5) > 1e-15 {
		t.Errorf("expected mean 5, got %g", s.Mean())
	}
	// population variance of this classic set is 4; sample variance 32/7
	if math.Abs(s.Variance()-32.0/7.0) > 1e-12 {
		t.Errorf("expected variance %g, got %g", 32.0/7.0, s.Variance())
	}
}

func TestSummaryEmpty(t *testing.T) {
	s := NewSummary()

	if !math.IsNaN(s.Mean()) || !math.IsNaN(s.Min()) || !math.IsNaN(s.Max()) {
		t.Error("empty summary must report NaN")
	}
}

func TestSummarySingleValue(t *testing.T) {
	s := NewSummary()
	s.Add(3)

	if s.Variance() != 0 || s.StandardDeviation() != 0 {
		t.Error("single value has zero spread")
	}
	if s.Min() != 3 || s.Max() != 3 || s.Mean() != 3 {
		t.Error("single value summary wrong")
	}
}

func TestSummaryClear(t *testing.T) {
	s := NewSummary()
	s.Add(1)
	s.Add(2)
	s.Clear()

	if s.N() != 0 {
		t.Errorf("expected empty after clear, got n=%d", s.N())
	}
	s.Add(10)
	if s.Mean() != 10 || s.Min() != 10 {
		t.Error("summary unusable after clear")
	}
}

func TestSummaryShiftedStability(t *testing.T) {
	// large offset must not destroy the variance
	s := NewSummary()
	base := 1e9
	for _, v := range []float64{base + 4, base + 7, base + 13, base + 16} {
		s.Add(v)
	}

	if math.Abs(s.Variance()-30) > 1e-6 {
		t.Errorf("expected variance 30, got %g", s.Variance())
	}
}
