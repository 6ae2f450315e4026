// Package stat provides a storeless summary accumulator: values are
// folded into running moments and never retained, so it can absorb
// arbitrarily long streams in constant memory.
package stat

import "math"

// Summary accumulates count, extrema, mean and variance of a stream.
// The variance update uses the shifted second moment, so a single pass
// stays numerically stable. Not safe for concurrent use.
type Summary struct {
	n    int64
	min  float64
	max  float64
	mean float64
	m2   float64
}

func NewSummary() *Summary {
	return &Summary{min: math.Inf(1), max: math.Inf(-1)}
}

// Add folds one value into the summary.
func (s *Summary) Add(v float64) {
	s.n++
	delta := v - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (v - s.mean)
	s.min = math.Min(s.min, v)
	s.max = math.Max(s.max, v)
}

func (s *Summary) N() int64 { return s.n }

func (s *Summary) Min() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.min
}

func (s *Summary) Max() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.max
}

func (s *Summary) Mean() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.mean
}

// Variance is the bias-corrected sample variance.
func (s *Summary) Variance() float64 {
	switch {
	case s.n == 0:
		return math.NaN()
	case s.n == 1:
		return 0
	default:
		return s.m2 / float64(s.n-1)
	}
}

func (s *Summary) StandardDeviation() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	if s.n == 1 {
		return 0
	}
	return math.Sqrt(s.Variance())
}

// Clear resets the summary to its initial, empty state.
func (s *Summary) Clear() {
	*s = Summary{min: math.Inf(1), max: math.Inf(-1)}
}
