// Package buffer provides streaming accumulators and fixed size windows
// for paired observations, so lines can be tracked over live data without
// retaining the full history.
package buffer

import "math"

// Stats is a streaming set of statistical properties of a set of numbers.
// Mean and variance follow the numerically stable single-pass update.
type Stats struct {
	count          int
	sum            float64
	first, last    float64
	min, max       float64
	mean, dSquared float64
	ema            float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{
		min: math.MaxFloat64,
		max: -math.MaxFloat64,
	}
}

// Push adds another element to the set.
func (s *Stats) Push(v float64) {
	s.count++
	s.sum += v
	diff := (v - s.mean) / float64(s.count)
	mean := s.mean + diff
	s.dSquared += (v - mean) * (v - s.mean)
	s.mean = mean

	w := 2 / float64(s.count)
	s.ema = v*w + s.ema*(1-w)

	if s.count == 1 {
		s.first = v
	}

	if s.min > v {
		s.min = v
	}

	if s.max < v {
		s.max = v
	}

	s.last = v
}

// Count returns the number of elements.
func (s Stats) Count() int {
	return s.count
}

// Sum returns the sum of the set.
func (s Stats) Sum() float64 {
	return s.sum
}

// Avg returns the average value of the set.
func (s Stats) Avg() float64 {
	return s.mean
}

// EMA is the exponential moving average of the set.
func (s Stats) EMA() float64 {
	return s.ema
}

// Min returns the smallest value of the set.
func (s Stats) Min() float64 {
	return s.min
}

// Max returns the largest value of the set.
func (s Stats) Max() float64 {
	return s.max
}

// Diff returns the difference of the last and the first element.
func (s Stats) Diff() float64 {
	return s.last - s.first
}

// Variance is the population variance of the set.
func (s Stats) Variance() float64 {
	return s.dSquared / float64(s.count)
}

// StDev is the population standard deviation of the set.
func (s Stats) StDev() float64 {
	return math.Sqrt(s.Variance())
}

// SampleVariance is the sample variance of the set.
func (s Stats) SampleVariance() float64 {
	return s.dSquared / float64(s.count-1)
}

// SampleStDev is the sample standard deviation of the set.
func (s Stats) SampleStDev() float64 {
	return math.Sqrt(s.SampleVariance())
}
