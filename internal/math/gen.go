package math

import (
	"math"
	"math/rand"
)

// Series generates a linear sequence scaled by the given factor.
func Series(factor float64, limit int) []float64 {
	xx := make([]float64, 0)
	for i := 0; i < limit; i++ {
		xx = append(xx, factor*float64(i))
	}
	return xx
}

// Line evaluates the given line at each of the provided points.
func Line(slope, intercept float64, xx []float64) []float64 {
	yy := make([]float64, len(xx))
	for i, x := range xx {
		yy[i] = slope*x + intercept
	}
	return yy
}

// Sine generates a sine wave of the given amplitude sampled at the given step.
func Sine(factor float64, limit int, v float64) []float64 {
	xx := make([]float64, 0)
	for i := 0; i < limit; i++ {
		xx = append(xx, factor*math.Sin(float64(i)*v))
	}
	return xx
}

// Noisy perturbs the given series with uniform noise of the given amplitude.
// The seed keeps the perturbation reproducible across runs.
func Noisy(xx []float64, amplitude float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	yy := make([]float64, len(xx))
	for i, x := range xx {
		yy[i] = x + amplitude*(2*rng.Float64()-1)
	}
	return yy
}
