package math

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Format formats a float for log output
// TODO : format based on the value
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// Mean returns the arithmetic mean of the sample.
func Mean(xx []float64) float64 {
	return stat.Mean(xx, nil)
}

// Covariance returns the population covariance of the two samples.
// NOTE : stat.Covariance and stat.Variance normalise by 1/(n-1) ,
// the moment and Pop forms keep the 1/n the closed-form estimator needs.
// The caller is expected to have checked the sample lengths.
func Covariance(xx, yy []float64) float64 {
	return stat.BivariateMoment(1, 1, xx, yy, nil)
}

// Variance returns the population variance of the sample.
func Variance(xx []float64) float64 {
	return stat.PopVariance(xx, nil)
}

// StDev returns the population standard deviation of the sample.
func StDev(xx []float64) float64 {
	return stat.PopStdDev(xx, nil)
}

// Correlation returns the Pearson correlation of the two samples.
// The normalisation cancels out, so this delegates to gonum.
func Correlation(xx, yy []float64) float64 {
	return stat.Correlation(xx, yy, nil)
}

// Dot returns the dot product of the two vectors.
func Dot(xx, yy []float64) float64 {
	return floats.Dot(xx, yy)
}

// Finite reports whether the sample consists of real numbers only.
func Finite(xx []float64) bool {
	for _, x := range xx {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
