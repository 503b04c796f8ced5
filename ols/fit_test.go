package ols

import (
	"errors"
	"math"
	"testing"

	linemath "github.com/drakos74/line-fit/internal/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestFit(t *testing.T) {

	type test struct {
		xx        []float64
		yy        []float64
		slope     float64
		intercept float64
		r2        float64
		adjR2     float64
		rss       float64
		tss       float64
	}

	tests := map[string]test{
		// slope = (16/3) / (8/3) = 2 , intercept = 7 - 2*3 = 1
		"triple": {
			xx:        []float64{1, 3, 5},
			yy:        []float64{2, 9, 10},
			slope:     2,
			intercept: 1,
			r2:        16.0 / 19.0,
			adjR2:     13.0 / 19.0,
			rss:       6,
			tss:       38,
		},
		"quad": {
			xx:        []float64{1, 2, 3, 4},
			yy:        []float64{4, 4, 6, 10},
			slope:     2,
			intercept: 1,
			r2:        5.0 / 6.0,
			adjR2:     0.75,
			rss:       4,
			tss:       24,
		},
		"descending": {
			xx:        []float64{0, 1, 2, 3},
			yy:        []float64{9, 7, 5, 3},
			slope:     -2,
			intercept: 9,
			r2:        1,
			adjR2:     1,
			rss:       0,
			tss:       20,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := Fit(tt.xx, tt.yy)
			require.NoError(t, err)

			assert.InDelta(t, tt.slope, result.Slope.Value, 1e-12)
			assert.InDelta(t, tt.intercept, result.Intercept.Value, 1e-12)
			assert.InDelta(t, tt.r2, result.R2, 1e-12)
			assert.InDelta(t, tt.adjR2, result.AdjR2, 1e-12)
			assert.InDelta(t, tt.rss, result.RSS, 1e-12)
			assert.InDelta(t, tt.tss, result.TSS, 1e-12)
			assert.InDelta(t, tt.tss, result.RSS+result.ESS, 1e-9)

			assert.Equal(t, len(tt.xx), result.N)
			assert.Equal(t, len(tt.xx)-2, result.DF)
			assert.Equal(t, DefaultConfidence, result.Confidence)

			// the sign of the slope carries over to the correlation
			assert.InDelta(t, linemath.Correlation(tt.xx, tt.yy), result.R, 1e-12)
		})
	}

}

// the quad sample has closed-form inference values :
// residuals [1,-1,-1,1] , s2 = 2 , se(b1) = sqrt(0.4) , se(b0) = sqrt(3).
func TestFitInference(t *testing.T) {

	xx := []float64{1, 2, 3, 4}
	yy := []float64{4, 4, 6, 10}

	result, err := Fit(xx, yy)
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt(0.4), result.Slope.StdErr, 1e-12)
	assert.InDelta(t, math.Sqrt(10), result.Slope.TStat, 1e-12)
	assert.InDelta(t, 0.0871290708247231, result.Slope.PValue, 1e-9)

	assert.InDelta(t, math.Sqrt(3), result.Intercept.StdErr, 1e-12)
	assert.InDelta(t, 1/math.Sqrt(3), result.Intercept.TStat, 1e-12)
	assert.InDelta(t, 0.6220355269907728, result.Intercept.PValue, 1e-9)

	// t(0.975 , df=2) = 4.30265273
	assert.InDelta(t, -0.7212365, result.Slope.CI.Lower, 1e-6)
	assert.InDelta(t, 4.7212365, result.Slope.CI.Upper, 1e-6)
	assert.InDelta(t, -6.4524131, result.Intercept.CI.Lower, 1e-6)
	assert.InDelta(t, 8.4524131, result.Intercept.CI.Upper, 1e-6)

	// the interval is symmetric around the estimate
	assert.InDelta(t, result.Slope.CI.Upper-result.Slope.Value, result.Slope.Value-result.Slope.CI.Lower, 1e-12)

	assert.InDelta(t, 10, result.FStat, 1e-12)
	assert.InDelta(t, result.Slope.PValue, result.FPValue, 1e-9)

	assert.InDelta(t, -5.675754132818691, result.LogLik, 1e-9)
	assert.InDelta(t, 15.351508265637382, result.AIC, 1e-9)
	assert.InDelta(t, 14.124096987877163, result.BIC, 1e-9)
}

func TestFitPerfectLine(t *testing.T) {

	xx := linemath.Series(1, 20)
	yy := linemath.Line(3, 5, xx)

	result, err := Fit(xx, yy)
	require.NoError(t, err)

	assert.Equal(t, 3.0, result.Slope.Value)
	assert.Equal(t, 5.0, result.Intercept.Value)
	assert.Equal(t, 0.0, result.RSS)
	assert.Equal(t, 1.0, result.R2)
	assert.Equal(t, 1.0, result.AdjR2)

	// no residual variance , the error estimates collapse
	assert.Equal(t, 0.0, result.Slope.StdErr)
	assert.Equal(t, 0.0, result.Intercept.StdErr)
	assert.True(t, math.IsInf(result.Slope.TStat, 1))
	assert.Equal(t, 0.0, result.Slope.PValue)
	assert.Equal(t, 3.0, result.Slope.CI.Lower)
	assert.Equal(t, 3.0, result.Slope.CI.Upper)
	assert.True(t, math.IsInf(result.FStat, 1))
	assert.Equal(t, 0.0, result.FPValue)

	assert.Equal(t, 1.0, result.Diagnostics.JBPValue)
	assert.Equal(t, 0.0, result.Diagnostics.DurbinWatson)
}

// a constant dependent variable is fit exactly by its own mean.
func TestFitConstantY(t *testing.T) {

	result, err := Fit([]float64{1, 2, 3, 4}, []float64{7, 7, 7, 7})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Slope.Value)
	assert.Equal(t, 7.0, result.Intercept.Value)
	assert.Equal(t, 0.0, result.TSS)
	assert.Equal(t, 0.0, result.RSS)
	assert.Equal(t, 1.0, result.R2)
	assert.True(t, math.IsNaN(result.Slope.TStat))
}

func TestFitErrors(t *testing.T) {

	type test struct {
		xx  []float64
		yy  []float64
		err error
	}

	tests := map[string]test{
		"length mismatch": {
			xx:  []float64{1, 2, 3},
			yy:  []float64{1, 2},
			err: LengthMismatchErr,
		},
		"nan x": {
			xx:  []float64{1, math.NaN(), 3},
			yy:  []float64{1, 2, 3},
			err: NonFiniteInputErr,
		},
		"inf y": {
			xx:  []float64{1, 2, 3},
			yy:  []float64{1, math.Inf(1), 3},
			err: NonFiniteInputErr,
		},
		"empty": {
			xx:  []float64{},
			yy:  []float64{},
			err: DegenerateInputErr,
		},
		"single": {
			xx:  []float64{1},
			yy:  []float64{1},
			err: DegenerateInputErr,
		},
		"pair": {
			xx:  []float64{1, 2},
			yy:  []float64{1, 2},
			err: InsufficientDataErr,
		},
		"constant x": {
			xx:  []float64{2, 2, 2, 2},
			yy:  []float64{1, 2, 3, 4},
			err: DegenerateInputErr,
		},
		// finiteness is checked before the sample size
		"nan single": {
			xx:  []float64{math.NaN()},
			yy:  []float64{1},
			err: NonFiniteInputErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := Fit(tt.xx, tt.yy)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.err), "expected %v, got %v", tt.err, err)
		})
	}

}

func TestFitConfidence(t *testing.T) {

	xx := []float64{1, 2, 3, 4}
	yy := []float64{4, 4, 6, 10}

	narrow, err := Fit(xx, yy, WithConfidence(0.5))
	require.NoError(t, err)
	wide, err := Fit(xx, yy, WithConfidence(0.99))
	require.NoError(t, err)

	assert.Equal(t, 0.5, narrow.Confidence)
	assert.Equal(t, 0.99, wide.Confidence)

	// higher confidence , wider interval , same estimates
	assert.Equal(t, narrow.Slope.Value, wide.Slope.Value)
	assert.Less(t, narrow.Slope.CI.Upper-narrow.Slope.CI.Lower, wide.Slope.CI.Upper-wide.Slope.CI.Lower)
	assert.Less(t, narrow.Slope.CI.Lower, narrow.Slope.Value)
	assert.Less(t, narrow.Slope.Value, narrow.Slope.CI.Upper)

	for _, level := range []float64{0, 1, -0.2, 1.5} {
		result, err := Fit(xx, yy, WithConfidence(level))
		assert.Nil(t, result)
		assert.Error(t, err)
	}
}

// the least squares residuals are orthogonal to the regressor and sum to zero.
func TestFitNormalEquations(t *testing.T) {

	xx := linemath.Series(1, 100)
	yy := linemath.Noisy(linemath.Line(3, 5, xx), 0.5, 42)

	result, err := Fit(xx, yy)
	require.NoError(t, err)

	residuals := result.Residuals()
	var sum, dot float64
	for i, r := range residuals {
		sum += r
		dot += xx[i] * r
	}
	assert.InDelta(t, 0, sum, 1e-9)
	assert.InDelta(t, 0, dot, 1e-7)

	// bounded noise keeps the estimates close to the generating line
	assert.InDelta(t, 3, result.Slope.Value, 0.02)
	assert.InDelta(t, 5, result.Intercept.Value, 1.5)
	assert.Greater(t, result.R2, 0.999)
	assert.LessOrEqual(t, result.R2, 1.0)
	assert.GreaterOrEqual(t, result.Diagnostics.DurbinWatson, 0.0)
	assert.LessOrEqual(t, result.Diagnostics.DurbinWatson, 4.0)
}

func TestFitMatchesGonum(t *testing.T) {

	xx := linemath.Series(1, 100)
	yy := linemath.Noisy(linemath.Sine(10, 100, 0.05), 2, 11)

	result, err := Fit(xx, yy)
	require.NoError(t, err)

	alpha, beta := stat.LinearRegression(xx, yy, nil, false)
	assert.InDelta(t, alpha, result.Intercept.Value, 1e-9)
	assert.InDelta(t, beta, result.Slope.Value, 1e-9)
}

func TestFitIdempotent(t *testing.T) {

	xx := []float64{1, 2, 3, 4}
	yy := []float64{4, 4, 6, 10}

	a, err := Fit(xx, yy)
	require.NoError(t, err)
	b, err := Fit(xx, yy)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestLine(t *testing.T) {

	type test struct {
		xx        []float64
		yy        []float64
		slope     float64
		intercept float64
		err       error
	}

	tests := map[string]test{
		"pair": {
			xx:        []float64{0, 1},
			yy:        []float64{5, 8},
			slope:     3,
			intercept: 5,
		},
		"triple": {
			xx:        []float64{1, 3, 5},
			yy:        []float64{2, 9, 10},
			slope:     2,
			intercept: 1,
		},
		"constant x": {
			xx:  []float64{1, 1},
			yy:  []float64{1, 2},
			err: DegenerateInputErr,
		},
		"single": {
			xx:  []float64{1},
			yy:  []float64{1},
			err: DegenerateInputErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			slope, intercept, err := Line(tt.xx, tt.yy)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err), "expected %v, got %v", tt.err, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.slope, slope, 1e-12)
			assert.InDelta(t, tt.intercept, intercept, 1e-12)
		})
	}

}
