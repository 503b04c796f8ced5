package buffer

import (
	"errors"
	"math"
	"testing"

	linemath "github.com/drakos74/line-fit/internal/math"
	"github.com/drakos74/line-fit/ols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReg_Push(t *testing.T) {

	r := NewReg()
	for _, p := range [][2]float64{{1, 2}, {3, 9}, {5, 10}} {
		r.Push(p[0], p[1])
	}

	assert.Equal(t, 3, r.Count())
	assert.InDelta(t, 3, r.X().Avg(), 1e-12)
	assert.InDelta(t, 7, r.Y().Avg(), 1e-12)
	assert.InDelta(t, 16.0/3.0, r.Covariance(), 1e-12)
	assert.InDelta(t, 0.917662935482247, r.Correlation(), 1e-12)
	assert.InDelta(t, 2, r.Slope(), 1e-12)
	assert.InDelta(t, 1, r.Intercept(), 1e-12)

	slope, intercept, err := r.Line()
	require.NoError(t, err)
	assert.Equal(t, r.Slope(), slope)
	assert.Equal(t, r.Intercept(), intercept)
}

// the single-pass accumulator lands on the same line as the batch estimator.
func TestReg_MatchesBatchFit(t *testing.T) {

	xx := linemath.Series(1, 100)
	yy := linemath.Noisy(linemath.Line(3, 5, xx), 0.5, 42)

	r := NewReg()
	for i := range xx {
		r.Push(xx[i], yy[i])
	}

	slope, intercept, err := ols.Line(xx, yy)
	require.NoError(t, err)

	rSlope, rIntercept, err := r.Line()
	require.NoError(t, err)
	assert.InDelta(t, slope, rSlope, 1e-9)
	assert.InDelta(t, intercept, rIntercept, 1e-8)

	assert.InDelta(t, linemath.Covariance(xx, yy), r.Covariance(), 1e-9)
	assert.InDelta(t, linemath.Correlation(xx, yy), r.Correlation(), 1e-9)
}

func TestReg_Line_Errors(t *testing.T) {

	type test struct {
		pairs [][2]float64
	}

	tests := map[string]test{
		"empty": {
			pairs: [][2]float64{},
		},
		"single": {
			pairs: [][2]float64{{1, 1}},
		},
		"constant x": {
			pairs: [][2]float64{{2, 1}, {2, 5}, {2, 9}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewReg()
			for _, p := range tt.pairs {
				r.Push(p[0], p[1])
			}
			_, _, err := r.Line()
			assert.True(t, errors.Is(err, ols.DegenerateInputErr), "expected degenerate input, got %v", err)
		})
	}

}

func TestReg_Undefined(t *testing.T) {

	r := NewReg()
	assert.True(t, math.IsNaN(r.Slope()))

	// constant x , the slope stays undefined
	r.Push(2, 1)
	r.Push(2, 5)
	assert.True(t, math.IsNaN(r.Slope()))
}
