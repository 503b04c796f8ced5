package ols

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Diagnostics holds the residual checks of a fit : the Durbin-Watson
// statistic for serial correlation and the Jarque-Bera test of normality
// with its supporting moments.
type Diagnostics struct {
	DurbinWatson float64 `json:"durbin_watson"`
	Skewness     float64 `json:"skewness"`
	Kurtosis     float64 `json:"kurtosis"`
	JarqueBera   float64 `json:"jarque_bera"`
	JBPValue     float64 `json:"jb_p_value"`
}

// diagnose derives the residual diagnostics. An exact fit has no residual
// variance to test, so the normality test degenerates to a p-value of 1.
func diagnose(residuals []float64, rss float64) Diagnostics {
	n := float64(len(residuals))

	var dw float64
	for i := 1; i < len(residuals); i++ {
		d := residuals[i] - residuals[i-1]
		dw += d * d
	}
	if rss > 0 {
		dw /= rss
	}

	// residuals of a line with intercept sum to zero, so the
	// central moments are plain moments
	var m2, m3, m4 float64
	for _, r := range residuals {
		r2 := r * r
		m2 += r2
		m3 += r2 * r
		m4 += r2 * r2
	}
	m2 /= n
	m3 /= n
	m4 /= n

	if m2 == 0 {
		return Diagnostics{DurbinWatson: dw, JBPValue: 1}
	}

	skew := m3 / math.Pow(m2, 1.5)
	kurt := m4/(m2*m2) - 3

	jb := n / 6 * (skew*skew + kurt*kurt/4)

	return Diagnostics{
		DurbinWatson: dw,
		Skewness:     skew,
		Kurtosis:     kurt,
		JarqueBera:   jb,
		JBPValue:     distuv.ChiSquared{K: 2}.Survival(jb),
	}
}
