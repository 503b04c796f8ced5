package ols

import (
	"fmt"
	"math"
)

// Interval is a two-sided confidence interval.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Coefficient is one estimated parameter of the line,
// with its standard error and the derived test statistics.
type Coefficient struct {
	Value  float64  `json:"value"`
	StdErr float64  `json:"std_err"`
	TStat  float64  `json:"t_stat"`
	PValue float64  `json:"p_value"`
	CI     Interval `json:"ci"`
}

// Result is the full regression report of a fit.
type Result struct {
	Slope     Coefficient `json:"slope"`
	Intercept Coefficient `json:"intercept"`

	N  int `json:"n"`
	DF int `json:"df"`

	RSS float64 `json:"rss"`
	ESS float64 `json:"ess"`
	TSS float64 `json:"tss"`

	R     float64 `json:"r"`
	R2    float64 `json:"r2"`
	AdjR2 float64 `json:"adj_r2"`

	FStat   float64 `json:"f_stat"`
	FPValue float64 `json:"f_p_value"`

	LogLik float64 `json:"log_lik"`
	AIC    float64 `json:"aic"`
	BIC    float64 `json:"bic"`

	Confidence float64 `json:"confidence"`

	Diagnostics Diagnostics `json:"diagnostics"`

	// fit internals carried for Forecast ; not serialized,
	// a decoded Result only supports point prediction.
	meanX     float64
	sxx       float64
	sigma2    float64
	tq        float64
	residuals []float64
	fitted    []float64
}

// Forecast is the prediction of the line at a single point, with the
// confidence interval of the mean response and the wider prediction
// interval of a single new observation.
type Forecast struct {
	X     float64  `json:"x"`
	Value float64  `json:"value"`
	CI    Interval `json:"ci"`
	PI    Interval `json:"pi"`
}

// Line returns the point values of the fitted line.
func (r *Result) Line() (float64, float64) {
	return r.Slope.Value, r.Intercept.Value
}

// Predict evaluates the line at x. Non-finite input propagates through
// the arithmetic untouched.
func (r *Result) Predict(x float64) float64 {
	return r.Slope.Value*x + r.Intercept.Value
}

// PredictAll evaluates the line at each of xx, preserving order.
func (r *Result) PredictAll(xx []float64) []float64 {
	yy := make([]float64, len(xx))
	for i, x := range xx {
		yy[i] = r.Predict(x)
	}
	return yy
}

// Residuals returns a copy of the fit residuals in sample order.
func (r *Result) Residuals() []float64 {
	res := make([]float64, len(r.residuals))
	copy(res, r.residuals)
	return res
}

// Fitted returns a copy of the fitted values in sample order.
func (r *Result) Fitted() []float64 {
	fit := make([]float64, len(r.fitted))
	copy(fit, r.fitted)
	return fit
}

// Forecast predicts the line at x together with the interval of the mean
// response and the prediction interval of a new observation, both at the
// confidence level of the fit. It draws on the fit internals and is only
// defined on a Result produced by Fit in-process ; a Result decoded from
// its serialized form returns an error.
func (r *Result) Forecast(x float64) (*Forecast, error) {
	if r.sxx == 0 {
		return nil, fmt.Errorf("forecast needs the fit internals, which do not survive serialization: %w", NotFittedErr)
	}

	value := r.Predict(x)

	d := x - r.meanX
	leverage := 1/float64(r.N) + d*d/r.sxx

	seMean := math.Sqrt(r.sigma2 * leverage)
	sePred := math.Sqrt(r.sigma2 * (1 + leverage))

	return &Forecast{
		X:     x,
		Value: value,
		CI: Interval{
			Lower: value - r.tq*seMean,
			Upper: value + r.tq*seMean,
		},
		PI: Interval{
			Lower: value - r.tq*sePred,
			Upper: value + r.tq*sePred,
		},
	}, nil
}
