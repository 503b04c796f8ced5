package main

import "github.com/drakos74/line-fit/ols"

// FitRequest is the body of the fit endpoint.
type FitRequest struct {
	Name       string    `json:"name"`
	X          []float64 `json:"x"`
	Y          []float64 `json:"y"`
	Confidence float64   `json:"confidence,omitempty"`
}

// PredictRequest is the body of the predict endpoint.
// Explicit coefficients win over the fit id, the id over the dataset name.
type PredictRequest struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name,omitempty"`
	Slope     *float64  `json:"slope,omitempty"`
	Intercept *float64  `json:"intercept,omitempty"`
	X         []float64 `json:"x"`
}

// PredictResponse carries the predicted values in input order.
type PredictResponse struct {
	Values []float64 `json:"values"`
}

// ForecastRequest is the body of the forecast endpoint.
// It refits the stored snapshot of the dataset,
// since the interval widths depend on the sample the line was fitted on.
type ForecastRequest struct {
	Name       string    `json:"name"`
	X          []float64 `json:"x"`
	Confidence float64   `json:"confidence,omitempty"`
}

// ForecastResponse carries the forecasts in input order.
type ForecastResponse struct {
	Forecasts []ols.Forecast `json:"forecasts"`
}
