package ols

// Option adjusts the fit configuration.
type Option func(*config)

type config struct {
	confidence float64
}

func defaults() config {
	return config{
		confidence: DefaultConfidence,
	}
}

// WithConfidence sets the confidence level of the coefficient and forecast
// intervals. Levels outside (0,1) make Fit fail.
func WithConfidence(level float64) Option {
	return func(cfg *config) {
		cfg.confidence = level
	}
}
