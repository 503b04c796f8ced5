package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus holds the raw prometheus collectors.
type Prometheus struct {
	Fits *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{Fits: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "linefit",
			Name:      "fits",
		}, []string{"dataset", "outcome"}),
	}
}
