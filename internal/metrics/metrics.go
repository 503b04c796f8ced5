// Package metrics exposes the service counters over prometheus.
package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	// OutcomeOK marks a successful operation.
	OutcomeOK = "ok"
	// OutcomeErr marks a failed operation.
	OutcomeErr = "err"
)

// Observer is the process-wide metrics instance.
var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Fits)
}

// Metrics tracks the service counters.
type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// Increment counts one operation for the given labels.
func (m *Metrics) Increment(labels ...string) {
	m.prometheus.Fits.WithLabelValues(labels...).Inc()
}

// Serve exposes the metrics endpoint on the given port.
// It blocks, so it is expected to run on its own routine.
func Serve(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		log.Error().Err(err).Int("port", port).Msg("metrics server stopped")
	}
}
