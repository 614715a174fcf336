// Package metrics exposes Prometheus metrics for plan generation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "masar"

// Metrics holds the generation metrics.
type Metrics struct {
	Generations *prometheus.CounterVec
	Duration    prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New registers the metrics on reg. Passing a fresh prometheus.NewRegistry()
// keeps tests isolated from the global registry.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Generations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_generations_total",
			Help:      "Plan generation attempts by outcome.",
		}, []string{"outcome"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_generation_duration_seconds",
			Help:      "Wall time of plan generation attempts.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 90},
		}),
		gatherer: reg,
	}
}

// ObserveGeneration records one attempt. A nil *Metrics is a no-op.
func (m *Metrics) ObserveGeneration(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Generations.WithLabelValues(outcome).Inc()
	m.Duration.Observe(d.Seconds())
}

// Handler returns the /metrics handler for the registry the metrics live on.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
