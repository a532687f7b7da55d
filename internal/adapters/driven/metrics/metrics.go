// Package metrics provides a Prometheus implementation of driven.SearchMetrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
)

// Ensure Metrics implements the interface.
var _ driven.SearchMetrics = (*Metrics)(nil)

// Metric names.
const (
	MetricSearchesTotal       = "scout_searches_total"
	MetricSearchDuration      = "scout_search_duration_seconds"
	MetricSearchResults       = "scout_search_results"
	MetricSearchErrorsTotal   = "scout_search_errors_total"
	MetricEngineSelectedTotal = "scout_engine_selected_total"
)

// Metrics records search pipeline counters and latencies.
// All operations are thread-safe.
type Metrics struct {
	searchesTotal  *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	searchResults  *prometheus.HistogramVec
	searchErrors   *prometheus.CounterVec
	engineSelected *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with all collectors initialized.
// The metrics are not registered; call Register to register them with a registry.
func NewMetrics() *Metrics {
	return &Metrics{
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricSearchesTotal,
				Help: "Total number of completed searches by engine",
			},
			[]string{"engine"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricSearchDuration,
				Help:    "Histogram of search latency in seconds by engine",
				Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"engine"},
		),
		searchResults: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricSearchResults,
				Help:    "Histogram of result counts per search by engine",
				Buckets: []float64{0, 1, 2, 5, 10, 20},
			},
			[]string{"engine"},
		),
		searchErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricSearchErrorsTotal,
				Help: "Total number of failed searches by engine",
			},
			[]string{"engine"},
		),
		engineSelected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricEngineSelectedTotal,
				Help: "Engine selections at startup by engine and fallback",
			},
			[]string{"engine", "fallback"},
		),
	}
}

// Collectors returns every collector owned by Metrics.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.searchesTotal,
		m.searchDuration,
		m.searchResults,
		m.searchErrors,
		m.engineSelected,
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// EngineSelected records the outcome of engine selection.
func (m *Metrics) EngineSelected(engine domain.EngineType, fellBack bool) {
	m.engineSelected.WithLabelValues(engine.String(), strconv.FormatBool(fellBack)).Inc()
}

// SearchCompleted records a finished search.
func (m *Metrics) SearchCompleted(engine domain.EngineType, latency time.Duration, results int) {
	label := engine.String()
	m.searchesTotal.WithLabelValues(label).Inc()
	m.searchDuration.WithLabelValues(label).Observe(latency.Seconds())
	m.searchResults.WithLabelValues(label).Observe(float64(results))
}

// SearchFailed records a search that returned an error.
func (m *Metrics) SearchFailed(engine domain.EngineType) {
	m.searchErrors.WithLabelValues(engine.String()).Inc()
}
