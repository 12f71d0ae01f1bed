// Package metrics records Prometheus metrics about searches made by
// the gridpath command.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rogpeppe/gridpath/astar"
)

const namespace = "gridpath"

// Recorder holds the search metrics in its own registry.
type Recorder struct {
	registry *prometheus.Registry

	Searches *prometheus.CounterVec
	Expanded prometheus.Histogram
	PathCost prometheus.Histogram
	Duration prometheus.Histogram
}

// NewRecorder returns a Recorder with all its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Searches made, by outcome.",
		}, []string{"outcome"}),
		Expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "expanded_nodes",
			Help:      "Cells closed per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		PathCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_cost",
			Help:      "Cost of the paths found.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time taken per search.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
	}
	r.registry.MustRegister(r.Searches, r.Expanded, r.PathCost, r.Duration)
	return r
}

// Observe records the result of one search that took d.
func (r *Recorder) Observe(res astar.Result, d time.Duration) {
	r.Searches.WithLabelValues(res.Outcome.String()).Inc()
	r.Expanded.Observe(float64(res.Expanded))
	if res.Found() {
		r.PathCost.Observe(res.Cost)
	}
	r.Duration.Observe(d.Seconds())
}

// Gatherer returns the registry holding the metrics.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics to path in the text format read by
// the node exporter's textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
