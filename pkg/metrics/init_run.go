package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "raceway_runs_total",
			Help: "Validation runs, by result (ok or error)",
		},
		[]string{"result"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "raceway_run_duration_seconds",
			Help:    "Duration of each validation run phase",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		},
		[]string{"phase"},
	)

	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "raceway_graph_nodes",
			Help: "Endpoint nodes in the last built raceway graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "raceway_graph_edges",
			Help: "Raceway edges in the last built raceway graph",
		},
	)

	r.GraphComponents = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "raceway_graph_components",
			Help: "Connected components in the last built raceway graph",
		},
	)

	r.SkippedRaceways = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "raceway_graph_skipped_raceways",
			Help: "Raceways left out of the last graph for a blank endpoint",
		},
	)
}
