package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Route metrics
	RoutesCheckedTotal *prometheus.CounterVec

	// Sizing metrics
	SizingTotal     *prometheus.CounterVec
	SizingFillRatio prometheus.Histogram

	// Consistency metrics
	DiscrepanciesTotal *prometheus.CounterVec

	// Run metrics
	RunsTotal       *prometheus.CounterVec
	RunDuration     *prometheus.HistogramVec
	GraphNodes      prometheus.Gauge
	GraphEdges      prometheus.Gauge
	GraphComponents prometheus.Gauge
	SkippedRaceways prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initRouteMetrics()
	r.initSizingMetrics()
	r.initConsistencyMetrics()
	r.initRunMetrics()

	return r
}
