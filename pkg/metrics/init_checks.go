package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRouteMetrics() {
	r.RoutesCheckedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "raceway_routes_checked_total",
			Help: "Cable routes checked, by outcome status",
		},
		[]string{"status"},
	)
}

func (r *Registry) initSizingMetrics() {
	r.SizingTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "raceway_sizing_total",
			Help: "Raceways sized, by outcome (sized or error)",
		},
		[]string{"outcome"},
	)

	r.SizingFillRatio = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "raceway_sizing_fill_ratio",
			Help:    "Occupied fraction of the selected trade size",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.53},
		},
	)
}

func (r *Registry) initConsistencyMetrics() {
	r.DiscrepanciesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "raceway_discrepancies_total",
			Help: "Consistency findings, by audit",
		},
		[]string{"audit"},
	)
}
