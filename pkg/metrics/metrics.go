package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/common/expfmt"
)

// Phase labels for RunDuration.
const (
	PhaseGraph       = "graph"
	PhaseRoutes      = "routes"
	PhaseSizing      = "sizing"
	PhaseConsistency = "consistency"
	PhaseTotal       = "total"
)

// RecordRoute counts one checked cable route.
func (r *Registry) RecordRoute(status string) {
	r.RoutesCheckedTotal.WithLabelValues(status).Inc()
}

// RecordSizing counts one sized raceway. Successful sizings also observe
// their fill ratio.
func (r *Registry) RecordSizing(ok bool, ratio float64) {
	if !ok {
		r.SizingTotal.WithLabelValues("error").Inc()
		return
	}
	r.SizingTotal.WithLabelValues("sized").Inc()
	r.SizingFillRatio.Observe(ratio)
}

// RecordDiscrepancies adds n findings for the named audit.
func (r *Registry) RecordDiscrepancies(audit string, n int) {
	r.DiscrepanciesTotal.WithLabelValues(audit).Add(float64(n))
}

// RecordPhase observes the duration of one run phase.
func (r *Registry) RecordPhase(phase string, d time.Duration) {
	r.RunDuration.WithLabelValues(phase).Observe(d.Seconds())
}

// RecordRun counts a finished run.
func (r *Registry) RecordRun(err error) {
	if err != nil {
		r.RunsTotal.WithLabelValues("error").Inc()
		return
	}
	r.RunsTotal.WithLabelValues("ok").Inc()
}

// UpdateGraphMetrics sets the graph shape gauges.
func (r *Registry) UpdateGraphMetrics(nodes, edges, components, skipped int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.GraphComponents.Set(float64(components))
	r.SkippedRaceways.Set(float64(skipped))
}

// WriteText gathers every registered family and writes it in the Prometheus
// text exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
