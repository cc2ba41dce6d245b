package metrics

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, label string) float64 {
	t.Helper()
	counter, err := vec.GetMetricWithLabelValues(label)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	if err := g.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.RoutesCheckedTotal == nil {
		t.Error("RoutesCheckedTotal not initialized")
	}
	if r.SizingTotal == nil {
		t.Error("SizingTotal not initialized")
	}
	if r.DiscrepanciesTotal == nil {
		t.Error("DiscrepanciesTotal not initialized")
	}
	if r.RunDuration == nil {
		t.Error("RunDuration not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestNewRegistry_Independent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.RecordRoute("Valid")

	if got := counterValue(t, b.RoutesCheckedTotal, "Valid"); got != 0 {
		t.Errorf("second registry saw %v routes, want 0", got)
	}
}

func TestRecordRoute(t *testing.T) {
	r := NewRegistry()

	r.RecordRoute("Valid")
	r.RecordRoute("Valid")
	r.RecordRoute("NotReachable")

	if got := counterValue(t, r.RoutesCheckedTotal, "Valid"); got != 2 {
		t.Errorf("Valid = %v, want 2", got)
	}
	if got := counterValue(t, r.RoutesCheckedTotal, "NotReachable"); got != 1 {
		t.Errorf("NotReachable = %v, want 1", got)
	}
}

func TestRecordSizing(t *testing.T) {
	r := NewRegistry()

	r.RecordSizing(true, 0.31)
	r.RecordSizing(false, 0)

	if got := counterValue(t, r.SizingTotal, "sized"); got != 1 {
		t.Errorf("sized = %v, want 1", got)
	}
	if got := counterValue(t, r.SizingTotal, "error"); got != 1 {
		t.Errorf("error = %v, want 1", got)
	}

	var metric dto.Metric
	if err := r.SizingFillRatio.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 1 {
		t.Errorf("fill ratio samples = %d, want 1", metric.Histogram.GetSampleCount())
	}
}

func TestRecordDiscrepancies(t *testing.T) {
	r := NewRegistry()

	r.RecordDiscrepancies("cable_tray", 3)
	r.RecordDiscrepancies("cable_tray", 0)

	if got := counterValue(t, r.DiscrepanciesTotal, "cable_tray"); got != 3 {
		t.Errorf("cable_tray = %v, want 3", got)
	}
}

func TestRecordRun(t *testing.T) {
	r := NewRegistry()

	r.RecordRun(nil)
	r.RecordRun(errors.New("no cables"))
	r.RecordPhase(PhaseTotal, 20*time.Millisecond)

	if got := counterValue(t, r.RunsTotal, "ok"); got != 1 {
		t.Errorf("ok = %v, want 1", got)
	}
	if got := counterValue(t, r.RunsTotal, "error"); got != 1 {
		t.Errorf("error = %v, want 1", got)
	}
}

func TestUpdateGraphMetrics(t *testing.T) {
	r := NewRegistry()
	r.UpdateGraphMetrics(10, 12, 2, 1)

	tests := []struct {
		name     string
		gauge    prometheus.Gauge
		expected float64
	}{
		{"GraphNodes", r.GraphNodes, 10},
		{"GraphEdges", r.GraphEdges, 12},
		{"GraphComponents", r.GraphComponents, 2},
		{"SkippedRaceways", r.SkippedRaceways, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gaugeValue(t, tt.gauge); got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestWriteText(t *testing.T) {
	r := NewRegistry()
	r.RecordRoute("BrokenRoute")
	r.UpdateGraphMetrics(4, 3, 1, 0)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`raceway_routes_checked_total{status="BrokenRoute"} 1`,
		"raceway_graph_nodes 4",
		"# TYPE raceway_graph_edges gauge",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}
