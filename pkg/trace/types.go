// Package trace runs a full validation pass over one project snapshot: it
// builds the raceway graph, checks every cable route, sizes every raceway
// and runs the three containment audits.
package trace

import (
	"errors"
	"time"

	"github.com/dd0wney/cluso-raceway/pkg/constraints"
	"github.com/dd0wney/cluso-raceway/pkg/consistency"
	"github.com/dd0wney/cluso-raceway/pkg/library"
	"github.com/dd0wney/cluso-raceway/pkg/logging"
	"github.com/dd0wney/cluso-raceway/pkg/metrics"
	"github.com/dd0wney/cluso-raceway/pkg/records"
	"github.com/dd0wney/cluso-raceway/pkg/routing"
	"github.com/dd0wney/cluso-raceway/pkg/sizing"
	"github.com/dd0wney/cluso-raceway/pkg/topology"
)

// Caller-input errors. Run returns them wrapped; test with errors.Is.
var (
	ErrMissingCables   = errors.New("no cables supplied")
	ErrMissingRaceways = errors.New("no raceways supplied")
)

// Input is one immutable project snapshot. Cables and Raceways are required;
// Ductbanks and Trays may be empty.
type Input struct {
	Cables    []records.Cable
	Raceways  []records.Raceway
	Ductbanks []records.Ductbank
	Trays     []records.CableTray
}

// Options configures a Processor. Zero values select defaults.
type Options struct {
	// Workers sizes the pool used for routes and sizing (default: NumCPU)
	Workers int
	// Constraint filters edges during reachability search (default: none)
	Constraint constraints.PathConstraint
	// Conductors and Conduits default to the built-in tables
	Conductors *library.ConductorLibrary
	Conduits   *library.ConduitLibrary
	Logger     logging.Logger
	// Metrics is optional; nil disables recording
	Metrics *metrics.Registry
}

// Result is everything one run produces. Routes is ordered like Input.Cables
// and Sizing like Input.Raceways.
type Result struct {
	RunID string

	Routes []routing.RouteCheckResult
	Sizing []sizing.Sizing

	CableRaceway    *consistency.Report
	RacewayDuctbank *consistency.Report
	CableTray       *consistency.Report

	Graph      topology.Stats
	Components []topology.Component

	Duration time.Duration
}

// RouteFailures returns the route results that are not Valid, in input order.
func (r *Result) RouteFailures() []routing.RouteCheckResult {
	var out []routing.RouteCheckResult
	for _, route := range r.Routes {
		if !route.OK() {
			out = append(out, route)
		}
	}
	return out
}

// SizingErrors returns the raceways that could not be sized.
func (r *Result) SizingErrors() []sizing.Sizing {
	var out []sizing.Sizing
	for _, s := range r.Sizing {
		if !s.OK() {
			out = append(out, s)
		}
	}
	return out
}

// Audits returns the three consistency reports in presentation order.
func (r *Result) Audits() []*consistency.Report {
	return []*consistency.Report{r.CableRaceway, r.RacewayDuctbank, r.CableTray}
}

// Clean reports whether the run found nothing to fix.
func (r *Result) Clean() bool {
	if len(r.RouteFailures()) > 0 || len(r.SizingErrors()) > 0 {
		return false
	}
	for _, audit := range r.Audits() {
		if !audit.Empty() {
			return false
		}
	}
	return true
}
