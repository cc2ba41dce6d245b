package trace

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-raceway/pkg/consistency"
	"github.com/dd0wney/cluso-raceway/pkg/constraints"
	"github.com/dd0wney/cluso-raceway/pkg/library"
	"github.com/dd0wney/cluso-raceway/pkg/logging"
	"github.com/dd0wney/cluso-raceway/pkg/metrics"
	"github.com/dd0wney/cluso-raceway/pkg/parallel"
	"github.com/dd0wney/cluso-raceway/pkg/records"
	"github.com/dd0wney/cluso-raceway/pkg/routing"
	"github.com/dd0wney/cluso-raceway/pkg/sizing"
	"github.com/dd0wney/cluso-raceway/pkg/topology"
	"github.com/dd0wney/cluso-raceway/pkg/validation"
)

// Processor runs validation passes. It holds only read-only configuration
// and may be shared between goroutines.
type Processor struct {
	workers    int
	constraint constraints.PathConstraint
	conductors *library.ConductorLibrary
	conduits   *library.ConduitLibrary
	logger     logging.Logger
	metrics    *metrics.Registry
}

// NewProcessor creates a processor, filling unset options with defaults.
func NewProcessor(opts Options) *Processor {
	p := &Processor{
		workers:    validation.DefaultOrInt(opts.Workers, runtime.NumCPU()),
		constraint: opts.Constraint,
		conductors: opts.Conductors,
		conduits:   opts.Conduits,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
	}
	if p.constraint == nil {
		p.constraint = constraints.NewComposite()
	}
	if p.conductors == nil {
		p.conductors = library.NewConductorLibrary(nil)
	}
	if p.conduits == nil {
		p.conduits = library.NewConduitLibrary(nil)
	}
	if p.logger == nil {
		p.logger = logging.NewNopLogger()
	}
	return p
}

// Run validates one snapshot. Route, sizing and consistency findings are
// returned in the Result; an error means the run itself did not complete,
// either for missing input or a cancelled ctx.
func (p *Processor) Run(ctx context.Context, in Input) (*Result, error) {
	runID := uuid.NewString()
	log := p.logger.With(logging.Component("trace"), logging.RunID(runID))
	total := logging.StartTimer(log, "validation run finished")

	res, err := p.run(ctx, log, runID, in)
	if p.metrics != nil {
		p.metrics.RecordRun(err)
	}
	if err != nil {
		total.EndError(err)
		return nil, err
	}

	res.Duration = total.End(
		logging.Int("route_failures", len(res.RouteFailures())),
		logging.Int("sizing_errors", len(res.SizingErrors())),
	)
	p.observe(metrics.PhaseTotal, res.Duration)
	return res, nil
}

func (p *Processor) run(ctx context.Context, log logging.Logger, runID string, in Input) (*Result, error) {
	if len(in.Cables) == 0 {
		return nil, fmt.Errorf("trace: %w", ErrMissingCables)
	}
	if len(in.Raceways) == 0 {
		return nil, fmt.Errorf("trace: %w", ErrMissingRaceways)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{RunID: runID}

	start := time.Now()
	g := topology.BuildGraph(in.Raceways)
	res.Graph = g.Stats()
	res.Components = g.Components()
	p.observe(metrics.PhaseGraph, time.Since(start))
	if p.metrics != nil {
		p.metrics.UpdateGraphMetrics(res.Graph.NodeCount, res.Graph.EdgeCount, len(res.Components), res.Graph.SkippedCount)
	}
	log.Info("raceway graph built",
		logging.Int("nodes", res.Graph.NodeCount),
		logging.Int("edges", res.Graph.EdgeCount),
		logging.Int("components", len(res.Components)),
		logging.Int("skipped", res.Graph.SkippedCount))
	if res.Graph.SkippedCount > 0 {
		log.Warn("raceways with a blank endpoint left out of the graph", logging.Count(res.Graph.SkippedCount))
	}

	var err error
	if res.Routes, err = p.checkRoutes(ctx, log, g, in); err != nil {
		return nil, err
	}
	if res.Sizing, err = p.sizeRaceways(ctx, log, in); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	res.CableRaceway = consistency.CheckCableRaceway(in.Cables, in.Raceways)
	res.RacewayDuctbank = consistency.CheckRacewayDuctbank(in.Raceways, in.Ductbanks)
	res.CableTray = consistency.CheckCableTray(in.Cables, in.Trays)
	p.observe(metrics.PhaseConsistency, time.Since(start))

	for _, report := range res.Audits() {
		n := len(report.Discrepancies)
		if p.metrics != nil {
			p.metrics.RecordDiscrepancies(string(report.Audit), n)
		}
		log.Info("consistency audit finished", logging.Audit(string(report.Audit)), logging.Count(n))
	}

	return res, nil
}

func (p *Processor) checkRoutes(ctx context.Context, log logging.Logger, g *topology.Graph, in Input) ([]routing.RouteCheckResult, error) {
	start := time.Now()
	idx := records.IndexRaceways(in.Raceways)
	results := make([]routing.RouteCheckResult, len(in.Cables))

	err := parallel.ForEach(ctx, p.workers, len(in.Cables), log, func(i int) {
		results[i] = routing.Check(g, in.Cables[i], idx, p.constraint)
	})
	if err != nil {
		return nil, fmt.Errorf("check routes: %w", err)
	}
	p.observe(metrics.PhaseRoutes, time.Since(start))

	for _, r := range results {
		if p.metrics != nil {
			p.metrics.RecordRoute(r.Status.String())
		}
		if !r.OK() {
			log.Debug(r.Message, logging.CableID(r.CableID), logging.Status(r.Status.String()))
		}
	}
	return results, nil
}

func (p *Processor) sizeRaceways(ctx context.Context, log logging.Logger, in Input) ([]sizing.Sizing, error) {
	start := time.Now()
	cables := records.IndexCables(in.Cables)
	results := make([]sizing.Sizing, len(in.Raceways))

	err := parallel.ForEach(ctx, p.workers, len(in.Raceways), log, func(i int) {
		results[i] = sizing.Calculate(in.Raceways[i], cables, p.conductors, p.conduits)
	})
	if err != nil {
		return nil, fmt.Errorf("size raceways: %w", err)
	}
	p.observe(metrics.PhaseSizing, time.Since(start))

	for _, s := range results {
		if p.metrics != nil {
			p.metrics.RecordSizing(s.OK(), s.Ratio)
		}
		excluded := len(s.UnknownCables) + len(s.UnresolvedDiameter) + len(s.BadQuantity)
		if excluded > 0 {
			log.Debug("fill tokens excluded from sizing",
				logging.RacewayID(s.RacewayID),
				logging.Any("unknown_cables", s.UnknownCables),
				logging.Any("unresolved_diameter", s.UnresolvedDiameter),
				logging.Any("bad_quantity", s.BadQuantity))
		}
	}
	return results, nil
}

func (p *Processor) observe(phase string, d time.Duration) {
	if p.metrics != nil {
		p.metrics.RecordPhase(phase, d)
	}
}
