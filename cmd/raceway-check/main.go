// Command raceway-check validates a project snapshot: cable routes against the
// raceway network, raceway trade sizes, and the containment cross-references.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dd0wney/cluso-raceway/pkg/config"
	"github.com/dd0wney/cluso-raceway/pkg/library"
	"github.com/dd0wney/cluso-raceway/pkg/logging"
	"github.com/dd0wney/cluso-raceway/pkg/metrics"
	"github.com/dd0wney/cluso-raceway/pkg/report"
	"github.com/dd0wney/cluso-raceway/pkg/snapshot"
	"github.com/dd0wney/cluso-raceway/pkg/trace"
)

// Exit codes
const (
	exitOK       = 0
	exitError    = 1
	exitUsage    = 2
	exitFindings = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("raceway-check", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		projectFile = fs.String("project", "", "Project snapshot YAML (cables, raceways, ductbanks, trays)")
		configFile  = fs.String("config", "", "Run configuration YAML")
		libraryFile = fs.String("library", "", "Conductor and conduit override YAML (overrides config)")
		workers     = fs.Int("workers", 0, "Worker pool size (overrides config)")
		color       = fs.Bool("color", false, "Style the report for a terminal")
		metricsFile = fs.String("metrics", "", "Write Prometheus text metrics to this file, or - for stdout")
		strict      = fs.Bool("strict", false, "Exit with status 3 when any finding is reported")
	)

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *projectFile == "" {
		fmt.Fprintln(stderr, "-project is required")
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return exitError
	}
	cfg.Merge(&config.Config{Workers: *workers, LibraryFile: *libraryFile, Color: *color})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid flags: %v\n", err)
		return exitUsage
	}

	logger := logging.NewJSONLogger(stderr, cfg.Level()).With(logging.Component("raceway-check"))

	conductors, conduits, err := library.LoadFile(cfg.LibraryFile)
	if err != nil {
		logger.Error("failed to load library", logging.Path(cfg.LibraryFile), logging.Error(err))
		return exitError
	}

	constraint, err := cfg.Constraint()
	if err != nil {
		logger.Error("failed to build constraints", logging.Error(err))
		return exitError
	}

	snap, err := snapshot.LoadFile(*projectFile)
	if err != nil {
		logger.Error("failed to load project", logging.Path(*projectFile), logging.Error(err))
		return exitError
	}
	for _, rejected := range snap.Rejected {
		logger.Warn("row skipped", logging.String("row", rejected.String()))
	}

	reg := metrics.NewRegistry()
	processor := trace.NewProcessor(trace.Options{
		Workers:    cfg.Workers,
		Constraint: constraint,
		Conductors: conductors,
		Conduits:   conduits,
		Logger:     logger,
		Metrics:    reg,
	})

	res, err := processor.Run(ctx, snap.Input())
	if err != nil {
		switch {
		case errors.Is(err, trace.ErrMissingCables), errors.Is(err, trace.ErrMissingRaceways):
			logger.Error("project is incomplete", logging.Path(*projectFile), logging.Error(err))
		default:
			logger.Error("validation run failed", logging.Error(err))
		}
		return exitError
	}

	if err := report.NewWriter(stdout, cfg.Color).Write(res); err != nil {
		logger.Error("failed to write report", logging.Error(err))
		return exitError
	}

	if *metricsFile != "" {
		if err := writeMetrics(reg, *metricsFile, stdout); err != nil {
			logger.Error("failed to write metrics", logging.Path(*metricsFile), logging.Error(err))
			return exitError
		}
	}

	if *strict && !res.Clean() {
		return exitFindings
	}
	return exitOK
}

func writeMetrics(reg *metrics.Registry, path string, stdout io.Writer) error {
	if path == "-" {
		return reg.WriteText(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := reg.WriteText(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
