// The gridpath command runs the searches described by scenario files
// and prints each grid with the path found drawn over it.
//
// Usage:
//
//	gridpath [flags] scenario.yaml...
//
// Cells are drawn as '#' (blocked), '.' (open), 'S' (start), 'G' (goal)
// and '*' (on the path). See package
// github.com/rogpeppe/gridpath/internal/scenario for the file format.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/rogpeppe/gridpath/astar"
	"github.com/rogpeppe/gridpath/grid"
	"github.com/rogpeppe/gridpath/internal/logging"
	"github.com/rogpeppe/gridpath/internal/metrics"
	"github.com/rogpeppe/gridpath/internal/scenario"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type params struct {
	logLevel    string
	logPretty   bool
	metricsFile string
	trace       bool
	timeout     time.Duration
	files       []string
}

func parseFlags(args []string, stderr io.Writer) (*params, error) {
	var p params
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&p.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.BoolVar(&p.logPretty, "log-pretty", false, "log in human-readable form rather than JSON")
	fs.StringVar(&p.metricsFile, "metrics-file", "", "write Prometheus metrics to this file when done")
	fs.BoolVar(&p.trace, "trace", false, "log every expansion and relaxation (implies -log-level debug unless it is trace)")
	fs.DurationVar(&p.timeout, "timeout", 0, "give up on a search after this long (0 means no limit)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: gridpath [flags] scenario.yaml...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, flag.ErrHelp
	}
	p.files = fs.Args()
	if p.trace && p.logLevel != "trace" {
		p.logLevel = "debug"
	}
	return &p, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	p, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	log := logging.New(logging.Config{
		Level:  p.logLevel,
		Pretty: p.logPretty,
	}, stderr)
	log = log.With().Str("run_id", uuid.NewString()).Logger()

	rec := metrics.NewRecorder()
	failed := false
	for _, file := range p.files {
		ss, err := scenario.Load(file)
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("cannot load scenarios")
			failed = true
			continue
		}
		for _, s := range ss {
			slogger := log.With().Str("scenario", s.Name).Logger()
			if err := runScenario(ctx, p, s, rec, slogger, stdout); err != nil {
				slogger.Error().Err(err).Msg("search failed")
				failed = true
			}
		}
	}
	if p.metricsFile != "" {
		if err := rec.WriteTextfile(p.metricsFile); err != nil {
			log.Error().Err(err).Msg("cannot write metrics")
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

func runScenario(ctx context.Context, p *params, s *scenario.Scenario, rec *metrics.Recorder, log logging.Logger, stdout io.Writer) error {
	var extra []astar.Option
	if p.trace {
		extra = append(extra, astar.WithTracer(logTracer{log}))
	}
	pf, err := s.Pathfinder(extra...)
	if err != nil {
		return err
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	t0 := time.Now()
	r, err := pf.SearchContext(ctx, s.Start, s.Goal)
	elapsed := time.Since(t0)
	rec.Observe(r, elapsed)
	ev := log.Info().
		Stringer("outcome", r.Outcome).
		Int("expanded", r.Expanded).
		Dur("elapsed", elapsed)
	if r.Found() {
		ev = ev.Float64("cost", r.Cost).Int("length", len(r.Path))
	}
	ev.Msg("search finished")
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "== %s: %v", s.Name, r.Outcome)
	if r.Found() {
		fmt.Fprintf(stdout, ", cost %.3f, %d steps", r.Cost, len(r.Path)-1)
	}
	fmt.Fprintf(stdout, ", %d expanded\n", r.Expanded)
	return grid.Render(stdout, s.Grid, r.Path)
}

// logTracer logs search progress at debug level.
type logTracer struct {
	log logging.Logger
}

func (t logTracer) Expand(p grid.Point, g float64) {
	t.log.Debug().Stringer("cell", p).Float64("g", g).Msg("expand")
}

func (t logTracer) Relax(p grid.Point, oldG, newG float64) {
	ev := t.log.Debug().Stringer("cell", p).Float64("g", newG)
	if !math.IsInf(oldG, 1) {
		ev = ev.Float64("was", oldG)
	}
	ev.Msg("relax")
}
