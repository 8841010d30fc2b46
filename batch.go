package rootbench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// Method selects the root finder for a Problem.
type Method string

const (
	MethodBisection  Method = "bisection"
	MethodFixedPoint Method = "fixed-point"
)

// FunctionalKind selects how a fixed-point Problem builds its iteration map from F.
type FunctionalKind string

const (
	FunctionalIdentity FunctionalKind = "identity" // f = x - F
	FunctionalFrac     FunctionalKind = "frac"     // f = x - F/(2+k)
	FunctionalNewton   FunctionalKind = "newton"   // f = x - F/F'
)

// Problem describes one independent solve.
type Problem struct {
	Name   string
	Method Method

	F  Function // Target function
	DF Function // Derivative of F (Newton only)

	Functional FunctionalKind // Fixed point: how to build f from F
	K          float64        // Frac parameter

	A, B float64 // Bisection bracket
	X0   float64 // Fixed point starting value

	Tolerance float64 // Truncation error ε
	MaxIter   int     // Fixed point iteration cap
}

// Validate checks that p carries what its method needs. Numeric preconditions
// (sign change, ε > 0) are left to the solvers, which report them as their own
// failure kinds.
func (p Problem) Validate() error {
	if p.F == nil {
		return fmt.Errorf("%w: %q has no function", ErrInvalidProblem, p.Name)
	}

	switch p.Method {
	case MethodBisection:
		return nil
	case MethodFixedPoint:
	default:
		return fmt.Errorf("%w: %q has unknown method %q", ErrInvalidProblem, p.Name, p.Method)
	}

	switch p.Functional {
	case FunctionalIdentity, FunctionalFrac:
	case FunctionalNewton:
		if p.DF == nil {
			return fmt.Errorf("%w: %q uses newton without a derivative", ErrInvalidProblem, p.Name)
		}
	default:
		return fmt.Errorf("%w: %q has unknown functional %q", ErrInvalidProblem, p.Name, p.Functional)
	}

	return nil
}

// IterationMap builds the fixed-point map x - Γ(F)(x) selected by p.Functional.
func (p Problem) IterationMap() (Function, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	switch p.Functional {
	case FunctionalFrac:
		return FracMap(p.F, p.K), nil
	case FunctionalNewton:
		return NewtonMap(p.F, p.DF), nil
	default:
		return XMinus(Identity(p.F)), nil
	}
}

// Report is the outcome of one Problem.
type Report struct {
	ID       uuid.UUID
	Problem  string
	Method   Method
	Root     float64
	Steps    int       // Bisections, or map applications for fixed point
	Iterates []float64 // Fixed point only; also filled on failure
	Analysis *ConvergenceAnalysis
	Err      error
	Duration time.Duration
}

// Converged reports whether the solve produced a root.
func (r Report) Converged() bool {
	return r.Err == nil
}

// Config controls batch execution.
type Config struct {
	Workers  int            // Concurrent solves (default: GOMAXPROCS)
	Analysis AnalysisConfig // Applied to every fixed-point run
	Logger   *slog.Logger   // nil discards
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		Analysis: DefaultAnalysisConfig(),
	}
}

// Solve runs a single problem to completion.
func Solve(p Problem, cfg AnalysisConfig) (report Report) {
	report = Report{
		ID:      uuid.New(),
		Problem: p.Name,
		Method:  p.Method,
	}

	start := time.Now()
	defer func() { report.Duration = time.Since(start) }()

	if err := p.Validate(); err != nil {
		report.Err = err
		return report
	}

	switch p.Method {
	case MethodBisection:
		report.Root, report.Steps, report.Err = Bisect(p.F, p.A, p.B, p.Tolerance)

	case MethodFixedPoint:
		f, err := p.IterationMap()
		if err != nil {
			report.Err = err
			return report
		}

		root, iterates, err := FixedPoint(f, p.X0, p.Tolerance, p.MaxIter)
		report.Root, report.Iterates, report.Err = root, iterates, err
		if len(iterates) > 0 {
			report.Steps = len(iterates) - 1
			analysis := AnalyzeConvergence(iterates, cfg)
			report.Analysis = &analysis
		}
	}

	return report
}

// Run solves independent problems on cfg.Workers goroutines and returns one
// report per problem, in input order.
//
// Cancelling ctx stops new problems from starting; solves already running
// finish. Problems that never started get ctx's error in their report, and
// Run returns that error too.
func Run(ctx context.Context, problems []Problem, cfg Config) ([]Report, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(problems) {
		workers = len(problems)
	}

	reports := make([]Report, len(problems))
	started := make([]bool, len(problems))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range jobs {
				r := Solve(problems[i], cfg.Analysis)
				reports[i] = r

				if r.Err != nil {
					logger.Warn("problem failed",
						"problem", r.Problem, "run", r.ID, "method", r.Method,
						"kind", Kind(r.Err), "steps", r.Steps, "err", r.Err)
				} else {
					logger.Debug("problem solved",
						"problem", r.Problem, "run", r.ID, "method", r.Method,
						"root", r.Root, "steps", r.Steps, "duration", r.Duration)
				}
			}
		}()
	}

dispatch:
	for i := range problems {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
			started[i] = true
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i, ok := range started {
			if !ok {
				reports[i] = Report{Problem: problems[i].Name, Method: problems[i].Method, Err: err}
			}
		}
		return reports, fmt.Errorf("batch interrupted: %w", err)
	}

	logger.Info("batch complete", "problems", len(problems), "workers", workers)
	return reports, nil
}

// Summary aggregates a batch of reports.
type Summary struct {
	Total          int
	Converged      int
	Failed         int
	ByKind         map[string]int // Failure kind (see Kind) → count, successes under "ok"
	MeanSteps      float64
	MedianSteps    float64
	MeanDuration   time.Duration
	MedianDuration time.Duration
	P99Duration    time.Duration // Tail latency of a single solve
}

// Summarize computes counts and step/duration statistics over reports.
func Summarize(reports []Report) Summary {
	summary := Summary{
		Total:  len(reports),
		ByKind: make(map[string]int),
	}
	if len(reports) == 0 {
		return summary
	}

	steps := make([]float64, 0, len(reports))
	durations := make([]float64, 0, len(reports))
	for _, r := range reports {
		summary.ByKind[Kind(r.Err)]++
		if r.Converged() {
			summary.Converged++
		} else {
			summary.Failed++
		}
		steps = append(steps, float64(r.Steps))
		durations = append(durations, float64(r.Duration))
	}

	summary.MeanSteps, _ = stats.Mean(steps)
	summary.MedianSteps, _ = stats.Median(steps)

	meanDuration, _ := stats.Mean(durations)
	medianDuration, _ := stats.Median(durations)
	p99Duration, _ := stats.Percentile(durations, 99)
	summary.MeanDuration = time.Duration(meanDuration)
	summary.MedianDuration = time.Duration(medianDuration)
	summary.P99Duration = time.Duration(p99Duration)

	return summary
}
