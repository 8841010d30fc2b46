// Package rootbench finds roots of real scalar functions and measures how the
// iterations get there.
//
// # Overview
//
// rootbench solves F(x) = 0 on the real line with two methods and lets you
// inspect their convergence: rate, order, monotonic vs. oscillating approach,
// cycles and divergence.
//
// # Architecture
//
// The package components:
//
//   - function/    - The Function contract: Eval(x) (float64, error)
//   - functional/  - Transforms Γ(F) that turn F(x)=0 into x = f(x)
//   - bisect/      - Interval bisection on a sign-changing bracket
//   - fixedpoint/  - Simple iteration x_{k+1} = f(x_k) with an iteration cap
//   - convergence/ - Rate, order and period analysis of iterate sequences
//   - batch/       - Parallel runner over independent problems
//   - registry/    - Named test functions (identity, polynom, trig, exp)
//   - assertions/  - Test helpers for convergence properties
//
// # Quick Start
//
// Bisection on a bracket where F changes sign:
//
//	f := rootbench.Func(func(x float64) float64 { return 2*x - 3*math.Sin(x) + 5 })
//
//	root, steps, err := rootbench.Bisect(f, -3, -2, 1e-6)
//	if errors.Is(err, rootbench.ErrInvalidBracket) {
//	    log.Fatal("no sign change")
//	}
//	fmt.Printf("root %.6f after %d bisections\n", root, steps)
//
// Fixed-point iteration on a map built by a functional:
//
//	g := rootbench.NewtonMap(f, rootbench.Func(func(x float64) float64 { return 2 - 3*math.Cos(x) }))
//
//	root, iterates, err := rootbench.FixedPoint(g, -2, 1e-12, 50)
//	var conv *rootbench.ConvergenceError
//	if errors.As(err, &conv) {
//	    // conv.Iterates holds the whole history
//	}
//
//	analysis := rootbench.AnalyzeConvergence(iterates, rootbench.DefaultAnalysisConfig())
//	fmt.Println(analysis.Behavior, analysis.Order)
//
// # Functionals
//
// A functional Γ must satisfy Γ(F)(x) = 0 ⟺ F(x) = 0; the iteration map is
// f(x) = x - Γ(F)(x).
//
//	Frac:          Γ(F) = F / (2 + k)
//	NewtonRaphson: Γ(F) = F / F'    (undefined where F' = 0)
//	Identity:      Γ(F) = F
//
// f converges near a fixed point x* when |f'(x*)| < 1. For Frac with k = 0 on
// 2x - 3sin(x) + 5 the slope at the root is about -1.45, so the iteration
// drifts away and settles into a 2-cycle instead; Newton's map has f'(x*) = 0
// and converges quadratically.
//
// # Errors
//
// Every failure is returned, never retried:
//
//   - ErrInvalidBracket  - F does not change sign on [a, b] (*BracketError)
//   - ErrDidNotConverge  - iteration cap reached (*ConvergenceError carries the iterates)
//   - ErrDivisionByZero  - a functional was evaluated where it is undefined (*EvalError)
//
// # Concurrency
//
// Solvers are synchronous and keep all state on the stack, and Functions are
// immutable, so independent solves may run in parallel. Run does exactly that
// over a worker pool.
package rootbench
