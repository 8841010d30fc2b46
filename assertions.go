package rootbench

import (
	"errors"
	"math"
	"testing"
)

// AssertRoot verifies |got - want| ≤ eps.
func AssertRoot(t *testing.T, got, want, eps float64) {
	t.Helper()

	if math.Abs(got-want) > eps {
		t.Errorf("Root off: got %.12g, want %.12g ± %g (error %.3g)",
			got, want, eps, math.Abs(got-want))
		return
	}

	t.Logf("✓ Root %.12g (want %.12g ± %g)", got, want, eps)
}

// AssertResidual verifies |F(x)| ≤ tol.
func AssertResidual(t *testing.T, f Function, x, tol float64) {
	t.Helper()

	fx, err := f.Eval(x)
	if err != nil {
		t.Errorf("F(%g) undefined: %v", x, err)
		return
	}
	if math.Abs(fx) > tol {
		t.Errorf("Residual too large: |F(%.12g)| = %.3g (max: %g)", x, math.Abs(fx), tol)
	}
}

// AssertBisectionSteps verifies a bisection over width took ceil(log2(width/eps)) steps.
func AssertBisectionSteps(t *testing.T, width, eps float64, steps int) {
	t.Helper()

	want := int(math.Ceil(math.Log2(width / eps)))
	if steps != want {
		t.Errorf("Bisection took %d steps, expected ceil(log2(%g/%g)) = %d", steps, width, eps, want)
		return
	}

	t.Logf("✓ %d bisections for width %g at ε = %g", steps, width, eps)
}

// AssertConverges runs FixedPoint and fails the test unless it converges.
// Returns the fixed point and the iterates.
func AssertConverges(t *testing.T, f Function, x0, eps float64, maxIter int) (float64, []float64) {
	t.Helper()

	root, iterates, err := FixedPoint(f, x0, eps, maxIter)
	if err != nil {
		t.Fatalf("Fixed-point iteration from x0=%g failed (%s): %v", x0, Kind(err), err)
	}

	t.Logf("✓ Converged to %.12g in %d iterations (ε = %g, cap %d)",
		root, len(iterates)-1, eps, maxIter)
	return root, iterates
}

// AssertDidNotConverge runs FixedPoint and fails the test unless it exhausts
// its cap. Returns the iterate history carried by the error.
func AssertDidNotConverge(t *testing.T, f Function, x0, eps float64, maxIter int) []float64 {
	t.Helper()

	root, _, err := FixedPoint(f, x0, eps, maxIter)
	var convErr *ConvergenceError
	if !errors.As(err, &convErr) {
		t.Fatalf("Expected DidNotConverge from x0=%g, got root=%g err=%v", x0, root, err)
	}
	if len(convErr.Iterates) != maxIter {
		t.Errorf("Iterate history has %d entries, expected cap %d", len(convErr.Iterates), maxIter)
	}

	t.Logf("✓ No convergence within %d iterates (last x=%.6g)",
		maxIter, convErr.Iterates[len(convErr.Iterates)-1])
	return convErr.Iterates
}

// AssertBehavior verifies the convergence classification of a sequence.
func AssertBehavior(t *testing.T, analysis ConvergenceAnalysis, want Behavior) {
	t.Helper()

	if analysis.Behavior != want {
		t.Errorf("Behavior = %s, expected %s (rate=%.4f, period=%d, alternations=%d)",
			analysis.Behavior, want, analysis.Rate, analysis.Period, analysis.Alternations)
		return
	}

	t.Logf("✓ Behavior %s (rate=%.4f)", want, analysis.Rate)
}

// PrintIterates outputs an iterate table with its convergence analysis.
func PrintIterates(t *testing.T, iterates []float64) {
	t.Helper()

	analysis := AnalyzeConvergence(iterates, DefaultAnalysisConfig())

	t.Logf("\n=== Iterates ===")
	t.Logf("  k    x_k                  x_k - x_{k-1}")
	t.Logf("  --   -------------------  -------------")
	for k, x := range iterates {
		if k == 0 {
			t.Logf("  %-4d %19.12g", k, x)
			continue
		}
		t.Logf("  %-4d %19.12g  %13.4e", k, x, x-iterates[k-1])
	}

	PrintAnalysis(t, analysis)
}

// PrintAnalysis outputs a convergence analysis to the test log.
func PrintAnalysis(t *testing.T, analysis ConvergenceAnalysis) {
	t.Helper()

	t.Logf("\nConvergence:")
	t.Logf("  Behavior:     %s", analysis.Behavior)
	t.Logf("  Rate:         %.6f", analysis.Rate)
	t.Logf("  Order:        %.3f", analysis.Order)
	t.Logf("  Period:       %d", analysis.Period)
	t.Logf("  Amplitude:    %.6g", analysis.Amplitude)
	t.Logf("  Alternations: %d", analysis.Alternations)

	switch analysis.Behavior {
	case BehaviorMonotonic:
		t.Logf("  ✓ Monotonic approach (0 < f' < 1 near the fixed point)")
	case BehaviorOscillatory:
		t.Logf("  ✓ Oscillating approach (-1 < f' < 0 near the fixed point)")
	case BehaviorCycle:
		t.Logf("  ⚠ Trapped in a period-%d cycle", analysis.Period)
	case BehaviorDivergent:
		t.Logf("  ✗ Divergent (|f'| > 1 near the fixed point)")
	default:
		t.Logf("  ? Too few iterates to classify")
	}
}
