package rootbench

import "math"

// BisectionStep records one midpoint evaluation.
type BisectionStep struct {
	K    int     // 1-based bisection count
	A, B float64 // Interval after narrowing
	Mid  float64 // Midpoint that was evaluated
	FMid float64 // F(Mid)
}

// Bisect finds a root of f in [a, b] by interval bisection.
//
// f(a) and f(b) must have strictly opposite signs; otherwise Bisect returns a
// *BracketError (errors.Is ErrInvalidBracket) after evaluating only the two
// endpoints. An endpoint where f is exactly zero is returned at once with zero
// steps.
//
// Each step evaluates the midpoint m. If f(m) == 0, m is returned immediately.
// Otherwise the endpoint whose value has the same sign as f(m) is replaced by m.
// The loop stops when b - a ≤ eps and the midpoint of the final interval is
// returned, together with the number of midpoints evaluated. Starting from
// width W that is ceil(log2(W/eps)) steps.
func Bisect(f Function, a, b, eps float64) (root float64, steps int, err error) {
	return bisect(f, a, b, eps, nil)
}

// BisectTrace is Bisect that also returns every step taken, for tabulation.
func BisectTrace(f Function, a, b, eps float64) (float64, []BisectionStep, error) {
	var trace []BisectionStep
	root, _, err := bisect(f, a, b, eps, func(s BisectionStep) {
		trace = append(trace, s)
	})
	return root, trace, err
}

func bisect(f Function, a, b, eps float64, onStep func(BisectionStep)) (float64, int, error) {
	if !(eps > 0) {
		return 0, 0, ErrInvalidTolerance
	}

	fa, err := f.Eval(a)
	if err != nil {
		return 0, 0, &EvalError{Step: 0, X: a, Err: err}
	}
	fb, err := f.Eval(b)
	if err != nil {
		return 0, 0, &EvalError{Step: 0, X: b, Err: err}
	}

	if !(a < b) || math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, 0, &BracketError{A: a, B: b, FA: fa, FB: fb}
	}
	if fa == 0 {
		return a, 0, nil
	}
	if fb == 0 {
		return b, 0, nil
	}
	if sameSign(fa, fb) {
		return 0, 0, &BracketError{A: a, B: b, FA: fa, FB: fb}
	}

	steps := 0
	for b-a > eps {
		m := a + (b-a)/2
		// Adjacent floats: the interval cannot shrink any further.
		if m <= a || m >= b {
			break
		}

		fm, err := f.Eval(m)
		if err != nil {
			return 0, steps, &EvalError{Step: steps + 1, X: m, Err: err}
		}
		steps++
		if math.IsNaN(fm) {
			return 0, steps, &EvalError{Step: steps, X: m, Err: ErrUndefinedValue}
		}

		if fm == 0 {
			if onStep != nil {
				onStep(BisectionStep{K: steps, A: m, B: m, Mid: m, FMid: fm})
			}
			return m, steps, nil
		}

		if sameSign(fm, fa) {
			a, fa = m, fm
		} else {
			b = m
		}

		if onStep != nil {
			onStep(BisectionStep{K: steps, A: a, B: b, Mid: m, FMid: fm})
		}
	}

	return a + (b-a)/2, steps, nil
}
