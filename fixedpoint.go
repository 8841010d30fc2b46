package rootbench

import "math"

// FixedPoint iterates x_{k+1} = f(x_k) from x0 until two successive iterates
// differ by at most eps, and returns the last iterate with the whole sequence
// x_0, x_1, …, x_N (len = N+1).
//
// If the sequence reaches maxIter elements without meeting the tolerance,
// FixedPoint returns a *ConvergenceError (errors.Is ErrDidNotConverge) that
// carries the iterates. Growth, oscillation or NaN are not detected early: the
// cap is the only bound on the work done. The stopping test is the absolute
// difference |x_{k+1} - x_k|, so eps must suit the magnitude of the root.
//
// A failed evaluation of f ends the run with an *EvalError; the iterates
// computed before the failure are returned alongside it.
func FixedPoint(f Function, x0, eps float64, maxIter int) (root float64, iterates []float64, err error) {
	if !(eps > 0) {
		return 0, nil, ErrInvalidTolerance
	}
	if maxIter < 1 {
		return 0, nil, ErrInvalidIterationCap
	}

	iterates = make([]float64, 0, min(maxIter, 1024))
	iterates = append(iterates, x0)

	x := x0
	for len(iterates) < maxIter {
		next, err := f.Eval(x)
		if err != nil {
			return x, iterates, &EvalError{Step: len(iterates), X: x, Err: err}
		}
		iterates = append(iterates, next)

		if math.Abs(next-x) <= eps {
			return next, iterates, nil
		}
		x = next
	}

	return x, iterates, &ConvergenceError{Iterates: iterates, MaxIter: maxIter}
}

// Trajectory applies f n times from x0 and returns x_0 … x_n, with no stopping
// test. An evaluation failure truncates the trajectory and is returned.
func Trajectory(f Function, x0 float64, n int) ([]float64, error) {
	trajectory := make([]float64, 0, n+1)
	trajectory = append(trajectory, x0)

	x := x0
	for i := 0; i < n; i++ {
		next, err := f.Eval(x)
		if err != nil {
			return trajectory, &EvalError{Step: i + 1, X: x, Err: err}
		}
		x = next
		trajectory = append(trajectory, x)
	}

	return trajectory, nil
}
