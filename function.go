package rootbench

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Function is a real scalar function F: ℝ → ℝ.
//
// Eval returns an error only when the value is undefined at x (for example a
// quotient whose denominator vanishes). Implementations must be pure: the same
// x always yields the same result, and nothing is mutated by evaluation, so a
// Function may be shared freely between goroutines.
type Function interface {
	Eval(x float64) (float64, error)
}

// Func adapts a plain formula to Function. It never fails.
type Func func(x float64) float64

// Eval implements Function.
func (f Func) Eval(x float64) (float64, error) {
	return f(x), nil
}

// EvalFunc adapts a formula that can be undefined at some points.
type EvalFunc func(x float64) (float64, error)

// Eval implements Function.
func (f EvalFunc) Eval(x float64) (float64, error) {
	return f(x)
}

// MustEval evaluates f at x and panics if the value is undefined.
// Use it only where f is known to be total (plotting, tables of a Func).
func MustEval(f Function, x float64) float64 {
	y, err := f.Eval(x)
	if err != nil {
		panic("rootbench: " + err.Error())
	}
	return y
}

// sign returns -1, 0 or +1. NaN yields 0 and is rejected by callers before use.
func sign[T constraints.Float](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// sameSign reports whether x and y are both strictly positive or both strictly negative.
func sameSign[T constraints.Float](x, y T) bool {
	return sign(x)*sign(y) > 0
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
