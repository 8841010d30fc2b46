package rootbench

import (
	"errors"
	"fmt"
)

// Failure kinds. Match them with errors.Is; the typed errors below carry the
// details and unwrap to one of these.
var (
	// ErrInvalidBracket means F does not change sign across the search interval.
	ErrInvalidBracket = errors.New("rootbench: no sign change at interval endpoints")

	// ErrDidNotConverge means fixed-point iteration hit its iteration cap.
	ErrDidNotConverge = errors.New("rootbench: did not converge")

	// ErrDivisionByZero means a quotient was evaluated where its denominator is zero.
	ErrDivisionByZero = errors.New("rootbench: division by zero")

	// ErrUndefinedValue means a function returned NaN where a sign was needed.
	ErrUndefinedValue = errors.New("rootbench: function value is NaN")

	// ErrInvalidTolerance means the truncation error is not a positive number.
	ErrInvalidTolerance = errors.New("rootbench: tolerance must be positive")

	// ErrInvalidIterationCap means the iteration cap is below one.
	ErrInvalidIterationCap = errors.New("rootbench: iteration cap must be at least 1")

	// ErrUnknownFunction means a registry lookup found no function by that name.
	ErrUnknownFunction = errors.New("rootbench: unknown function")

	// ErrInvalidProblem means a Problem is missing what its method needs.
	ErrInvalidProblem = errors.New("rootbench: invalid problem")
)

// Kind names the failure kind of err for reports: "invalid-bracket",
// "did-not-converge", "division-by-zero", "undefined-value", "invalid-tolerance",
// "invalid-iteration-cap", "invalid-problem", "unknown-function" or "error".
// A nil err is "ok".
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidBracket):
		return "invalid-bracket"
	case errors.Is(err, ErrDidNotConverge):
		return "did-not-converge"
	case errors.Is(err, ErrDivisionByZero):
		return "division-by-zero"
	case errors.Is(err, ErrUndefinedValue):
		return "undefined-value"
	case errors.Is(err, ErrInvalidTolerance):
		return "invalid-tolerance"
	case errors.Is(err, ErrInvalidIterationCap):
		return "invalid-iteration-cap"
	case errors.Is(err, ErrInvalidProblem):
		return "invalid-problem"
	case errors.Is(err, ErrUnknownFunction):
		return "unknown-function"
	default:
		return "error"
	}
}

// BracketError reports the endpoint values of a rejected search interval.
type BracketError struct {
	A, B   float64
	FA, FB float64
}

func (e *BracketError) Error() string {
	if e.A >= e.B {
		return fmt.Sprintf("%v: empty interval [%g, %g]", ErrInvalidBracket, e.A, e.B)
	}
	return fmt.Sprintf("%v: F(%g)=%g, F(%g)=%g", ErrInvalidBracket, e.A, e.FA, e.B, e.FB)
}

func (e *BracketError) Unwrap() error {
	return ErrInvalidBracket
}

// ConvergenceError is returned when fixed-point iteration exhausts its cap.
// Iterates holds the whole sequence x_0 … x_{MaxIter-1} for diagnosis.
type ConvergenceError struct {
	Iterates []float64
	MaxIter  int
}

func (e *ConvergenceError) Error() string {
	last := 0.0
	if n := len(e.Iterates); n > 0 {
		last = e.Iterates[n-1]
	}
	return fmt.Sprintf("%v after %d iterates (last x=%g)", ErrDidNotConverge, len(e.Iterates), last)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrDidNotConverge
}

// EvalError reports a function evaluation that failed during a solve.
// Step is the index of the iterate (fixed point) or midpoint (bisection)
// being computed; 0 refers to the initial evaluations.
type EvalError struct {
	Step int
	X    float64
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluation failed at step %d, x=%g: %v", e.Step, e.X, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// undefinedAt builds the error a Function returns where it has no value.
func undefinedAt(x float64, what string) error {
	return fmt.Errorf("%s at x=%g: %w", what, x, ErrDivisionByZero)
}
