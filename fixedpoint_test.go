package rootbench

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/rootbench/testfunc"
)

// cosFixedPoint is the Dottie number, the solution of cos x = x.
const cosFixedPoint = 0.7390851332151607

// TestFixedPoint_Cos verifies the loose-tolerance run on cos from 2.5.
func TestFixedPoint_Cos(t *testing.T) {
	root, iterates := AssertConverges(t, Func(math.Cos), 2.5, 0.1, 10)

	assert.InDelta(t, 0.7674860994562304, root, 1e-12)
	require.Len(t, iterates, 4)
	assert.Equal(t, 2.5, iterates[0])
	assert.Equal(t, root, iterates[len(iterates)-1])
}

// TestFixedPoint_Cos_Tight converges to the Dottie number within ε/(1-q).
func TestFixedPoint_Cos_Tight(t *testing.T) {
	root, iterates := AssertConverges(t, Func(math.Cos), 2.5, 1e-10, 200)

	AssertRoot(t, root, cosFixedPoint, 1e-9)
	assert.Len(t, iterates, 56)

	analysis := AnalyzeConvergence(iterates, DefaultAnalysisConfig())
	AssertBehavior(t, analysis, BehaviorOscillatory)
	assert.InDelta(t, math.Sin(cosFixedPoint), analysis.Rate, 0.01)
}

// TestFixedPoint_ContractionBound verifies N ≤ ceil(log(ε/|x0-x*|) / log q)
// for a contraction with constant q = sin(1) on [-1, 1].
func TestFixedPoint_ContractionBound(t *testing.T) {
	x0, eps := 1.0, 1e-8
	_, iterates := AssertConverges(t, Func(math.Cos), x0, eps, 1000)

	bound := int(math.Ceil(math.Log(eps/math.Abs(x0-cosFixedPoint)) / math.Log(math.Sin(1))))
	n := len(iterates) - 1

	assert.Equal(t, 46, n)
	assert.LessOrEqual(t, n, bound)
	t.Logf("  %d iterations, contraction bound %d", n, bound)
}

// TestFixedPoint_Newton verifies quadratic convergence on the simple root of polynom.
func TestFixedPoint_Newton(t *testing.T) {
	f := NewtonMap(Func(testfunc.Polynom), Func(testfunc.PolynomDeriv))

	root, iterates := AssertConverges(t, f, 0, 1e-12, 50)

	want := []float64{
		0,
		0.4,
		0.4947368421052632,
		0.4999842420422313,
		0.4999999998581086,
		0.49999999999999994,
		0.5000000000000001,
	}
	if diff := cmp.Diff(want, iterates, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Errorf("Newton iterates mismatch (-want +got):\n%s", diff)
	}
	AssertRoot(t, root, testfunc.PolynomRoot, 1e-12)

	analysis := AnalyzeConvergence(iterates, DefaultAnalysisConfig())
	AssertBehavior(t, analysis, BehaviorMonotonic)
	assert.InDelta(t, 2, analysis.Order, 0.1)
	PrintIterates(t, iterates)
}

func TestFixedPoint_NewtonExp(t *testing.T) {
	f := NewtonMap(Func(testfunc.Exp), Func(testfunc.ExpDeriv))

	root, iterates := AssertConverges(t, f, 0, 1e-12, 50)
	AssertRoot(t, root, testfunc.ExpRoot, 1e-15)
	assert.Len(t, iterates, 7)
}

// TestFixedPoint_ZeroDerivative verifies a Newton step on a flat point stops the run.
func TestFixedPoint_ZeroDerivative(t *testing.T) {
	f := NewtonMap(Func(testfunc.Polynom), Func(testfunc.PolynomDeriv))

	_, iterates, err := FixedPoint(f, testfunc.PolynomRoot2, 1e-6, 20)
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, "division-by-zero", Kind(err))

	var evalErr *EvalError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, 1, evalErr.Step)
	assert.Equal(t, testfunc.PolynomRoot2, evalErr.X)
	assert.Equal(t, []float64{testfunc.PolynomRoot2}, iterates)
}

// TestFixedPoint_Divergence verifies FracMap with k=0 on trig does not settle
// on the root: |f'(x*)| ≈ 1.45 repels the iterates.
func TestFixedPoint_Divergence(t *testing.T) {
	f := FracMap(Func(testfunc.Trig), 0)

	iterates := AssertDidNotConverge(t, f, -2, 1e-5, 10)
	assert.Equal(t, -2.0, iterates[0])
	assert.Greater(t, math.Abs(iterates[len(iterates)-1]-testfunc.TrigRoot), 0.5)

	analysis := AnalyzeConvergence(iterates, DefaultAnalysisConfig())
	assert.NotEqual(t, BehaviorMonotonic, analysis.Behavior)
	PrintIterates(t, iterates)
}

// TestFixedPoint_CapOfOne verifies a cap of one stops before any evaluation.
func TestFixedPoint_CapOfOne(t *testing.T) {
	calls := 0
	f := EvalFunc(func(x float64) (float64, error) {
		calls++
		return math.Cos(x), nil
	})

	_, iterates, err := FixedPoint(f, 2.5, 0.1, 1)
	require.ErrorIs(t, err, ErrDidNotConverge)
	assert.Equal(t, []float64{2.5}, iterates)
	assert.Equal(t, 0, calls)
}

// TestFixedPoint_ExactFixedPoint verifies x0 = f(x0) stops after one application.
func TestFixedPoint_ExactFixedPoint(t *testing.T) {
	f := Func(func(x float64) float64 { return 0.5*x + 1 })

	root, iterates, err := FixedPoint(f, 2, 1e-12, 10)
	require.NoError(t, err)
	assert.Equal(t, 2.0, root)
	assert.Equal(t, []float64{2, 2}, iterates)
}

func TestFixedPoint_InvalidArguments(t *testing.T) {
	cos := Func(math.Cos)

	_, _, err := FixedPoint(cos, 1, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidTolerance)

	_, _, err = FixedPoint(cos, 1, math.NaN(), 10)
	assert.ErrorIs(t, err, ErrInvalidTolerance)

	_, _, err = FixedPoint(cos, 1, 1e-6, 0)
	assert.ErrorIs(t, err, ErrInvalidIterationCap)

	_, _, err = FixedPoint(cos, 1, 1e-6, -5)
	assert.ErrorIs(t, err, ErrInvalidIterationCap)
}

// TestFixedPoint_IteratesFollowMap verifies x_{k+1} = f(x_k) throughout, and
// that the ConvergenceError carries the same sequence.
func TestFixedPoint_IteratesFollowMap(t *testing.T) {
	f := FracMap(Func(testfunc.Trig), 0)

	_, iterates, err := FixedPoint(f, -2, 1e-12, 40)
	var convErr *ConvergenceError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, 40, convErr.MaxIter)
	assert.Equal(t, iterates, convErr.Iterates)

	for k := 0; k+1 < len(iterates); k++ {
		assert.Equal(t, MustEval(f, iterates[k]), iterates[k+1], "k=%d", k)
	}
}

// TestTrajectory verifies Trajectory ignores tolerance and matches FixedPoint's prefix.
func TestTrajectory(t *testing.T) {
	f := Func(math.Cos)

	trajectory, err := Trajectory(f, 2.5, 100)
	require.NoError(t, err)
	require.Len(t, trajectory, 101)

	_, iterates, err := FixedPoint(f, 2.5, 0.1, 10)
	require.NoError(t, err)
	assert.Equal(t, iterates, trajectory[:len(iterates)])
}

func TestTrajectory_EvalError(t *testing.T) {
	f := NewtonMap(Func(testfunc.Polynom), Func(testfunc.PolynomDeriv))

	trajectory, err := Trajectory(f, testfunc.PolynomRoot2, 5)
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, []float64{testfunc.PolynomRoot2}, trajectory)
}
