package rootbench

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/rootbench/testfunc"
)

func bigf(prec uint, v float64) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(v)
}

// TestBisectBig_Exp computes ln 2 to 50 digits.
func TestBisectBig_Exp(t *testing.T) {
	const prec = 200
	eps := bigf(prec, 1e-50)

	root, steps, err := BisectBig(testfunc.ExpBig, bigf(prec, 0.5), bigf(prec, 1), eps)
	require.NoError(t, err)
	assert.Equal(t, 166, steps)

	diff := new(big.Float).SetPrec(prec).Sub(root, testfunc.Ln2Big(prec))
	diff.Abs(diff)
	assert.True(t, diff.Cmp(eps) <= 0, "|root - ln 2| = %s", diff.Text('g', 5))

	// Agrees with the float64 solver to float64 precision.
	r64, _, err := Bisect(Func(testfunc.Exp), 0.5, 1, 1e-15)
	require.NoError(t, err)
	got, _ := root.Float64()
	assert.InDelta(t, r64, got, 1e-15)
	assert.InDelta(t, math.Ln2, got, 1e-16)

	t.Logf("✓ ln 2 = %s", root.Text('f', 50))
}

func TestBisectBig_Polynom(t *testing.T) {
	const prec = 128

	root, _, err := BisectBig(testfunc.PolynomBig, bigf(prec, 0), bigf(prec, 1.3), bigf(prec, 1e-30))
	require.NoError(t, err)

	got, _ := root.Float64()
	assert.InDelta(t, testfunc.PolynomRoot, got, 1e-30)
}

func TestBisectBig_ExactMidpoint(t *testing.T) {
	root, steps, err := BisectBig(testfunc.IdentityBig, bigf(64, -1), bigf(64, 1), bigf(64, 1e-6))
	require.NoError(t, err)
	assert.Equal(t, 0, root.Sign())
	assert.Equal(t, 1, steps)
}

func TestBisectBig_Errors(t *testing.T) {
	_, _, err := BisectBig(testfunc.IdentityBig, bigf(64, 1), bigf(64, 2), bigf(64, 1e-6))
	assert.ErrorIs(t, err, ErrInvalidBracket)

	_, _, err = BisectBig(testfunc.IdentityBig, bigf(64, 1), bigf(64, -1), bigf(64, 1e-6))
	assert.ErrorIs(t, err, ErrInvalidBracket)

	_, _, err = BisectBig(testfunc.IdentityBig, bigf(64, -1), bigf(64, 1), bigf(64, 0))
	assert.ErrorIs(t, err, ErrInvalidTolerance)
}
