// Package testfunc holds the analytic test functions used to exercise the
// root finders, together with their derivatives and arbitrary-precision forms.
//
//   - Identity: x, root at 0.
//   - Polynom: x³ - 8.5x² + 20x - 8 = (x - 0.5)(x - 4)², roots at 0.5 and 4 (double).
//   - Trig: 2x - 3 sin x + 5, root at x ≈ -2.88323.
//   - Exp: eˣ - 2, root at ln 2.
package testfunc

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Known roots.
const (
	IdentityRoot = 0.0
	PolynomRoot  = 0.5
	PolynomRoot2 = 4.0
	TrigRoot     = -2.883236873 // 2x - 3 sin x + 5 = 0, to 9 decimals
	ExpRoot      = math.Ln2
)

func Identity(x float64) float64 {
	return x
}

func Polynom(x float64) float64 {
	return x*x*x - 8.5*x*x + 20*x - 8
}

func Trig(x float64) float64 {
	return 2*x - 3*math.Sin(x) + 5
}

func Exp(x float64) float64 {
	return math.Exp(x) - 2
}

// Derivatives, for Newton–Raphson.

func IdentityDeriv(_ float64) float64 {
	return 1
}

// PolynomDeriv vanishes at x = 4 and x = 5/3.
func PolynomDeriv(x float64) float64 {
	return 3*x*x - 17*x + 20
}

func TrigDeriv(x float64) float64 {
	return 2 - 3*math.Cos(x)
}

func ExpDeriv(x float64) float64 {
	return math.Exp(x)
}

// Arbitrary-precision forms. Each evaluates at the precision of x.

func IdentityBig(x *big.Float) *big.Float {
	return new(big.Float).Copy(x)
}

func PolynomBig(x *big.Float) *big.Float {
	prec := x.Prec()
	c := func(v float64) *big.Float { return new(big.Float).SetPrec(prec).SetFloat64(v) }

	// Horner: ((x - 8.5)x + 20)x - 8
	r := new(big.Float).SetPrec(prec).Sub(x, c(8.5))
	r.Mul(r, x)
	r.Add(r, c(20))
	r.Mul(r, x)
	return r.Sub(r, c(8))
}

func ExpBig(x *big.Float) *big.Float {
	r := bigfloat.Exp(x)
	return r.Sub(r, new(big.Float).SetPrec(r.Prec()).SetInt64(2))
}

// Ln2Big returns ln 2 at the given precision, the root of ExpBig.
func Ln2Big(prec uint) *big.Float {
	return bigfloat.Log(new(big.Float).SetPrec(prec).SetInt64(2))
}
