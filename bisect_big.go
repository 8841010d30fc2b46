package rootbench

import (
	"math/big"
)

// BigFunction is a real function evaluated in arbitrary precision.
// It must return a new value and leave x untouched.
type BigFunction func(x *big.Float) *big.Float

// BisectBig is Bisect carried out on *big.Float, for roots wanted beyond
// float64 precision. Arithmetic runs at the precision of a (or 256 bits if a
// has none). Bracket rules, endpoint short circuits and the step count are
// those of Bisect.
func BisectBig(f BigFunction, a, b, eps *big.Float) (*big.Float, int, error) {
	if eps.Sign() <= 0 {
		return nil, 0, ErrInvalidTolerance
	}

	prec := a.Prec()
	if prec == 0 {
		prec = 256
	}
	lo := new(big.Float).SetPrec(prec).Set(a)
	hi := new(big.Float).SetPrec(prec).Set(b)

	fa, fb := f(lo), f(hi)
	if lo.Cmp(hi) >= 0 {
		return nil, 0, bigBracketError(lo, hi, fa, fb)
	}
	if fa.Sign() == 0 {
		return lo, 0, nil
	}
	if fb.Sign() == 0 {
		return hi, 0, nil
	}
	if fa.Sign() == fb.Sign() {
		return nil, 0, bigBracketError(lo, hi, fa, fb)
	}

	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	width := new(big.Float).SetPrec(prec)
	mid := func() *big.Float {
		m := new(big.Float).SetPrec(prec).Add(lo, hi)
		return m.Mul(m, half)
	}

	steps := 0
	for width.Sub(hi, lo).Cmp(eps) > 0 {
		m := mid()
		if m.Cmp(lo) <= 0 || m.Cmp(hi) >= 0 {
			break
		}

		fm := f(m)
		steps++
		if fm.Sign() == 0 {
			return m, steps, nil
		}

		if fm.Sign() == fa.Sign() {
			lo, fa = m, fm
		} else {
			hi = m
		}
	}

	return mid(), steps, nil
}

func bigBracketError(a, b, fa, fb *big.Float) error {
	af, _ := a.Float64()
	bf, _ := b.Float64()
	faf, _ := fa.Float64()
	fbf, _ := fb.Float64()
	return &BracketError{A: af, B: bf, FA: faf, FB: fbf}
}
