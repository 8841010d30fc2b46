package rootbench

// Functionals turn a root-finding problem F(x) = 0 into a fixed-point problem
// x = f(x). A functional Γ must satisfy Γ(F)(x) = 0 ⟺ F(x) = 0 on the region of
// interest; that is the caller's responsibility and is never checked here.
// The standard iteration map is f = XMinus(Γ(F)).
//
// Every constructor captures its inputs and returns a new immutable Function.
// Building the same functional twice from the same inputs gives functions that
// agree pointwise.

// XMinus returns f(x) = x - g(x).
func XMinus(g Function) Function {
	return EvalFunc(func(x float64) (float64, error) {
		gx, err := g.Eval(x)
		if err != nil {
			return 0, err
		}
		return x - gx, nil
	})
}

// Identity returns F unchanged. XMinus(Identity(F)) is the plain map x - F(x).
func Identity(f Function) Function {
	return f
}

// Frac returns Γ(F)(x) = F(x) / (2 + k).
//
// With k = -2 the quotient is undefined everywhere and every evaluation fails
// with ErrDivisionByZero.
func Frac(f Function, k float64) Function {
	d := 2 + k
	return EvalFunc(func(x float64) (float64, error) {
		if d == 0 {
			return 0, undefinedAt(x, "frac functional with k=-2")
		}
		fx, err := f.Eval(x)
		if err != nil {
			return 0, err
		}
		return fx / d, nil
	})
}

// NewtonRaphson returns Γ(F)(x) = F(x) / F'(x), where df is the derivative of f
// supplied by the caller. Evaluating where F'(x) = 0 fails with ErrDivisionByZero.
func NewtonRaphson(f, df Function) Function {
	return EvalFunc(func(x float64) (float64, error) {
		dfx, err := df.Eval(x)
		if err != nil {
			return 0, err
		}
		if dfx == 0 {
			return 0, undefinedAt(x, "zero derivative")
		}
		fx, err := f.Eval(x)
		if err != nil {
			return 0, err
		}
		return fx / dfx, nil
	})
}

// FracMap is the iteration map x - F(x)/(2+k).
func FracMap(f Function, k float64) Function {
	return XMinus(Frac(f, k))
}

// NewtonMap is the Newton–Raphson iteration map x - F(x)/F'(x).
func NewtonMap(f, df Function) Function {
	return XMinus(NewtonRaphson(f, df))
}

// Sub returns (f - g)(x).
func Sub(f, g Function) Function {
	return EvalFunc(func(x float64) (float64, error) {
		fx, err := f.Eval(x)
		if err != nil {
			return 0, err
		}
		gx, err := g.Eval(x)
		if err != nil {
			return 0, err
		}
		return fx - gx, nil
	})
}

// Scale returns c·f(x).
func Scale(f Function, c float64) Function {
	return EvalFunc(func(x float64) (float64, error) {
		fx, err := f.Eval(x)
		if err != nil {
			return 0, err
		}
		return c * fx, nil
	})
}

// Div returns f(x)/g(x); it is undefined where g(x) = 0.
func Div(f, g Function) Function {
	return EvalFunc(func(x float64) (float64, error) {
		gx, err := g.Eval(x)
		if err != nil {
			return 0, err
		}
		if gx == 0 {
			return 0, undefinedAt(x, "zero denominator")
		}
		fx, err := f.Eval(x)
		if err != nil {
			return 0, err
		}
		return fx / gx, nil
	})
}

// Compose returns outer(inner(x)).
func Compose(outer, inner Function) Function {
	return EvalFunc(func(x float64) (float64, error) {
		y, err := inner.Eval(x)
		if err != nil {
			return 0, err
		}
		return outer.Eval(y)
	})
}
