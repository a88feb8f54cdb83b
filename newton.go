package rootfind

import "math"

// NewtonRaphson solves f(x) == 0 by Newton-Raphson iteration starting
// from x0, where df is the derivative of f.
//
// Algorithm:
//  1. Let x = x0.
//  2. While |f(x)| >= Eps, update x := x - f(x)/df(x).
//  3. Fail with a ConvergenceError once the step count exceeds
//     MaxNewtonIterations.
//
// The tolerance test runs before every step, so an x0 that already
// satisfies |f(x0)| < Eps is returned unchanged after zero iterations.
// Each iteration costs 2 evaluations of f and 1 of df.
//
// There is no guard against df(x) == 0 or against the iterate escaping
// to NaN/±Inf: the division follows IEEE 754 semantics and whatever
// value results flows back into the tolerance test. Convergence near a
// simple root is quadratic given a sufficiently close x0.
//
// Errors:
//   - ConvergenceError (matching ErrConvergence) — budget exhausted
//     before |f(x)| dropped below Eps.
func NewtonRaphson(f, df Func, x0 float64, opts ...Option) (float64, error) {
	o := apply(opts)

	x := x0
	count := 0
	for math.Abs(f(x)) >= o.Eps {
		x = x - f(x)/df(x)
		count++
		if count > o.MaxNewtonIterations {
			return 0, &ConvergenceError{Method: MethodNewtonRaphson, Iterations: o.MaxNewtonIterations}
		}
	}

	return x, nil
}
