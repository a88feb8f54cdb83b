package rootfind

import "errors"

// Solve solves f(x) == 0 using Newton-Raphson iteration from x0, falling
// back to bisection over [x0, x1] if Newton runs out of budget.
//
// The fallback fires only on a ConvergenceError from the Newton phase;
// any other failure escaping f or df (a panic in a caller-supplied
// function, say) propagates untouched and bisection never runs. x1 is
// unused unless the fallback fires.
//
// Errors:
//   - ConvergenceError (matching ErrConvergence) — the bisection
//     fallback also exhausted its budget. A Newton-phase
//     ConvergenceError never escapes Solve; it is consumed by the
//     fallback decision.
//   - ErrInvalidBracket — Newton failed to converge and [x0, x1] does
//     not bracket a sign change.
func Solve(f, df Func, x0, x1 float64, opts ...Option) (float64, error) {
	x, err := NewtonRaphson(f, df, x0, opts...)
	if err == nil {
		return x, nil
	}
	if !errors.Is(err, ErrConvergence) {
		return 0, err
	}

	return Bisection(f, x0, x1, opts...)
}
