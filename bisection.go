package rootfind

import "math"

// Bisection solves f(x) == 0 by interval bisection starting from the
// bracket [x0, x1]. f(x0) and f(x1) must differ in sign; the endpoints
// may be given in either order.
//
// Algorithm:
//  1. Evaluate f0 = f(x0), f1 = f(x1); reject the bracket unless the
//     signs differ.
//  2. Reorder so that f(x0) >= 0 and f(x1) < 0.
//  3. Repeatedly evaluate the midpoint: a midpoint value >= 0 replaces
//     x0, a negative value replaces x1, keeping the sign invariant.
//  4. Stop at the first midpoint with |f(mid)| < Eps; fail with a
//     ConvergenceError once the step count exceeds MaxBisectionIterations.
//
// The returned root always lies within the closed initial interval.
// Each iteration halves the bracket and costs one evaluation of f.
//
// Errors:
//   - ErrInvalidBracket — f(x0)*f(x1) >= 0. The zero product is included,
//     so an exact root at an endpoint is rejected, not returned.
//   - ConvergenceError (matching ErrConvergence) — budget exhausted
//     before the midpoint value dropped below Eps.
func Bisection(f Func, x0, x1 float64, opts ...Option) (float64, error) {
	o := apply(opts)

	f0, f1 := f(x0), f(x1)
	// f0 and f1 share a sign exactly when their product is non-negative.
	if f0*f1 >= 0 {
		return 0, ErrInvalidBracket
	}

	// Orient the bracket so f(x0) >= 0 and f(x1) < 0.
	if f0 < 0 {
		x0, x1 = x1, x0
	}

	mid := (x0 + x1) / 2
	fMid := f(mid)
	count := 0
	for math.Abs(fMid) >= o.Eps {
		if fMid >= 0 {
			x0 = mid
		} else {
			x1 = mid
		}
		mid = (x0 + x1) / 2
		fMid = f(mid)
		count++
		if count > o.MaxBisectionIterations {
			return 0, &ConvergenceError{Method: MethodBisection, Iterations: o.MaxBisectionIterations}
		}
	}

	return mid, nil
}
