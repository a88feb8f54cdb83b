// Package rootfind defines the function capability, error kinds and
// configuration options shared by all solvers.
package rootfind

import (
	"errors"
	"fmt"
)

// Func is a caller-supplied scalar function: evaluate a real function at
// a real point. Both the target function f and its derivative df are
// passed as Func values.
//
// The solvers treat Func as a black box: it is assumed to be fast, pure
// and safe to call any budgeted number of times. Faults inside a Func
// (panics, NaN/Inf results) are neither caught nor classified here; they
// surface to the caller as-is.
type Func func(x float64) float64

// Method names carried by ConvergenceError for diagnostics.
const (
	// MethodNewtonRaphson identifies the derivative-based solver.
	MethodNewtonRaphson = "newton-raphson"

	// MethodBisection identifies the bracketing solver.
	MethodBisection = "bisection"
)

// Sentinel errors returned by the solvers.
var (
	// ErrConvergence indicates a solver consumed its whole iteration
	// budget without reaching the tolerance. It is the recoverable kind:
	// Solve matches it (via errors.Is) to trigger the bisection fallback.
	ErrConvergence = errors.New("rootfind: iteration budget exhausted before convergence")

	// ErrInvalidBracket indicates that f(x0) and f(x1) do not differ in
	// sign, so [x0, x1] is not a valid bisection bracket. Not recoverable
	// by Solve's fallback logic; it propagates to the caller.
	//
	// Note: the check rejects whenever f(x0)*f(x1) >= 0, so an exact root
	// at an endpoint (zero product) is also rejected.
	ErrInvalidBracket = errors.New("rootfind: f(x0) and f(x1) do not differ in sign")
)

// ConvergenceError reports which solver exhausted its iteration budget.
// It unwraps to ErrConvergence, so both forms of matching work:
//
//	errors.Is(err, rootfind.ErrConvergence)
//	var ce *rootfind.ConvergenceError; errors.As(err, &ce)
type ConvergenceError struct {
	Method     string // MethodNewtonRaphson or MethodBisection
	Iterations int    // the budget that was exhausted
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("rootfind: %s exceeded %d iterations without converging", e.Method, e.Iterations)
}

// Unwrap makes ConvergenceError match ErrConvergence under errors.Is.
func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// Options configures the solvers.
//
//   - Eps — convergence tolerance; a solver stops at the first point x
//     with |f(x)| < Eps. Must be > 0 (default 1e-5).
//   - MaxNewtonIterations — iteration budget for NewtonRaphson and the
//     Newton phase of Solve (default 20).
//   - MaxBisectionIterations — iteration budget for Bisection and the
//     fallback phase of Solve (default 20).
type Options struct {
	Eps                    float64 // convergence is |f(x)| < Eps
	MaxNewtonIterations    int     // Newton-Raphson iteration budget
	MaxBisectionIterations int     // bisection iteration budget
}

// Option represents a functional option for configuring a solver call.
type Option func(*Options)

// WithEps sets the convergence tolerance.
// Must pass a positive value; zero or negative values panic.
func WithEps(eps float64) Option {
	if eps <= 0 {
		// Panic to signal invalid configuration early, before any solver math runs.
		panic("rootfind: Eps must be positive")
	}

	return func(o *Options) {
		o.Eps = eps
	}
}

// WithMaxIterations sets both iteration budgets at once.
// Must pass a positive value; zero or negative values panic.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("rootfind: iteration budget must be positive")
	}

	return func(o *Options) {
		o.MaxNewtonIterations = n
		o.MaxBisectionIterations = n
	}
}

// WithMaxNewtonIterations sets the Newton-Raphson iteration budget only.
// Must pass a positive value; zero or negative values panic.
func WithMaxNewtonIterations(n int) Option {
	if n <= 0 {
		panic("rootfind: iteration budget must be positive")
	}

	return func(o *Options) {
		o.MaxNewtonIterations = n
	}
}

// WithMaxBisectionIterations sets the bisection iteration budget only.
// Must pass a positive value; zero or negative values panic.
func WithMaxBisectionIterations(n int) Option {
	if n <= 0 {
		panic("rootfind: iteration budget must be positive")
	}

	return func(o *Options) {
		o.MaxBisectionIterations = n
	}
}

// DefaultOptions returns an Options struct initialized with the defaults
// every solver starts from. Use it directly or let the solvers apply it
// under your Option overrides.
//
// Defaults:
//   - Eps:                    1e-5
//   - MaxNewtonIterations:    20
//   - MaxBisectionIterations: 20
func DefaultOptions() Options {
	return Options{
		Eps:                    1e-5,
		MaxNewtonIterations:    20,
		MaxBisectionIterations: 20,
	}
}

// apply folds the given Option overrides over the defaults.
func apply(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
