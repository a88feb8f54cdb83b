// Package rootfind locates roots of scalar nonlinear equations f(x) = 0
// given only pointwise evaluation of f (and, for Newton-Raphson, of its
// derivative df).
//
// 🚀 What is rootfind?
//
//	A small solver kit for the everyday problem "I have a black-box
//	float64 function and need a root of it":
//	  • NewtonRaphson — fast derivative-based iteration from one point
//	  • Bisection     — guaranteed bracketing iteration from two points
//	  • Solve         — Newton first, bisection as the safety net
//
// ✨ Key features:
//   - plain func(float64) float64 inputs — no interfaces to implement
//   - sentinel error kinds (ErrConvergence, ErrInvalidBracket) that
//     compose with errors.Is / errors.As
//   - per-method iteration budgets and tolerance via functional options
//   - stateless and reentrant: safe for concurrent use whenever the
//     supplied functions are
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind"
//
//	f := func(x float64) float64 { return x*x - 2 }
//	df := func(x float64) float64 { return 2 * x }
//
//	// Newton with bisection fallback over [0, 2]:
//	root, err := rootfind.Solve(f, df, 1.0, 2.0)
//	if err != nil {
//	  // ErrConvergence: the fallback also ran out of budget
//	  // ErrInvalidBracket: [x0, x1] does not bracket a sign change
//	}
//	fmt.Println(root) // ≈ 1.41421
//
// Convergence is declared when |f(x)| < Eps (default 1e-5); each method
// gives up with a ConvergenceError once its iteration count exceeds its
// budget (default 20).
//
// Performance:
//
//   - NewtonRaphson: quadratic convergence near a simple root,
//     2 calls to f and 1 call to df per iteration
//   - Bisection: one call to f per iteration, halving the bracket
//
// See example_test.go for runnable scenarios.
package rootfind
