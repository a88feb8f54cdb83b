package rootfind_test

import (
	"testing"

	"github.com/katalvlaran/rootfind"
)

// benchPoly is a cheap polynomial with a simple root at √2, used by all
// benchmarks so they measure solver overhead rather than function cost.
func benchPoly(x float64) float64 { return x*x - 2 }

func benchPolyPrime(x float64) float64 { return 2 * x }

// BenchmarkNewtonRaphson measures the derivative-based path from a
// nearby starting point.
func BenchmarkNewtonRaphson(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.NewtonRaphson(benchPoly, benchPolyPrime, 1.0); err != nil {
			b.Fatalf("NewtonRaphson failed: %v", err)
		}
	}
}

// BenchmarkBisection measures the bracketing path on a width-2 interval.
func BenchmarkBisection(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.Bisection(benchPoly, 0.0, 2.0); err != nil {
			b.Fatalf("Bisection failed: %v", err)
		}
	}
}

// BenchmarkSolve_NewtonPath measures the combined solver when Newton
// succeeds on its own.
func BenchmarkSolve_NewtonPath(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.Solve(benchPoly, benchPolyPrime, 1.0, 2.0); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_FallbackPath measures the combined solver when the
// Newton phase burns its whole budget first (x³-2x+2 from the 0↔1 cycle).
func BenchmarkSolve_FallbackPath(b *testing.B) {
	f := func(x float64) float64 { return x*x*x - 2*x + 2 }
	df := func(x float64) float64 { return 3*x*x - 2 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.Solve(f, df, 0.0, -2.0); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
