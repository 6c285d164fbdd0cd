package calculator_test

import (
	"testing"

	"github.com/katalvlaran/mathcalc/calculator"
)

// benchmarkFibonacci runs Fibonacci(n) with the given options and fails on
// unexpected errors.
func benchmarkFibonacci(b *testing.B, n int64, opts ...calculator.Option) {
	calc := calculator.New(opts...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Fibonacci(n); err != nil {
			b.Fatalf("Fibonacci failed: %v", err)
		}
	}
}

// BenchmarkFibonacci_Iterative1000 forces plain iteration for F(1000).
func BenchmarkFibonacci_Iterative1000(b *testing.B) {
	benchmarkFibonacci(b, 1000, calculator.WithFastDoublingThreshold(1<<20))
}

// BenchmarkFibonacci_FastDoubling1000 forces fast doubling for F(1000).
func BenchmarkFibonacci_FastDoubling1000(b *testing.B) {
	benchmarkFibonacci(b, 1000, calculator.WithFastDoublingThreshold(0))
}

// BenchmarkFibonacci_FastDoubling100k measures fast doubling on a large index.
func BenchmarkFibonacci_FastDoubling100k(b *testing.B) {
	benchmarkFibonacci(b, 100_000)
}

// BenchmarkIsPrime_Mersenne31 measures trial division on 2^31-1.
func BenchmarkIsPrime_Mersenne31(b *testing.B) {
	calc := calculator.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !calc.IsPrime(2147483647) {
			b.Fatal("2^31-1 must be prime")
		}
	}
}

// BenchmarkFactorial_100 measures 100! with math/big.
func BenchmarkFactorial_100(b *testing.B) {
	calc := calculator.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Factorial(100); err != nil {
			b.Fatalf("Factorial failed: %v", err)
		}
	}
}

// BenchmarkDivide_Integer measures the exact-integer division path.
func BenchmarkDivide_Integer(b *testing.B) {
	calc := calculator.New()
	x, y := calculator.Int(1<<40), calculator.Int(1<<20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Divide(x, y); err != nil {
			b.Fatalf("Divide failed: %v", err)
		}
	}
}
