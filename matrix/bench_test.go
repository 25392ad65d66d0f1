package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qevo/matrix"
)

// benchmarkEigen is a helper that decomposes a seeded random n×n Hermitian
// matrix. It resets the timer before entering the loop and fails on
// unexpected errors.
func benchmarkEigen(b *testing.B, n int) {
	h, err := matrix.RandomHermitian(n, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatalf("RandomHermitian failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err = matrix.EigenHermitian(h, 0, 0); err != nil {
			b.Fatalf("EigenHermitian failed: %v", err)
		}
	}
}

// BenchmarkEigenHermitian_Dim4 decomposes a 4×4 (two-qubit) matrix.
func BenchmarkEigenHermitian_Dim4(b *testing.B) {
	benchmarkEigen(b, 4)
}

// BenchmarkEigenHermitian_Dim8 decomposes an 8×8 (three-qubit) matrix.
func BenchmarkEigenHermitian_Dim8(b *testing.B) {
	benchmarkEigen(b, 8)
}

// BenchmarkEigenHermitian_Dim16 decomposes a 16×16 (four-qubit) matrix.
func BenchmarkEigenHermitian_Dim16(b *testing.B) {
	benchmarkEigen(b, 16)
}

// BenchmarkPropagator_Dim8 builds exp(-i·H·t) for an 8×8 matrix.
func BenchmarkPropagator_Dim8(b *testing.B) {
	h, err := matrix.RandomHermitian(8, rand.New(rand.NewSource(2)))
	if err != nil {
		b.Fatalf("RandomHermitian failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.Propagator(h, 1.0); err != nil {
			b.Fatalf("Propagator failed: %v", err)
		}
	}
}

// BenchmarkDenseMul_Dim16 multiplies two 16×16 matrices.
func BenchmarkDenseMul_Dim16(b *testing.B) {
	m, err := matrix.RandomHermitian(16, rand.New(rand.NewSource(3)))
	if err != nil {
		b.Fatalf("RandomHermitian failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.Mul(m); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}
