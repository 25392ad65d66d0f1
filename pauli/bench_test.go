package pauli_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qevo/matrix"
	"github.com/katalvlaran/qevo/pauli"
)

// benchmarkDecompose is a helper that projects a seeded random Hermitian
// matrix of the given dimension. It resets the timer before entering the
// loop and fails on unexpected errors.
func benchmarkDecompose(b *testing.B, dim int) {
	h, err := matrix.RandomHermitian(dim, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatalf("RandomHermitian failed: %v", err)
	}
	opts := pauli.DefaultDecomposeOptions()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = pauli.Decompose(h, opts); err != nil {
			b.Fatalf("Decompose failed: %v", err)
		}
	}
}

// BenchmarkDecompose_TwoQubits projects a 4×4 matrix (16 candidate strings).
func BenchmarkDecompose_TwoQubits(b *testing.B) {
	benchmarkDecompose(b, 4)
}

// BenchmarkDecompose_ThreeQubits projects an 8×8 matrix (64 candidate strings).
func BenchmarkDecompose_ThreeQubits(b *testing.B) {
	benchmarkDecompose(b, 8)
}

// BenchmarkDecompose_FourQubits projects a 16×16 matrix (256 candidate strings).
func BenchmarkDecompose_FourQubits(b *testing.B) {
	benchmarkDecompose(b, 16)
}

// BenchmarkTermMatrix_ThreeQubits realizes one weight-3 string densely.
func BenchmarkTermMatrix_ThreeQubits(b *testing.B) {
	term, err := pauli.NewTerm(0.55, "XYZ")
	if err != nil {
		b.Fatalf("NewTerm failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = term.Matrix(); err != nil {
			b.Fatalf("Matrix failed: %v", err)
		}
	}
}
