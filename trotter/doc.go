// Package trotter synthesizes quantum circuits approximating the time
// evolution exp(-i·H·t) of a Pauli-decomposed Hamiltonian, using
// Trotter-Suzuki product formulas.
//
// 🚀 What is Trotterization?
//
//	For H = Σ c_k·P_k with non-commuting terms, exp(-i·H·t) has no exact
//	gate realization term by term. Product formulas approximate it by
//	interleaving the exactly-synthesizable per-term evolutions
//	exp(-i·c_k·P_k·τ), with an error that shrinks polynomially in the
//	slice duration τ. It's the workhorse of:
//	  • Hamiltonian dynamics simulation
//	  • quantum chemistry state preparation
//	  • lattice-model benchmarking
//
// ✨ Key features:
//   - Lie mode: first-order pass, error O(τ²) per slice
//   - Suzuki mode: palindromic order 2 and the recursive even orders
//     4, 6, …, error O(τ^(order+1)) per slice
//   - slicing driver: split t into equal slices to trade gate count
//     for accuracy
//   - exact mode (Slices=0) for pairwise-commuting Hamiltonians
//   - deterministic output: equal inputs give gate-for-gate equal circuits
//   - SHA-256 fingerprinting plus a pluggable synthesis cache
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/qevo/trotter"
//
//	req := trotter.DefaultRequest(1.5) // t=1.5, Suzuki order 2, 1 slice
//	req.Slices = 8
//
//	seq, err := trotter.Synthesize(dec, req)
//
// Performance:
//
//   - Gates: O(Slices · 5^((Order-2)/2) · Σ weight_k) for Suzuki;
//     one weight-w term costs at most 2w+1 rotations + 2(w-1) CNOTs.
//   - Raising Order multiplies gate count by 5 per even step; raising
//     Slices multiplies it linearly.
//
// See examples in example_test.go for complete scenarios.
package trotter
