// Package matrix offers dense complex linear algebra for quantum evolution.
//
// The matrix package provides:
//
//   - Dense, a row-major complex128 matrix with safe accessors (At/Set return
//     errors instead of panicking) and the usual algebra (Add, Scale, Mul,
//     ConjTranspose, MatVec).
//   - Hermitian tooling: IsHermitian checks, EigenHermitian (complex Jacobi
//     rotations), and Propagator for exp(-i·H·t) reference evolution.
//   - RandomHermitian for deterministic, seedable test fixtures.
//
// Dense storage is best for the small operator dimensions this module works
// with (2ⁿ×2ⁿ for a handful of qubits), where O(n²) memory and O(n³)
// factorizations are acceptable.
//
// See the examples in this package and trotter for usage patterns.
package matrix
