// Package statevec simulates gate sequences on dense state vectors and
// scores the result against reference states.
//
// What:
//
//   - State is a dense complex amplitude vector of length 2ⁿ.
//   - Zero and Random construct initial states; Random is deterministic
//     under the shared nil-RNG seed policy.
//   - Run and RunFrom apply a circuit.Sequence gate by gate; inputs are
//     never mutated.
//   - Fidelity computes |⟨a|b⟩|², the overlap score used to compare a
//     synthesized circuit against exact evolution.
//
// Why:
//
//   - Product-formula circuits are only approximations; executing them on
//     a simulator and scoring fidelity against the exact propagator is the
//     acceptance check for every synthesis routine here.
//
// Conventions:
//
//   - Qubit q maps to bit q of the basis index (little-endian), matching
//     the pauli and circuit packages.
//   - R_A(θ) = exp(-i·θ·A/2); RZ multiplies phases e^{∓iθ/2} onto the
//     bit-0 and bit-1 halves of the target qubit.
//   - Fidelity assumes unit-norm inputs; it does not normalize.
//
// Complexity:
//
//   - One rotation or CNOT costs O(2ⁿ); a sequence costs O(len·2ⁿ).
//
// Errors:
//
//   - ErrQubitCount: requested qubit count below one.
//   - ErrBadState: state length not a power of two ≥ 2.
//   - ErrDimensionMismatch: fidelity over states of different lengths.
//   - circuit.ErrQubitRange and friends are forwarded from gate validation.
package statevec
