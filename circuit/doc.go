// Package circuit defines the gate vocabulary produced by product-formula
// synthesis: single-qubit rotations, CNOT, and flat gate sequences.
//
// What:
//
//   - Kind enumerates the gate alphabet RX, RY, RZ, CNOT.
//   - Gate is one placed gate: kind, target, optional control, angle.
//   - Sequence is an ordered gate list with structural equality, exact
//     inversion, and validation against a qubit count.
//   - WriteQASM renders a sequence as an OpenQASM 2.0 program.
//
// Why:
//
//   - Synthesis outputs must be deterministic and comparable; Sequence
//     equality is exact (bitwise on angles), which makes cache hits and
//     reproducibility checks trivial.
//   - Inversion of a sequence (reverse order, invert each gate) gives the
//     uncomputation half of palindromic formulas for free.
//
// Conventions:
//
//   - R_A(θ) = exp(-i·θ·A/2) for A ∈ {X, Y, Z}; CNOT flips the target
//     where the control bit is 1.
//   - Rotations carry Control = NoControl; only CNOT uses a control.
//
// Errors:
//
//   - ErrQubitRange: target or control outside [0, qubits).
//   - ErrBadGate: unknown kind, control on a rotation, or control==target.
//   - ErrBadAngle: NaN or infinite rotation angle.
//   - ErrNilWriter: WriteQASM given a nil destination.
package circuit
