// Package qevo turns Hamiltonians into quantum circuits — decompose a
// Hermitian operator into Pauli strings, then compile exp(-i·H·t) with
// Trotter-Suzuki product formulas.
//
// 🚀 What is qevo?
//
//	A deterministic, pure-Go synthesis toolkit that brings together:
//		• Dense complex matrices: Hermitian checks, Jacobi eigensolver, exact propagators
//		• Pauli algebra: strings, commutation, operator⇄decomposition projection
//		• Product formulas: Lie first order, Suzuki even orders, slicing, exact mode
//		• Circuits: rotation+CNOT gate sequences, inversion, OpenQASM 2.0 export
//		• Simulation: little-endian state vectors for scoring circuit fidelity
//
// ✨ Why choose qevo?
//
//   - Deterministic – equal inputs give gate-for-gate equal circuits
//   - Honest errors – sentinel values, wrapped with position context
//   - Verifiable – every circuit can be scored against exact diagonalization
//   - Cacheable – job fingerprints make synthesized sequences reusable
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/   — dense complex128 matrices, eigendecomposition & propagators
//	pauli/    — Pauli operators, weighted terms and decompositions
//	trotter/  — formula synthesis: Lie, Suzuki, slicing, fingerprint cache
//	circuit/  — gates, sequences, OpenQASM
//	statevec/ — state-vector simulation & fidelity
//
// Quick ASCII example, the circuit for exp(-i·c·(X⊗Z)·τ):
//
//	q0: ──RY(-π/2)──●───────────●──RY(+π/2)──
//	                │           │
//	q1: ────────────X──RZ(2cτ)──X────────────
//
//	one rotation carries the whole angle; the ladder routes parity onto it.
//
// Next up: grouped commuting-term emission, randomized formulas and beyond.
// Dive into the examples/ programs for end-to-end evolution and convergence
// studies.
//
//	go get github.com/katalvlaran/qevo
package qevo
