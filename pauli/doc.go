// Package pauli represents Hermitian operators as weighted Pauli strings
// and extracts such decompositions from dense matrices.
//
// What:
//
//   - Operator enumerates the single-qubit Pauli operators I, X, Y, Z.
//   - Term is one weighted Pauli string, e.g. 0.5·XZ; index i of the string
//     addresses qubit i.
//   - Decomposition is an ordered list of Terms over a fixed qubit count,
//     the Hamiltonian form consumed by product-formula synthesis.
//   - Decompose projects a dense Hermitian matrix onto the Pauli basis via
//     a_P = Tr(P·H)/2ⁿ, exploiting that Pauli strings have one nonzero
//     entry per row.
//
// Why:
//
//   - Hamiltonians arrive as matrices; circuits are built per Pauli term.
//   - Commutation structure of the terms decides when synthesis is exact.
//
// Ordering:
//
//   - Decompose emits terms in ascending base-4 code order, where digit i
//     (qubit i) encodes I=0, X=1, Y=2, Z=3. The order is deterministic and
//     stable for equal inputs.
//
// Complexity:
//
//   - Decompose:    O(8ⁿ·n) time, O(4ⁿ) candidate terms    (n = qubit count).
//   - Term.Matrix:  O(2ⁿ·n) time, O(4ⁿ) memory.
//   - Commuting:    O(m²·n) for m terms.
//
// Errors:
//
//   - ErrBadLabel: operator label outside I, X, Y, Z.
//   - ErrEmptyTerm: term with no qubits.
//   - ErrNaNInf: non-finite coefficient.
//   - ErrTermLength: terms of differing qubit counts in one decomposition.
//   - ErrTermIndex: requested term index out of range.
//   - ErrNilMatrix: nil matrix input.
//   - ErrDimension: matrix dimension not a positive power of two (≥2).
//   - ErrNotHermitian: input matrix fails the hermiticity check.
package pauli
