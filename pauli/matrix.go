// Package pauli - dense realizations of terms and decompositions.
package pauli

import (
	"math"

	"github.com/katalvlaran/qevo/matrix"
)

// Matrix returns the dense 2ⁿ×2ⁿ realization of the full term, coefficient
// included: Coeff·(Ops[n-1] ⊗ … ⊗ Ops[0]). Qubit q maps to bit q of the
// basis index, so row j has its single nonzero entry at column j⊕xmask,
// where xmask collects the X and Y positions.
//
// Errors: ErrEmptyTerm, ErrBadLabel, ErrNaNInf.
// Complexity: O(2ⁿ·n) time, O(4ⁿ) memory for the dense result.
func (t Term) Matrix() (*matrix.Dense, error) {
	n := t.Qubits()
	if n == 0 {
		return nil, ErrEmptyTerm
	}
	if math.IsNaN(t.Coeff) || math.IsInf(t.Coeff, 0) {
		return nil, ErrNaNInf
	}

	var code, xmask int
	for q, op := range t.Ops {
		if op > Z {
			return nil, ErrBadLabel
		}
		code |= int(op) << (2 * q)
		if op == X || op == Y {
			xmask |= 1 << q
		}
	}

	var (
		dim  = 1 << n
		c    = complex(t.Coeff, 0)
		rows = make([][]complex128, dim)
	)
	for j := 0; j < dim; j++ {
		row := make([]complex128, dim)
		row[j^xmask] = c * stringEntry(code, n, j)
		rows[j] = row
	}

	return matrix.FromRows(rows)
}

// Matrix returns the dense sum Σ Coeff·P over all terms, the Hamiltonian
// the decomposition represents.
//
// Errors: ErrDimension for an empty decomposition; those of Term.Matrix.
// Complexity: O(m·4ⁿ) for m terms.
func (d *Decomposition) Matrix() (*matrix.Dense, error) {
	if d == nil || d.qubits == 0 {
		return nil, ErrDimension
	}

	dim := 1 << d.qubits
	sum, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, err
	}
	for _, t := range d.terms {
		tm, err := t.Matrix()
		if err != nil {
			return nil, err
		}
		if sum, err = sum.Add(tm); err != nil {
			return nil, err
		}
	}

	return sum, nil
}
