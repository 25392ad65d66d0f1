// Package pauli - Pauli-basis projection of dense Hermitian matrices.
package pauli

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/qevo/matrix"
)

const (
	// DefaultHermTol is the hermiticity tolerance applied when
	// DecomposeOptions.HermTol <= 0.
	DefaultHermTol = 1e-9

	// DefaultCutOff is the coefficient magnitude below which a projected
	// term is dropped, applied by DefaultDecomposeOptions.
	DefaultCutOff = 1e-12
)

// DecomposeOptions contains tunable parameters for the Pauli projection.
type DecomposeOptions struct {
	// HermTol bounds |H[i][j] - conj(H[j][i])| for the input check.
	// Values <= 0 select DefaultHermTol.
	HermTol float64
	// CutOff drops terms with |coefficient| <= CutOff. A negative value is
	// treated as zero (keep every nonzero term).
	CutOff float64
}

// DefaultDecomposeOptions returns a DecomposeOptions with default settings:
// HermTol=DefaultHermTol, CutOff=DefaultCutOff.
func DefaultDecomposeOptions() DecomposeOptions {
	return DecomposeOptions{
		HermTol: DefaultHermTol,
		CutOff:  DefaultCutOff,
	}
}

// Decompose projects a dense Hermitian matrix onto the Pauli-string basis:
// H = Σ_P a_P·P with a_P = Tr(P·H)/2ⁿ. Every Pauli string has exactly one
// nonzero entry per row, so each trace costs O(2ⁿ·n) instead of a dense
// matrix product.
//
// Terms are emitted in ascending base-4 code order (digit i = operator on
// qubit i, I=0 X=1 Y=2 Z=3), which makes the output deterministic and
// stable for equal inputs. Coefficients with |a_P| <= CutOff are dropped;
// the imaginary part of each trace is hermiticity noise and is discarded.
//
// Contracts:
//   - h must be square with dimension 2ⁿ for some n ≥ 1.
//   - h must be Hermitian within HermTol.
//
// Errors: ErrNilMatrix, ErrDimension, ErrNotHermitian.
// Complexity: O(8ⁿ·n) time, O(4ⁿ) candidate terms.
func Decompose(h *matrix.Dense, opts DecomposeOptions) (*Decomposition, error) {
	// Stage 1: Validate input and options.
	if h == nil {
		return nil, ErrNilMatrix
	}
	dim := h.Rows()
	if h.Cols() != dim || dim < 2 || dim&(dim-1) != 0 {
		return nil, ErrDimension
	}
	tol := opts.HermTol
	if tol <= 0 {
		tol = DefaultHermTol
	}
	cut := opts.CutOff
	if cut < 0 {
		cut = 0
	}
	if !h.IsHermitian(tol) {
		return nil, ErrNotHermitian
	}

	// Stage 2: Prepare a flat view and the code range.
	var (
		n     = bits.TrailingZeros(uint(dim))
		vals  = h.Values()
		norm  = float64(dim)
		total = 1 << (2 * n) // 4ⁿ candidate strings
	)

	// Stage 3: Project onto every string in ascending code order.
	d := &Decomposition{qubits: n}
	for code := 0; code < total; code++ {
		// xmask marks the qubits where the string flips the basis state
		var xmask int
		for q := 0; q < n; q++ {
			if op := digitAt(code, q); op == X || op == Y {
				xmask |= 1 << q
			}
		}

		// Tr(P·H) = Σ_j P[j][j⊕xmask] · H[j⊕xmask][j]
		var tr complex128
		for j := 0; j < dim; j++ {
			tr += stringEntry(code, n, j) * vals[(j^xmask)*dim+j]
		}
		coeff := real(tr) / norm
		if math.Abs(coeff) <= cut {
			continue
		}

		ops := make([]Operator, n)
		for q := 0; q < n; q++ {
			ops[q] = digitAt(code, q)
		}
		d.terms = append(d.terms, Term{Coeff: coeff, Ops: ops})
	}

	return d, nil
}

// digitAt extracts base-4 digit q of code, the operator acting on qubit q.
func digitAt(code, q int) Operator {
	return Operator((code >> (2 * q)) & 3)
}

// stringEntry returns the one nonzero entry of row j for the Pauli string
// encoded by code. It is the product of per-qubit factors
// I→1, X→1, Z→(-1)^bit, Y→(+i if bit set, -i otherwise), where bit is
// bit q of the row index j.
func stringEntry(code, n, j int) complex128 {
	entry := complex(1, 0)
	for q := 0; q < n; q++ {
		switch digitAt(code, q) {
		case I, X:
			// factor 1
		case Z:
			if (j>>q)&1 == 1 {
				entry = -entry
			}
		case Y:
			if (j>>q)&1 == 1 {
				entry *= 1i
			} else {
				entry *= -1i
			}
		}
	}

	return entry
}
