// Package trotter - first-order (Lie) product formula.
package trotter

import (
	"github.com/katalvlaran/qevo/circuit"
	"github.com/katalvlaran/qevo/pauli"
)

// appendLie appends one first-order pass: every term once, in decomposition
// order, at the full duration tau. The pass is exact when all terms
// pairwise commute; otherwise the error is O(tau²).
func appendLie(dst circuit.Sequence, terms []pauli.Term, tau float64) circuit.Sequence {
	for _, t := range terms {
		dst = appendTerm(dst, t, tau)
	}

	return dst
}
