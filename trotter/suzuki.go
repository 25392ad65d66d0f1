// SPDX-License-Identifier: MIT

// Package trotter - symmetric Suzuki product formulas.
// Order 2 is the palindrome: all terms forward at τ/2, then mirrored at
// τ/2. Order n > 2 recurses five times through order n-2 with durations
// [pτ, pτ, (1-4p)τ, pτ, pτ], p = 1/(4 - 4^(1/(n-1))); the middle segment
// runs backward in time, which is what cancels the next error order.

package trotter

import (
	"math"

	"github.com/katalvlaran/qevo/circuit"
	"github.com/katalvlaran/qevo/pauli"
)

// appendSuzuki appends one pass of the symmetric formula of the given even
// order. Order 1 and below fall back to the first-order pass.
func appendSuzuki(dst circuit.Sequence, terms []pauli.Term, tau float64, order int) circuit.Sequence {
	if order <= 1 {
		return appendLie(dst, terms, tau)
	}

	if order == 2 {
		half := tau / 2
		for _, t := range terms {
			dst = appendTerm(dst, t, half)
		}
		for i := len(terms) - 1; i >= 0; i-- {
			dst = appendTerm(dst, terms[i], half)
		}

		return dst
	}

	// five sub-passes of order-2 lower; durations sum to tau exactly
	var (
		p     = suzukiP(order)
		outer = p * tau
		inner = (1 - 4*p) * tau
	)
	dst = appendSuzuki(dst, terms, outer, order-2)
	dst = appendSuzuki(dst, terms, outer, order-2)
	dst = appendSuzuki(dst, terms, inner, order-2)
	dst = appendSuzuki(dst, terms, outer, order-2)
	dst = appendSuzuki(dst, terms, outer, order-2)

	return dst
}

// suzukiP returns the order-n splitting coefficient 1/(4 - 4^(1/(n-1))).
// For n=4 this is ≈0.41449, making the middle duration 1-4p ≈ -0.65796.
func suzukiP(order int) float64 {
	return 1 / (4 - math.Pow(4, 1/float64(order-1)))
}

// normalizeOrder rounds odd orders above one down to the even order below;
// the symmetric recursion only gains accuracy in even steps.
func normalizeOrder(order int) int {
	if order > 1 && order%2 == 1 {
		return order - 1
	}

	return order
}
