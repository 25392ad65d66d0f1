// SPDX-License-Identifier: MIT

// Package trotter - the synthesis driver.

package trotter

import (
	"github.com/katalvlaran/qevo/circuit"
	"github.com/katalvlaran/qevo/pauli"
)

// Synthesize builds the gate sequence approximating exp(-i·H·Time) for the
// decomposed Hamiltonian H = Σ Coeff_k·P_k.
//
// Slicing: Time splits into Slices equal slices; each slice receives one
// pass of the requested formula, so the per-slice error O(τ^(order+1))
// accumulates to O(Time^(order+1)/Slices^order) overall.
//
// Exact mode: Slices == 0 demands a circuit with no formula error, which
// exists exactly when all terms pairwise commute; one first-order pass at
// the full duration then is exact. Non-commuting terms yield
// ErrUnsupportedExactSynthesis.
//
// Determinism: equal decompositions and requests produce gate-for-gate
// equal sequences; term order follows the decomposition.
//
// Contracts:
//   - An empty decomposition or Time == 0 yields an empty sequence.
//   - Identity terms contribute only a global phase and emit no gates.
//   - The result is never nil on success.
//
// Errors: ErrNilDecomposition, ErrInvalidRequest,
// ErrUnsupportedExactSynthesis.
// Complexity: O(Slices · 5^((Order-2)/2) · m · n) emitted gates for m
// terms on n qubits.
func Synthesize(dec *pauli.Decomposition, req Request) (circuit.Sequence, error) {
	// Stage 1: Validate the request.
	if err := validateRequest(dec, req); err != nil {
		return nil, err
	}

	// Stage 2: Short-circuit trivial evolutions.
	terms := dec.Terms()
	out := circuit.Sequence{}
	if len(terms) == 0 || req.Time == 0 {
		return out, nil
	}

	// Stage 3: Exact mode, or slice and emit.
	if req.Slices == 0 {
		if !dec.Commuting() {
			return nil, ErrUnsupportedExactSynthesis
		}
		// commuting terms factor exactly; one full-duration pass suffices
		return appendLie(out, terms, req.Time), nil
	}

	var (
		slice = req.Time / float64(req.Slices)
		order = normalizeOrder(req.Order)
	)
	for k := 0; k < req.Slices; k++ {
		switch req.Mode {
		case Lie:
			out = appendLie(out, terms, slice)
		case Suzuki:
			out = appendSuzuki(out, terms, slice, order)
		}
	}

	return out, nil
}
