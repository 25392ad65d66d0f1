// SPDX-License-Identifier: MIT

// Package trotter - exact single-term evolution circuits.
// One Pauli term c·P evolves exactly: basis changes rotate every X/Y
// position onto Z, a CNOT ladder folds the joint parity onto one qubit,
// and a single RZ carries the whole angle 2·c·τ.

package trotter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qevo/circuit"
	"github.com/katalvlaran/qevo/pauli"
)

// halfPi is the basis-change angle: RY(-π/2) maps Z onto X, RX(π/2) maps
// Z onto Y.
const halfPi = math.Pi / 2

// TermEvolution returns the circuit implementing exp(-i·Coeff·P·tau) for a
// single term. Identity terms and zero angles produce an empty sequence
// (the evolution is a global phase).
//
// Errors: ErrInvalidRequest for a non-finite tau; pauli.ErrEmptyTerm,
// pauli.ErrBadLabel, pauli.ErrNaNInf for a malformed term.
// Complexity: a weight-w term costs at most 2w+1 rotations and 2(w-1) CNOTs.
func TermEvolution(term pauli.Term, tau float64) (circuit.Sequence, error) {
	if math.IsNaN(tau) || math.IsInf(tau, 0) {
		return nil, fmt.Errorf("tau must be finite, got %v: %w", tau, ErrInvalidRequest)
	}
	if _, err := pauli.NewTermFromOps(term.Coeff, term.Ops); err != nil {
		return nil, err
	}

	seq := appendTerm(circuit.Sequence{}, term, tau)
	return seq, nil
}

// appendTerm appends the evolution of one validated term to dst.
//
// Emission order is [basis changes, ladder, RZ, mirrored ladder, mirrored
// basis changes]; the two mirrors make the block self-inverting under
// angle negation, which the palindromic formulas rely on.
func appendTerm(dst circuit.Sequence, term pauli.Term, tau float64) circuit.Sequence {
	angle := 2 * term.Coeff * tau
	if angle == 0 {
		return dst
	}

	// Stage 1: collect the active (non-identity) qubits in ascending order.
	actives := make([]int, 0, len(term.Ops))
	for q, op := range term.Ops {
		if op != pauli.I {
			actives = append(actives, q)
		}
	}
	if len(actives) == 0 {
		// identity string: global phase, no gates
		return dst
	}

	// Stage 2: weight one needs a single native-axis rotation.
	if len(actives) == 1 {
		q := actives[0]
		switch term.Ops[q] {
		case pauli.X:
			return append(dst, circuit.NewRX(q, angle))
		case pauli.Y:
			return append(dst, circuit.NewRY(q, angle))
		default:
			return append(dst, circuit.NewRZ(q, angle))
		}
	}

	// Stage 3: rotate every X/Y position onto the Z axis.
	for _, q := range actives {
		switch term.Ops[q] {
		case pauli.X:
			dst = append(dst, circuit.NewRY(q, -halfPi))
		case pauli.Y:
			dst = append(dst, circuit.NewRX(q, halfPi))
		}
	}

	// Stage 4: fold parities onto the highest active qubit and rotate.
	target := actives[len(actives)-1]
	for _, q := range actives[:len(actives)-1] {
		dst = append(dst, circuit.NewCNOT(q, target))
	}
	dst = append(dst, circuit.NewRZ(target, angle))
	for i := len(actives) - 2; i >= 0; i-- {
		dst = append(dst, circuit.NewCNOT(actives[i], target))
	}

	// Stage 5: undo the basis changes in mirrored order.
	for i := len(actives) - 1; i >= 0; i-- {
		q := actives[i]
		switch term.Ops[q] {
		case pauli.X:
			dst = append(dst, circuit.NewRY(q, halfPi))
		case pauli.Y:
			dst = append(dst, circuit.NewRX(q, -halfPi))
		}
	}

	return dst
}
