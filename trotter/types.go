// SPDX-License-Identifier: MIT

// Package trotter - request types and sentinel errors for product-formula
// synthesis.

package trotter

import "errors"

// Sentinel errors for trotter operations.
var (
	// ErrInvalidRequest indicates a malformed synthesis request.
	ErrInvalidRequest = errors.New("trotter: invalid synthesis request")
	// ErrUnsupportedExactSynthesis indicates an exact-mode request over
	// terms that do not pairwise commute.
	ErrUnsupportedExactSynthesis = errors.New("trotter: exact synthesis requires pairwise commuting terms")
	// ErrNilDecomposition indicates a nil Hamiltonian decomposition.
	ErrNilDecomposition = errors.New("trotter: decomposition must be non-nil")
)

// MaxOrder caps Request.Order for Suzuki synthesis. Each even step
// multiplies the gate count by five, so orders near the cap are only
// practical with tiny Hamiltonians.
const MaxOrder = 32

// Mode selects the product-formula family.
type Mode uint8

const (
	// Lie is the first-order formula: every term once per slice at the
	// full slice duration. Error O(τ²) per slice.
	Lie Mode = iota
	// Suzuki is the symmetric family: order 2 is the palindrome (forward
	// half, mirrored half), higher even orders recurse through five
	// sub-passes. Error O(τ^(order+1)) per slice.
	Suzuki
)

// modeNames maps Mode values to their display names.
var modeNames = [...]string{"Lie", "Suzuki"}

// String returns the display name, or "?" for invalid values.
func (m Mode) String() string {
	if int(m) >= len(modeNames) {
		return "?"
	}
	return modeNames[m]
}

// Request describes one synthesis job.
type Request struct {
	// Time is the total evolution duration t in exp(-i·H·t). Zero yields
	// an empty circuit; negative evolves backward.
	Time float64
	// Slices splits Time into equal slices; each slice gets one formula
	// pass. Zero requests exact synthesis, valid only when all terms
	// pairwise commute.
	Slices int
	// Mode picks the formula family.
	Mode Mode
	// Order is the Suzuki order. 1 behaves like Lie, 2 is the palindrome,
	// odd orders above 1 round down to the even order below. Ignored in
	// Lie mode.
	Order int
}

// DefaultRequest returns the standard job for a duration: one slice of the
// order-2 Suzuki palindrome.
func DefaultRequest(t float64) Request {
	return Request{
		Time:   t,
		Slices: 1,
		Mode:   Suzuki,
		Order:  2,
	}
}
