// Package statevec - dense state vectors and gate-by-gate execution.
package statevec

import (
	"errors"
	"math"
	"math/bits"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/qevo/circuit"
)

// Sentinel errors for statevec operations.
var (
	// ErrQubitCount indicates a requested qubit count below one.
	ErrQubitCount = errors.New("statevec: qubit count must be at least one")
	// ErrBadState indicates a state length that is not a power of two ≥ 2.
	ErrBadState = errors.New("statevec: state length must be a positive power of two")
	// ErrDimensionMismatch indicates two states of different lengths.
	ErrDimensionMismatch = errors.New("statevec: states must share one dimension")
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass a nil RNG.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// State is a dense amplitude vector over 2ⁿ basis states. Index bit q holds
// the value of qubit q.
type State []complex128

// Zero returns the computational basis state |0…0⟩ over the given qubits.
//
// Errors: ErrQubitCount when qubits < 1.
// Complexity: O(2ⁿ).
func Zero(qubits int) (State, error) {
	if qubits < 1 {
		return nil, ErrQubitCount
	}
	s := make(State, 1<<qubits)
	s[0] = 1
	return s, nil
}

// Random returns a Haar-like unit-norm state with Gaussian amplitudes.
// If rng==nil, a deterministic default stream is used (seed==0 policy), so
// repeated calls with a nil RNG produce the same state.
//
// Errors: ErrQubitCount when qubits < 1.
// Complexity: O(2ⁿ).
func Random(qubits int, rng *rand.Rand) (State, error) {
	if qubits < 1 {
		return nil, ErrQubitCount
	}

	var r *rand.Rand
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	s := make(State, 1<<qubits)
	var norm float64
	for i := range s {
		s[i] = complex(r.NormFloat64(), r.NormFloat64())
		norm += real(s[i])*real(s[i]) + imag(s[i])*imag(s[i])
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for i := range s {
		s[i] *= scale
	}
	return s, nil
}

// Clone returns an independent copy of the state.
// Complexity: O(len).
func (s State) Clone() State {
	if s == nil {
		return nil
	}
	cp := make(State, len(s))
	copy(cp, s)
	return cp
}

// Qubits returns n for a state of length 2ⁿ.
//
// Errors: ErrBadState when the length is not a power of two ≥ 2.
func (s State) Qubits() (int, error) {
	n := len(s)
	if n < 2 || n&(n-1) != 0 {
		return 0, ErrBadState
	}
	return bits.TrailingZeros(uint(n)), nil
}

// Norm returns the Euclidean norm of the amplitude vector.
// Complexity: O(len).
func (s State) Norm() float64 {
	var sum float64
	for _, v := range s {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(sum)
}

// QubitProbabilities returns P(qubit q = 1) for every qubit.
//
// Errors: ErrBadState.
// Complexity: O(n·2ⁿ).
func (s State) QubitProbabilities() ([]float64, error) {
	n, err := s.Qubits()
	if err != nil {
		return nil, err
	}

	probs := make([]float64, n)
	for j, v := range s {
		p := real(v)*real(v) + imag(v)*imag(v)
		for q := 0; q < n; q++ {
			if (j>>q)&1 == 1 {
				probs[q] += p
			}
		}
	}
	return probs, nil
}

// Run executes the sequence on the |0…0⟩ state over the given qubit count.
//
// Errors: ErrQubitCount; gate validation errors from the circuit package.
// Complexity: O(len(seq)·2ⁿ).
func Run(seq circuit.Sequence, qubits int) (State, error) {
	s, err := Zero(qubits)
	if err != nil {
		return nil, err
	}
	if err = seq.Validate(qubits); err != nil {
		return nil, err
	}

	for _, g := range seq {
		applyGate(s, g)
	}
	return s, nil
}

// RunFrom executes the sequence on a copy of initial; the input state is
// never mutated. The qubit count is inferred from the state length.
//
// Errors: ErrBadState; gate validation errors from the circuit package.
// Complexity: O(len(seq)·2ⁿ).
func RunFrom(initial State, seq circuit.Sequence) (State, error) {
	qubits, err := initial.Qubits()
	if err != nil {
		return nil, err
	}
	if err = seq.Validate(qubits); err != nil {
		return nil, err
	}

	s := initial.Clone()
	for _, g := range seq {
		applyGate(s, g)
	}
	return s, nil
}

// Fidelity returns |⟨a|b⟩|², the squared overlap of two unit-norm states:
// 1 for identical states (up to global phase), 0 for orthogonal ones.
//
// Errors: ErrBadState for empty inputs, ErrDimensionMismatch for different
// lengths.
// Complexity: O(len).
func Fidelity(a, b State) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrBadState
	}
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var ip complex128
	for i := range a {
		ip += cmplx.Conj(a[i]) * b[i]
	}
	return real(ip)*real(ip) + imag(ip)*imag(ip), nil
}

// applyGate mutates s in place. Gates are assumed validated; indices stay
// in range for any state of length ≥ 2^(MaxQubit+1).
func applyGate(s State, g circuit.Gate) {
	switch g.Kind {
	case circuit.RX:
		half := g.Angle / 2
		c := complex(math.Cos(half), 0)
		ms := complex(0, -math.Sin(half))
		applyOneQubit(s, g.Target, c, ms, ms, c)
	case circuit.RY:
		half := g.Angle / 2
		c := complex(math.Cos(half), 0)
		sn := complex(math.Sin(half), 0)
		applyOneQubit(s, g.Target, c, -sn, sn, c)
	case circuit.RZ:
		half := g.Angle / 2
		p0 := cmplx.Exp(complex(0, -half))
		p1 := cmplx.Exp(complex(0, half))
		mask := 1 << g.Target
		for j := range s {
			if j&mask == 0 {
				s[j] *= p0
			} else {
				s[j] *= p1
			}
		}
	case circuit.CNOT:
		cm := 1 << g.Control
		tm := 1 << g.Target
		for j := range s {
			// visit each pair once, from its target-bit-0 side
			if j&cm != 0 && j&tm == 0 {
				s[j], s[j|tm] = s[j|tm], s[j]
			}
		}
	}
}

// applyOneQubit applies the 2×2 unitary [[u00,u01],[u10,u11]] to the target
// qubit: amplitude pairs differing only in the target bit mix together.
func applyOneQubit(s State, target int, u00, u01, u10, u11 complex128) {
	mask := 1 << target
	block := mask << 1
	for base := 0; base < len(s); base += block {
		for off := 0; off < mask; off++ {
			i0 := base + off
			i1 := i0 + mask
			a0, a1 := s[i0], s[i1]
			s[i0] = u00*a0 + u01*a1
			s[i1] = u10*a0 + u11*a1
		}
	}
}
