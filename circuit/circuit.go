// Package circuit - gate and sequence types shared by synthesis and execution.
package circuit

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for circuit operations.
var (
	// ErrQubitRange indicates a target or control index outside [0, qubits).
	ErrQubitRange = errors.New("circuit: qubit index out of range")
	// ErrBadGate indicates a structurally malformed gate.
	ErrBadGate = errors.New("circuit: malformed gate")
	// ErrBadAngle indicates a NaN or infinite rotation angle.
	ErrBadAngle = errors.New("circuit: rotation angle must be finite")
	// ErrNilWriter indicates a nil destination writer.
	ErrNilWriter = errors.New("circuit: writer must be non-nil")
)

// Kind identifies the gate operation.
type Kind uint8

const (
	// RX rotates the target about the X axis: exp(-i·θ·X/2).
	RX Kind = iota
	// RY rotates the target about the Y axis: exp(-i·θ·Y/2).
	RY
	// RZ rotates the target about the Z axis: exp(-i·θ·Z/2).
	RZ
	// CNOT flips the target conditioned on the control qubit.
	CNOT
)

// kindNames maps Kind values to their display names.
var kindNames = [...]string{"RX", "RY", "RZ", "CNOT"}

// String returns the display name, or "?" for invalid values.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

// NoControl marks the control slot of gates that have none.
const NoControl = -1

// Gate is one placed gate. The struct is comparable, so sequences support
// exact equality via ==.
type Gate struct {
	// Kind selects the operation.
	Kind Kind
	// Target is the qubit the operation acts on.
	Target int
	// Control is the conditioning qubit for CNOT, NoControl otherwise.
	Control int
	// Angle is the rotation angle in radians; 0 for CNOT.
	Angle float64
}

// NewRX returns an X-axis rotation on target.
func NewRX(target int, angle float64) Gate {
	return Gate{Kind: RX, Target: target, Control: NoControl, Angle: angle}
}

// NewRY returns a Y-axis rotation on target.
func NewRY(target int, angle float64) Gate {
	return Gate{Kind: RY, Target: target, Control: NoControl, Angle: angle}
}

// NewRZ returns a Z-axis rotation on target.
func NewRZ(target int, angle float64) Gate {
	return Gate{Kind: RZ, Target: target, Control: NoControl, Angle: angle}
}

// NewCNOT returns a controlled-NOT from control onto target.
func NewCNOT(control, target int) Gate {
	return Gate{Kind: CNOT, Target: target, Control: control}
}

// Inverse returns the gate undoing g: rotations negate their angle, CNOT is
// self-inverse.
func (g Gate) Inverse() Gate {
	switch g.Kind {
	case RX, RY, RZ:
		g.Angle = -g.Angle
	case CNOT:
		// self-inverse
	}
	return g
}

// Validate checks g against a qubit count.
//
// Errors: ErrQubitRange, ErrBadGate, ErrBadAngle.
// Complexity: O(1).
func (g Gate) Validate(qubits int) error {
	if g.Kind > CNOT {
		return fmt.Errorf("unknown kind %d: %w", g.Kind, ErrBadGate)
	}
	if g.Target < 0 || g.Target >= qubits {
		return fmt.Errorf("target %d of %d: %w", g.Target, qubits, ErrQubitRange)
	}

	if g.Kind == CNOT {
		if g.Control < 0 || g.Control >= qubits {
			return fmt.Errorf("control %d of %d: %w", g.Control, qubits, ErrQubitRange)
		}
		if g.Control == g.Target {
			return fmt.Errorf("control equals target %d: %w", g.Target, ErrBadGate)
		}
		if g.Angle != 0 {
			return fmt.Errorf("CNOT carries angle %g: %w", g.Angle, ErrBadGate)
		}
		return nil
	}

	if g.Control != NoControl {
		return fmt.Errorf("%s carries control %d: %w", g.Kind, g.Control, ErrBadGate)
	}
	if math.IsNaN(g.Angle) || math.IsInf(g.Angle, 0) {
		return fmt.Errorf("%s: %w", g.Kind, ErrBadAngle)
	}
	return nil
}

// String renders the gate for debugging, e.g. "RZ(1.2) q[0]" or
// "CNOT q[0],q[2]".
func (g Gate) String() string {
	if g.Kind == CNOT {
		return fmt.Sprintf("CNOT q[%d],q[%d]", g.Control, g.Target)
	}
	return fmt.Sprintf("%s(%g) q[%d]", g.Kind, g.Angle, g.Target)
}

// Sequence is an ordered gate list, applied left to right.
type Sequence []Gate

// Clone returns an independent copy of the sequence.
// Complexity: O(len).
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	cp := make(Sequence, len(s))
	copy(cp, s)
	return cp
}

// Inverse returns the sequence undoing s: gates in reverse order, each
// inverted. Applying s then s.Inverse() is the identity.
// Complexity: O(len).
func (s Sequence) Inverse() Sequence {
	inv := make(Sequence, len(s))
	for i, g := range s {
		inv[len(s)-1-i] = g.Inverse()
	}
	return inv
}

// Equal reports exact structural equality, bitwise on angles. It is the
// determinism check: two synthesis runs over equal inputs must compare
// Equal.
// Complexity: O(len).
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// MaxQubit returns the largest qubit index referenced by the sequence, or
// -1 for an empty one.
// Complexity: O(len).
func (s Sequence) MaxQubit() int {
	max := -1
	for _, g := range s {
		if g.Target > max {
			max = g.Target
		}
		if g.Kind == CNOT && g.Control > max {
			max = g.Control
		}
	}
	return max
}

// Validate checks every gate against a qubit count, wrapping the first
// failure with its position.
//
// Errors: those of Gate.Validate.
// Complexity: O(len).
func (s Sequence) Validate(qubits int) error {
	for i, g := range s {
		if err := g.Validate(qubits); err != nil {
			return fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return nil
}
