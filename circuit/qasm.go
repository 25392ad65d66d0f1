// Package circuit - OpenQASM 2.0 rendering of gate sequences.
package circuit

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// qasmNames maps Kind values to their OpenQASM 2.0 instruction names.
var qasmNames = [...]string{"rx", "ry", "rz", "cx"}

// WriteQASM renders the sequence as an OpenQASM 2.0 program over a single
// quantum register q of the given width. Angles are printed with the
// shortest representation that round-trips a float64, so emitted programs
// are byte-stable for equal sequences.
//
// Contracts:
//   - qubits must be >= 1 and cover every gate in seq.
//
// Errors: ErrNilWriter, ErrQubitRange, those of Sequence.Validate, and any
// write error from w.
// Complexity: O(len(seq)).
func WriteQASM(w io.Writer, qubits int, seq Sequence) error {
	// Stage 1: Validate destination, register width, and gates.
	if w == nil {
		return ErrNilWriter
	}
	if qubits < 1 {
		return fmt.Errorf("qubit count %d: %w", qubits, ErrQubitRange)
	}
	if err := seq.Validate(qubits); err != nil {
		return err
	}

	// Stage 2: Render into one buffer; a single write keeps the error path flat.
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	sb.WriteString("qreg q[")
	sb.WriteString(strconv.Itoa(qubits))
	sb.WriteString("];\n")

	for _, g := range seq {
		if g.Kind == CNOT {
			sb.WriteString("cx q[")
			sb.WriteString(strconv.Itoa(g.Control))
			sb.WriteString("],q[")
			sb.WriteString(strconv.Itoa(g.Target))
			sb.WriteString("];\n")
			continue
		}
		sb.WriteString(qasmNames[g.Kind])
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatFloat(g.Angle, 'g', -1, 64))
		sb.WriteString(") q[")
		sb.WriteString(strconv.Itoa(g.Target))
		sb.WriteString("];\n")
	}

	// Stage 3: Flush.
	_, err := io.WriteString(w, sb.String())

	return err
}
