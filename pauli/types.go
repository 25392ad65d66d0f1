// Package pauli - core types and sentinel errors for Pauli-string Hamiltonians.
package pauli

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for pauli operations.
var (
	// ErrBadLabel indicates an operator label outside I, X, Y, Z.
	ErrBadLabel = errors.New("pauli: operator label must be one of I, X, Y, Z")
	// ErrEmptyTerm indicates a term that acts on no qubits.
	ErrEmptyTerm = errors.New("pauli: term must act on at least one qubit")
	// ErrNaNInf indicates a NaN or infinite coefficient.
	ErrNaNInf = errors.New("pauli: coefficient must be finite")
	// ErrTermLength indicates terms of differing qubit counts in one decomposition.
	ErrTermLength = errors.New("pauli: all terms must act on the same number of qubits")
	// ErrTermIndex indicates a requested term index is out of range.
	ErrTermIndex = errors.New("pauli: term index out of range")
	// ErrNilMatrix indicates a nil matrix input.
	ErrNilMatrix = errors.New("pauli: matrix must be non-nil")
	// ErrDimension indicates a matrix dimension that is not a power of two ≥ 2.
	ErrDimension = errors.New("pauli: matrix dimension must be a positive power of two")
	// ErrNotHermitian indicates the input matrix fails the hermiticity check.
	ErrNotHermitian = errors.New("pauli: matrix is not hermitian within tolerance")
)

// Operator is a single-qubit Pauli operator. The zero value is the identity.
type Operator byte

const (
	// I is the 2×2 identity.
	I Operator = iota
	// X is the Pauli-X (bit flip) operator.
	X
	// Y is the Pauli-Y operator.
	Y
	// Z is the Pauli-Z (phase flip) operator.
	Z
)

// operatorLabels maps Operator values to their single-letter labels.
const operatorLabels = "IXYZ"

// String returns the canonical single-letter label, or "?" for invalid values.
func (op Operator) String() string {
	if op > Z {
		return "?"
	}
	return string(operatorLabels[op])
}

// parseOperator converts a label byte into an Operator.
func parseOperator(ch byte) (Operator, error) {
	switch ch {
	case 'I':
		return I, nil
	case 'X':
		return X, nil
	case 'Y':
		return Y, nil
	case 'Z':
		return Z, nil
	default:
		return 0, ErrBadLabel
	}
}

// Term is one weighted Pauli string: Coeff·(Ops[n-1] ⊗ … ⊗ Ops[0]).
// Ops[i] is the operator acting on qubit i.
type Term struct {
	// Coeff is the real weight of the string (Hermitian operators only).
	Coeff float64
	// Ops holds one Operator per qubit, index = qubit.
	Ops []Operator
}

// NewTerm builds a Term from a label string such as "XIZ", where labels[i]
// names the operator on qubit i. Labels are strict upper-case I, X, Y, Z.
//
// Errors: ErrEmptyTerm for an empty string, ErrBadLabel for any other rune,
// ErrNaNInf for a non-finite coefficient.
// Complexity: O(n).
func NewTerm(coeff float64, labels string) (Term, error) {
	if labels == "" {
		return Term{}, ErrEmptyTerm
	}
	if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
		return Term{}, ErrNaNInf
	}

	ops := make([]Operator, len(labels))
	for i := 0; i < len(labels); i++ {
		op, err := parseOperator(labels[i])
		if err != nil {
			return Term{}, fmt.Errorf("position %d (%q): %w", i, labels[i], err)
		}
		ops[i] = op
	}

	return Term{Coeff: coeff, Ops: ops}, nil
}

// NewTermFromOps builds a Term from an operator slice; the slice is copied.
//
// Errors: ErrEmptyTerm, ErrBadLabel, ErrNaNInf (same contract as NewTerm).
// Complexity: O(n).
func NewTermFromOps(coeff float64, ops []Operator) (Term, error) {
	if len(ops) == 0 {
		return Term{}, ErrEmptyTerm
	}
	if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
		return Term{}, ErrNaNInf
	}

	cp := make([]Operator, len(ops))
	for i, op := range ops {
		if op > Z {
			return Term{}, fmt.Errorf("position %d (%d): %w", i, op, ErrBadLabel)
		}
		cp[i] = op
	}

	return Term{Coeff: coeff, Ops: cp}, nil
}

// Qubits returns the number of qubits the term acts on.
func (t Term) Qubits() int { return len(t.Ops) }

// Weight returns the number of non-identity positions.
// Complexity: O(n).
func (t Term) Weight() int {
	var w int
	for _, op := range t.Ops {
		if op != I {
			w++
		}
	}
	return w
}

// IsIdentity reports whether every position is the identity.
func (t Term) IsIdentity() bool { return t.Weight() == 0 }

// CommutesWith reports whether the Pauli strings of t and o commute.
// Two strings commute exactly when the number of positions holding two
// different non-identity operators is even. A shorter string is treated
// as padded with identities, which never affects the count.
//
// Complexity: O(n).
func (t Term) CommutesWith(o Term) bool {
	n := len(t.Ops)
	if len(o.Ops) < n {
		n = len(o.Ops)
	}

	var anti int
	for i := 0; i < n; i++ {
		if t.Ops[i] != I && o.Ops[i] != I && t.Ops[i] != o.Ops[i] {
			anti++
		}
	}

	return anti%2 == 0
}

// Labels returns the label string of the term, e.g. "XIZ" (index = qubit).
func (t Term) Labels() string {
	var sb strings.Builder
	sb.Grow(len(t.Ops))
	for _, op := range t.Ops {
		if op > Z {
			sb.WriteByte('?')
			continue
		}
		sb.WriteByte(operatorLabels[op])
	}
	return sb.String()
}

// String renders the term as "+0.5·XZ" (signed coefficient, label string).
func (t Term) String() string {
	return fmt.Sprintf("%+g·%s", t.Coeff, t.Labels())
}

// Decomposition is an ordered list of Pauli terms over a fixed qubit count.
// It is immutable once built; accessors return defensive copies.
type Decomposition struct {
	terms  []Term
	qubits int
}

// NewDecomposition builds a Decomposition from terms that all act on the
// same number of qubits. An empty call yields an empty decomposition over
// zero qubits. Term order is preserved.
//
// Errors: ErrTermLength when qubit counts differ, ErrEmptyTerm for a
// zero-qubit term, ErrNaNInf for a non-finite coefficient.
// Complexity: O(m·n) for m terms.
func NewDecomposition(terms ...Term) (*Decomposition, error) {
	d := &Decomposition{}
	if len(terms) == 0 {
		return d, nil
	}

	d.qubits = terms[0].Qubits()
	d.terms = make([]Term, 0, len(terms))
	for i, t := range terms {
		if t.Qubits() == 0 {
			return nil, fmt.Errorf("term %d: %w", i, ErrEmptyTerm)
		}
		if t.Qubits() != d.qubits {
			return nil, fmt.Errorf("term %d has %d qubits, want %d: %w", i, t.Qubits(), d.qubits, ErrTermLength)
		}
		if math.IsNaN(t.Coeff) || math.IsInf(t.Coeff, 0) {
			return nil, fmt.Errorf("term %d: %w", i, ErrNaNInf)
		}
		cp, err := NewTermFromOps(t.Coeff, t.Ops)
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", i, err)
		}
		d.terms = append(d.terms, cp)
	}

	return d, nil
}

// Len returns the number of terms.
func (d *Decomposition) Len() int { return len(d.terms) }

// Qubits returns the qubit count shared by all terms (0 for the empty
// decomposition).
func (d *Decomposition) Qubits() int { return d.qubits }

// Term returns the i-th term with a copied operator slice.
//
// Errors: ErrTermIndex when i is out of range.
func (d *Decomposition) Term(i int) (Term, error) {
	if i < 0 || i >= len(d.terms) {
		return Term{}, ErrTermIndex
	}
	t := d.terms[i]
	cp := make([]Operator, len(t.Ops))
	copy(cp, t.Ops)
	return Term{Coeff: t.Coeff, Ops: cp}, nil
}

// Terms returns a deep copy of the term list in stored order.
// Complexity: O(m·n).
func (d *Decomposition) Terms() []Term {
	out := make([]Term, len(d.terms))
	for i, t := range d.terms {
		cp := make([]Operator, len(t.Ops))
		copy(cp, t.Ops)
		out[i] = Term{Coeff: t.Coeff, Ops: cp}
	}
	return out
}

// Commuting reports whether every pair of terms commutes. Empty and
// single-term decompositions commute trivially.
//
// Complexity: O(m²·n).
func (d *Decomposition) Commuting() bool {
	for i := 0; i < len(d.terms); i++ {
		for j := i + 1; j < len(d.terms); j++ {
			if !d.terms[i].CommutesWith(d.terms[j]) {
				return false
			}
		}
	}
	return true
}

// String renders the decomposition as space-separated signed terms,
// e.g. "+1·XI +1·IZ +0.5·XZ".
func (d *Decomposition) String() string {
	var sb strings.Builder
	for i, t := range d.terms {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}
