// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major complex128 buffer with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy: Set rejects NaN/Inf components.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//   - Add/Scale/ConjTranspose: O(r*c); Mul: O(r*c*k); MatVec: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// method tags used in error wrappers, kept as constants for grep-ability.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps a sentinel with Dense method context and callsite indices.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return zeroDense(rows, cols), nil
}

// zeroDense allocates without validation; private fast path for internal use.
func zeroDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²) time and memory.
func Identity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	m := zeroDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows builds a Dense from row slices. The input is copied; later
// mutation of rows does not affect the result.
//
// Errors: ErrBadShape for an empty or ragged layout, ErrNaNInf for any
// non-finite entry.
// Complexity: O(r*c).
func FromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])

	out := zeroDense(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), cols, ErrBadShape)
		}
		for j, v := range row {
			if !isFinite(v) {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at (row, col).
// Returns ErrOutOfRange (wrapped) when an index is outside bounds.
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check, then finite-value policy (ErrNaNInf).
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[row*m.c+col] = v

	return nil
}

// isFinite reports whether both components of v are finite.
func isFinite(v complex128) bool {
	re, im := real(v), imag(v)
	if math.IsNaN(re) || math.IsInf(re, 0) {
		return false
	}

	return !math.IsNaN(im) && !math.IsInf(im, 0)
}

// Values returns the entries in row-major order as a fresh slice, a flat
// view for callers that scan the whole matrix without per-entry bounds
// checks.
// Complexity: O(r*c) time and memory.
func (m *Dense) Values() []complex128 {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return cp
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Add returns m + b as a new matrix.
// Errors: ErrNilMatrix on nil argument, ErrDimensionMismatch on shape conflict.
// Complexity: O(r*c).
func (m *Dense) Add(b *Dense) (*Dense, error) {
	if b == nil {
		return nil, ErrNilMatrix
	}
	if m.r != b.r || m.c != b.c {
		return nil, ErrDimensionMismatch
	}
	out := zeroDense(m.r, m.c)
	for i := range m.data {
		out.data[i] = m.data[i] + b.data[i]
	}

	return out, nil
}

// Scale returns z·m as a new matrix.
// Complexity: O(r*c).
func (m *Dense) Scale(z complex128) *Dense {
	out := zeroDense(m.r, m.c)
	for i := range m.data {
		out.data[i] = z * m.data[i]
	}

	return out
}

// Mul returns the matrix product m·b as a new matrix.
// Errors: ErrNilMatrix on nil argument, ErrDimensionMismatch when
// m.Cols != b.Rows.
// Complexity: O(r·k·c) time, O(r·c) memory.
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if b == nil {
		return nil, ErrNilMatrix
	}
	if m.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out := zeroDense(m.r, b.c)
	// i-k-j loop order keeps the inner walk contiguous in both operands.
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			mik := m.data[i*m.c+k]
			if mik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += mik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// ConjTranspose returns the conjugate transpose m† as a new matrix.
// Complexity: O(r*c).
func (m *Dense) ConjTranspose() *Dense {
	out := zeroDense(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return out
}

// MatVec returns the product m·v for a column vector v of length m.Cols.
// Errors: ErrDimensionMismatch when len(v) != m.Cols.
// Complexity: O(r*c) time, O(r) memory.
func (m *Dense) MatVec(v []complex128) ([]complex128, error) {
	if len(v) != m.c {
		return nil, ErrDimensionMismatch
	}
	out := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		var acc complex128
		row := m.data[i*m.c : (i+1)*m.c]
		for j, x := range v {
			acc += row[j] * x
		}
		out[i] = acc
	}

	return out, nil
}

// IsHermitian reports whether m equals its conjugate transpose within eps,
// i.e. |m[i][j] - conj(m[j][i])| ≤ eps for all entries. Non-square matrices
// are never Hermitian. Negative eps is treated as zero.
// Complexity: O(n²).
func (m *Dense) IsHermitian(eps float64) bool {
	if m.r != m.c {
		return false
	}
	if eps < 0 {
		eps = 0
	}
	for i := 0; i < m.r; i++ {
		// diagonal must be real within eps
		if math.Abs(imag(m.data[i*m.c+i])) > eps {
			return false
		}
		for j := i + 1; j < m.c; j++ {
			if cmplx.Abs(m.data[i*m.c+j]-cmplx.Conj(m.data[j*m.c+i])) > eps {
				return false
			}
		}
	}

	return true
}

// EqualApprox reports whether m and b share a shape and agree entrywise
// within eps (absolute difference in the complex plane).
// Complexity: O(r*c).
func (m *Dense) EqualApprox(b *Dense, eps float64) bool {
	if b == nil || m.r != b.r || m.c != b.c {
		return false
	}
	for i := range m.data {
		if cmplx.Abs(m.data[i]-b.data[i]) > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
