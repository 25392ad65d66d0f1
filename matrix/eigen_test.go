package matrix_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/qevo/matrix"
	"github.com/stretchr/testify/assert"
)

// reconstruct builds Q·diag(vals)·Q† for comparison against the input matrix.
func reconstruct(t *testing.T, vals []float64, q *matrix.Dense) *matrix.Dense {
	t.Helper()
	n := len(vals)
	d, err := matrix.NewDense(n, n)
	assert.NoError(t, err)
	for k := 0; k < n; k++ {
		assert.NoError(t, d.Set(k, k, complex(vals[k], 0)))
	}
	qd, err := q.Mul(d)
	assert.NoError(t, err)
	r, err := qd.Mul(q.ConjTranspose())
	assert.NoError(t, err)
	return r
}

// TestEigenHermitian_PauliX verifies the known ±1 spectrum of the X matrix.
func TestEigenHermitian_PauliX(t *testing.T) {
	x := mustDense(t, [][]complex128{{0, 1}, {1, 0}})

	vals, q, err := matrix.EigenHermitian(x, 0, 0)
	assert.NoError(t, err, "Hermitian 2×2 must decompose")
	assert.Len(t, vals, 2)
	assert.NotNil(t, q)

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	assert.InDelta(t, -1.0, sorted[0], 1e-12, "smallest eigenvalue of X is -1")
	assert.InDelta(t, +1.0, sorted[1], 1e-12, "largest eigenvalue of X is +1")
}

// TestEigenHermitian_Reconstruction checks Q·diag(λ)·Q† ≈ H and unitarity of Q
// on a seeded random 4×4 Hermitian matrix.
func TestEigenHermitian_Reconstruction(t *testing.T) {
	h, err := matrix.RandomHermitian(4, rand.New(rand.NewSource(42)))
	assert.NoError(t, err)

	vals, q, err := matrix.EigenHermitian(h, 0, 0)
	assert.NoError(t, err, "random Hermitian must decompose")

	rec := reconstruct(t, vals, q)
	assert.True(t, rec.EqualApprox(h, 1e-9), "spectral reconstruction must match the input")

	qhq, err := q.ConjTranspose().Mul(q)
	assert.NoError(t, err)
	id, err := matrix.Identity(4)
	assert.NoError(t, err)
	assert.True(t, qhq.EqualApprox(id, 1e-9), "eigenvector matrix must be unitary")
}

// TestEigenHermitian_Validation exercises the error paths.
func TestEigenHermitian_Validation(t *testing.T) {
	_, _, err := matrix.EigenHermitian(nil, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil input must error")

	rect := mustDense(t, [][]complex128{{1, 2, 3}})
	_, _, err = matrix.EigenHermitian(rect, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "non-square input must error")

	skew := mustDense(t, [][]complex128{{0, 1}, {-1, 0}})
	_, _, err = matrix.EigenHermitian(skew, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNotHermitian, "non-Hermitian input must error")

	h, err := matrix.RandomHermitian(4, rand.New(rand.NewSource(42)))
	assert.NoError(t, err)
	_, _, err = matrix.EigenHermitian(h, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrEigenFailed, "one rotation cannot converge a dense 4×4")
}

// TestPropagator_PauliX compares against the closed form
// exp(-i·X·t) = cos(t)·I - i·sin(t)·X.
func TestPropagator_PauliX(t *testing.T) {
	x := mustDense(t, [][]complex128{{0, 1}, {1, 0}})
	tt := 0.7

	u, err := matrix.Propagator(x, tt)
	assert.NoError(t, err)

	c := complex(math.Cos(tt), 0)
	s := complex(0, -math.Sin(tt))
	want := mustDense(t, [][]complex128{{c, s}, {s, c}})
	assert.True(t, u.EqualApprox(want, 1e-9), "propagator of X must match the closed form")
}

// TestPropagator_ZeroTime verifies exp(-i·H·0) = I.
func TestPropagator_ZeroTime(t *testing.T) {
	h, err := matrix.RandomHermitian(4, rand.New(rand.NewSource(7)))
	assert.NoError(t, err)

	u, err := matrix.Propagator(h, 0)
	assert.NoError(t, err)

	id, err := matrix.Identity(4)
	assert.NoError(t, err)
	assert.True(t, u.EqualApprox(id, 1e-9), "zero-time evolution must be the identity")
}

// TestPropagator_Unitarity checks U·U† ≈ I at a generic time.
func TestPropagator_Unitarity(t *testing.T) {
	h, err := matrix.RandomHermitian(4, rand.New(rand.NewSource(3)))
	assert.NoError(t, err)

	u, err := matrix.Propagator(h, 1.3)
	assert.NoError(t, err)

	uut, err := u.Mul(u.ConjTranspose())
	assert.NoError(t, err)
	id, err := matrix.Identity(4)
	assert.NoError(t, err)
	assert.True(t, uut.EqualApprox(id, 1e-9), "propagator must be unitary")
}

// TestRandomHermitian_Properties checks hermiticity, determinism under the
// nil-RNG policy, and shape validation.
func TestRandomHermitian_Properties(t *testing.T) {
	h, err := matrix.RandomHermitian(3, nil)
	assert.NoError(t, err)
	assert.True(t, h.IsHermitian(0), "construction must be exactly Hermitian")

	again, err := matrix.RandomHermitian(3, nil)
	assert.NoError(t, err)
	assert.True(t, h.EqualApprox(again, 0), "nil RNG must reproduce the same matrix")

	other, err := matrix.RandomHermitian(3, rand.New(rand.NewSource(99)))
	assert.NoError(t, err)
	assert.False(t, h.EqualApprox(other, 1e-12), "a different seed must change the sample")

	_, err = matrix.RandomHermitian(0, nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "n=0 must error ErrBadShape")
}
