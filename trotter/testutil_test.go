package trotter_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qevo/matrix"
	"github.com/katalvlaran/qevo/pauli"
	"github.com/katalvlaran/qevo/statevec"
	"github.com/katalvlaran/qevo/trotter"
	"github.com/stretchr/testify/assert"
)

// stateSeed fixes the random initial state used by every accuracy check.
const stateSeed int64 = 2025

// mustTerm builds a Term from a label string, failing the test on error.
func mustTerm(t *testing.T, coeff float64, labels string) pauli.Term {
	t.Helper()
	term, err := pauli.NewTerm(coeff, labels)
	assert.NoError(t, err, "NewTerm(%q) should parse", labels)
	return term
}

// mustDecomposition builds a Decomposition, failing the test on error.
func mustDecomposition(t *testing.T, terms ...pauli.Term) *pauli.Decomposition {
	t.Helper()
	d, err := pauli.NewDecomposition(terms...)
	assert.NoError(t, err, "NewDecomposition should accept the terms")
	return d
}

// evolutionError synthesizes the request, runs it against the exact
// propagator from a fixed random initial state, and returns √(1-F), the
// amplitude-level deviation. It fails the test on any pipeline error.
func evolutionError(t *testing.T, dec *pauli.Decomposition, req trotter.Request) float64 {
	t.Helper()

	h, err := dec.Matrix()
	assert.NoError(t, err, "decomposition must densify")
	u, err := matrix.Propagator(h, req.Time)
	assert.NoError(t, err, "exact propagator must build")

	initial, err := statevec.Random(dec.Qubits(), rand.New(rand.NewSource(stateSeed)))
	assert.NoError(t, err, "initial state must build")

	exactVec, err := u.MatVec(initial)
	assert.NoError(t, err, "exact evolution must apply")
	exact := statevec.State(exactVec)

	seq, err := trotter.Synthesize(dec, req)
	assert.NoError(t, err, "synthesis must succeed")
	approx, err := statevec.RunFrom(initial, seq)
	assert.NoError(t, err, "synthesized circuit must run")

	f, err := statevec.Fidelity(exact, approx)
	assert.NoError(t, err, "fidelity must compute")

	return math.Sqrt(math.Max(0, 1-f))
}
