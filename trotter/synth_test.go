package trotter_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qevo/circuit"
	"github.com/katalvlaran/qevo/pauli"
	"github.com/katalvlaran/qevo/trotter"
	"github.com/stretchr/testify/assert"
)

// scenario returns the commuting two-qubit Hamiltonian XI + IZ + 0.5·XZ.
func scenario(t *testing.T) *pauli.Decomposition {
	t.Helper()
	return mustDecomposition(t,
		mustTerm(t, 1, "XI"),
		mustTerm(t, 1, "IZ"),
		mustTerm(t, 0.5, "XZ"),
	)
}

// clashing returns the non-commuting single-qubit pair 0.8·Z + 0.6·X.
func clashing(t *testing.T) *pauli.Decomposition {
	t.Helper()
	return mustDecomposition(t,
		mustTerm(t, 0.8, "Z"),
		mustTerm(t, 0.6, "X"),
	)
}

// TestSynthesize_Validation exercises every request rejection path.
func TestSynthesize_Validation(t *testing.T) {
	dec := scenario(t)

	_, err := trotter.Synthesize(nil, trotter.DefaultRequest(1))
	assert.ErrorIs(t, err, trotter.ErrNilDecomposition, "nil decomposition must error")

	seq, err := trotter.Synthesize(dec, trotter.Request{Time: math.NaN(), Slices: 1, Mode: trotter.Suzuki, Order: 2})
	assert.ErrorIs(t, err, trotter.ErrInvalidRequest, "NaN time must error")
	assert.Nil(t, seq)

	seq, err = trotter.Synthesize(dec, trotter.Request{Time: 1, Slices: -1, Mode: trotter.Suzuki, Order: 2})
	assert.ErrorIs(t, err, trotter.ErrInvalidRequest, "negative slices must error")
	assert.Nil(t, seq)

	_, err = trotter.Synthesize(dec, trotter.Request{Time: 1, Slices: 1, Mode: trotter.Mode(9), Order: 2})
	assert.ErrorIs(t, err, trotter.ErrInvalidRequest, "unknown mode must error")

	_, err = trotter.Synthesize(dec, trotter.Request{Time: 1, Slices: 1, Mode: trotter.Suzuki, Order: 0})
	assert.ErrorIs(t, err, trotter.ErrInvalidRequest, "Suzuki order 0 must error")

	_, err = trotter.Synthesize(dec, trotter.Request{Time: 1, Slices: 1, Mode: trotter.Suzuki, Order: trotter.MaxOrder + 1})
	assert.ErrorIs(t, err, trotter.ErrInvalidRequest, "order above the cap must error")

	_, err = trotter.Synthesize(dec, trotter.Request{Time: 1, Slices: 1, Mode: trotter.Lie, Order: 0})
	assert.NoError(t, err, "Lie mode needs no order")
}

// TestSynthesize_TrivialEvolutions yields empty but non-nil sequences.
func TestSynthesize_TrivialEvolutions(t *testing.T) {
	empty, err := pauli.NewDecomposition()
	assert.NoError(t, err)
	seq, err := trotter.Synthesize(empty, trotter.DefaultRequest(1.5))
	assert.NoError(t, err)
	assert.NotNil(t, seq, "success never returns nil")
	assert.Empty(t, seq, "no terms, no gates")

	seq, err = trotter.Synthesize(scenario(t), trotter.DefaultRequest(0))
	assert.NoError(t, err)
	assert.NotNil(t, seq)
	assert.Empty(t, seq, "zero duration emits nothing")

	zeroed := mustDecomposition(t, mustTerm(t, 0, "XZ"))
	seq, err = trotter.Synthesize(zeroed, trotter.DefaultRequest(2))
	assert.NoError(t, err)
	assert.Empty(t, seq, "zero coefficients contribute no gates")

	identity := mustDecomposition(t, mustTerm(t, 3, "II"))
	seq, err = trotter.Synthesize(identity, trotter.DefaultRequest(2))
	assert.NoError(t, err)
	assert.Empty(t, seq, "identity strings are a global phase")
}

// TestSynthesize_Determinism requires gate-for-gate equal output for equal
// inputs, including across freshly rebuilt decompositions.
func TestSynthesize_Determinism(t *testing.T) {
	req := trotter.Request{Time: 0.9, Slices: 3, Mode: trotter.Suzuki, Order: 4}

	first, err := trotter.Synthesize(scenario(t), req)
	assert.NoError(t, err)
	second, err := trotter.Synthesize(scenario(t), req)
	assert.NoError(t, err)

	assert.True(t, first.Equal(second), "equal inputs must give identical circuits")
	assert.NotEmpty(t, first)
}

// TestSynthesize_GateBudget pins the gate counts of the scenario circuit.
func TestSynthesize_GateBudget(t *testing.T) {
	dec := scenario(t)

	lie, err := trotter.Synthesize(dec, trotter.Request{Time: 1, Slices: 1, Mode: trotter.Lie})
	assert.NoError(t, err)
	// XI → 1 rotation, IZ → 1 rotation, XZ → 2 basis + 2 CNOT + 1 RZ
	assert.Len(t, lie, 7, "one Lie pass over the scenario")

	suzuki, err := trotter.Synthesize(dec, trotter.Request{Time: 1, Slices: 1, Mode: trotter.Suzuki, Order: 2})
	assert.NoError(t, err)
	assert.Len(t, suzuki, 14, "the palindrome doubles the pass")

	sliced, err := trotter.Synthesize(dec, trotter.Request{Time: 1, Slices: 3, Mode: trotter.Suzuki, Order: 2})
	assert.NoError(t, err)
	assert.Len(t, sliced, 42, "slices repeat the palindrome")
}

// TestSynthesize_ExactMode covers the Slices==0 contract.
func TestSynthesize_ExactMode(t *testing.T) {
	dec := scenario(t)

	exact, err := trotter.Synthesize(dec, trotter.Request{Time: 1.3, Slices: 0, Mode: trotter.Suzuki, Order: 2})
	assert.NoError(t, err, "commuting terms admit exact synthesis")

	// exact mode is one first-order pass at the full duration
	onePass, err := trotter.Synthesize(dec, trotter.Request{Time: 1.3, Slices: 1, Mode: trotter.Lie})
	assert.NoError(t, err)
	assert.True(t, exact.Equal(onePass), "exact mode equals a single Lie pass")

	seq, err := trotter.Synthesize(clashing(t), trotter.Request{Time: 1.3, Slices: 0, Mode: trotter.Suzuki, Order: 2})
	assert.ErrorIs(t, err, trotter.ErrUnsupportedExactSynthesis, "non-commuting terms have no exact circuit")
	assert.Nil(t, seq)

	empty, err := pauli.NewDecomposition()
	assert.NoError(t, err)
	seq, err = trotter.Synthesize(empty, trotter.Request{Time: 1.3, Slices: 0, Mode: trotter.Suzuki, Order: 2})
	assert.NoError(t, err, "empty Hamiltonians evolve exactly by doing nothing")
	assert.Empty(t, seq)
}

// TestSynthesize_OddOrderNormalization maps odd orders onto the even order
// below.
func TestSynthesize_OddOrderNormalization(t *testing.T) {
	dec := clashing(t)

	for _, pair := range [][2]int{{3, 2}, {5, 4}, {7, 6}} {
		odd, err := trotter.Synthesize(dec, trotter.Request{Time: 0.7, Slices: 2, Mode: trotter.Suzuki, Order: pair[0]})
		assert.NoError(t, err)
		even, err := trotter.Synthesize(dec, trotter.Request{Time: 0.7, Slices: 2, Mode: trotter.Suzuki, Order: pair[1]})
		assert.NoError(t, err)
		assert.True(t, odd.Equal(even), "order %d must synthesize as order %d", pair[0], pair[1])
	}

	one, err := trotter.Synthesize(dec, trotter.Request{Time: 0.7, Slices: 2, Mode: trotter.Suzuki, Order: 1})
	assert.NoError(t, err)
	lie, err := trotter.Synthesize(dec, trotter.Request{Time: 0.7, Slices: 2, Mode: trotter.Lie})
	assert.NoError(t, err)
	assert.True(t, one.Equal(lie), "Suzuki order 1 is the first-order formula")
}

// TestSynthesize_LieIgnoresOrder verifies Order has no effect in Lie mode.
func TestSynthesize_LieIgnoresOrder(t *testing.T) {
	dec := clashing(t)

	a, err := trotter.Synthesize(dec, trotter.Request{Time: 0.5, Slices: 2, Mode: trotter.Lie, Order: 0})
	assert.NoError(t, err)
	b, err := trotter.Synthesize(dec, trotter.Request{Time: 0.5, Slices: 2, Mode: trotter.Lie, Order: 6})
	assert.NoError(t, err)
	assert.True(t, a.Equal(b), "Lie emission must not depend on Order")

	// the Suzuki bounds do not apply here
	for _, order := range []int{-3, trotter.MaxOrder + 5} {
		c, err := trotter.Synthesize(dec, trotter.Request{Time: 0.5, Slices: 2, Mode: trotter.Lie, Order: order})
		assert.NoError(t, err, "order %d must be valid under Lie", order)
		assert.True(t, a.Equal(c), "Lie emission must not depend on Order (order %d)", order)
	}
}

// TestTermEvolution_Structure pins the exact gate pattern of small terms.
func TestTermEvolution_Structure(t *testing.T) {
	// weight 2 with an X position: basis change, ladder, rotation, mirror
	seq, err := trotter.TermEvolution(mustTerm(t, 0.5, "XZ"), 0.5)
	assert.NoError(t, err)
	want := circuit.Sequence{
		circuit.NewRY(0, -math.Pi/2),
		circuit.NewCNOT(0, 1),
		circuit.NewRZ(1, 0.5), // 2·0.5·0.5
		circuit.NewCNOT(0, 1),
		circuit.NewRY(0, math.Pi/2),
	}
	assert.True(t, seq.Equal(want), "XZ evolution must follow the ladder pattern")

	// weight 2 of Y positions: RX basis changes, mirrored in reverse order
	seq, err = trotter.TermEvolution(mustTerm(t, 0.25, "YY"), 1)
	assert.NoError(t, err)
	want = circuit.Sequence{
		circuit.NewRX(0, math.Pi/2),
		circuit.NewRX(1, math.Pi/2),
		circuit.NewCNOT(0, 1),
		circuit.NewRZ(1, 0.5), // 2·0.25·1
		circuit.NewCNOT(0, 1),
		circuit.NewRX(1, -math.Pi/2),
		circuit.NewRX(0, -math.Pi/2),
	}
	assert.True(t, seq.Equal(want), "YY evolution must unwind in mirror order")

	// weight 1 rotates about the native axis without any ladder
	seq, err = trotter.TermEvolution(mustTerm(t, 0.3, "IZ"), 0.7)
	assert.NoError(t, err)
	want = circuit.Sequence{circuit.NewRZ(1, 2*0.3*0.7)}
	assert.True(t, seq.Equal(want), "weight-1 Z is a bare RZ on its qubit")

	// identity and zero-angle terms emit nothing
	seq, err = trotter.TermEvolution(mustTerm(t, 3, "II"), 0.7)
	assert.NoError(t, err)
	assert.Empty(t, seq, "identity terms are a global phase")

	seq, err = trotter.TermEvolution(mustTerm(t, 0.5, "XZ"), 0)
	assert.NoError(t, err)
	assert.Empty(t, seq, "zero duration emits nothing")
}

// TestTermEvolution_Validation rejects malformed inputs.
func TestTermEvolution_Validation(t *testing.T) {
	_, err := trotter.TermEvolution(mustTerm(t, 1, "X"), math.Inf(1))
	assert.ErrorIs(t, err, trotter.ErrInvalidRequest, "infinite tau must error")

	_, err = trotter.TermEvolution(pauli.Term{Coeff: 1}, 0.5)
	assert.ErrorIs(t, err, pauli.ErrEmptyTerm, "empty term must error")

	_, err = trotter.TermEvolution(pauli.Term{Coeff: 1, Ops: []pauli.Operator{pauli.Operator(8)}}, 0.5)
	assert.ErrorIs(t, err, pauli.ErrBadLabel, "invalid operator must error")

	_, err = trotter.TermEvolution(pauli.Term{Coeff: math.NaN(), Ops: []pauli.Operator{pauli.X}}, 0.5)
	assert.ErrorIs(t, err, pauli.ErrNaNInf, "NaN coefficient must error")
}
