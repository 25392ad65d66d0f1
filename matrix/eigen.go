// SPDX-License-Identifier: MIT

// Package matrix - Hermitian eigendecomposition and reference propagators.
// EigenHermitian computes all eigenvalues and eigenvectors of a Hermitian
// matrix using complex Jacobi rotations; Propagator builds exp(-i·H·t) from
// the spectral decomposition.

package matrix

import (
	"math"
	"math/cmplx"
)

const (
	// DefaultEigenTol is the convergence threshold applied when callers pass
	// tol <= 0: iteration stops once every off-diagonal magnitude is below it.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi rotations when callers
	// pass maxIter <= 0. Each rotation is O(n), the pivot scan O(n²); a few
	// sweeps (n² rotations each) suffice for the dimensions this module
	// targets, and the cap leaves headroom for 64×64 operators.
	DefaultEigenMaxIter = 100000
)

// EigenHermitian performs Jacobi eigenvalue decomposition of a Hermitian m.
// It returns the real eigenvalues (unordered) and a unitary matrix Q whose
// k-th column is the eigenvector for the k-th eigenvalue.
//
// Each step annihilates the largest off-diagonal element A[p][q] = r·e^{iφ}
// with a unitary plane rotation; the phase factor e^{iφ} reduces the 2×2
// subproblem to the real symmetric case, so the classic tangent formula
// t = sign(θ)/(|θ|+√(θ²+1)), θ = (A[q][q]-A[p][p])/(2r), applies verbatim.
//
// Contracts:
//   - m must be square and Hermitian within tol (diagonal real within tol).
//   - tol <= 0 selects DefaultEigenTol; maxIter <= 0 selects DefaultEigenMaxIter.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotHermitian, ErrEigenFailed.
// Complexity: O(n²) per rotation (pivot scan dominates); worst-case
// O(maxIter·n²) time, O(n²) memory.
func EigenHermitian(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	// Stage 1: Validate input.
	if m == nil {
		return nil, nil, ErrNilMatrix
	}
	n := m.r
	if n != m.c {
		return nil, nil, ErrNonSquare
	}
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxIter <= 0 {
		maxIter = DefaultEigenMaxIter
	}
	if !m.IsHermitian(tol) {
		return nil, nil, ErrNotHermitian
	}

	// Stage 2: Prepare A (work copy) and Q (eigenvector accumulator).
	var (
		a = m.Clone()
		q = zeroDense(n, n)
	)
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	// Stage 3: Execute Jacobi rotations on the largest off-diagonal pivot.
	var (
		iter      int     // rotation counter
		p, pq     int     // pivot indices (pq is the column partner of p)
		i, j      int     // scan indices
		maxOff    float64 // largest off-diagonal magnitude
		converged bool
	)
	for iter = 0; iter < maxIter; iter++ {
		// find largest |A[i][j]| above the diagonal
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off := cmplx.Abs(a.data[i*n+j]); off > maxOff {
					maxOff = off
					p, pq = i, j
				}
			}
		}
		if maxOff <= tol {
			converged = true
			break
		}

		// capture the 2×2 subproblem before any writes
		var (
			app   = real(a.data[p*n+p])
			aqq   = real(a.data[pq*n+pq])
			apq   = a.data[p*n+pq]
			r     = cmplx.Abs(apq)
			phase = apq / complex(r, 0) // e^{iφ}; r > tol here
		)
		theta := (aqq - app) / (2 * r)
		t := math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1 / math.Sqrt(t*t+1)
		s := t * c
		var (
			cc = complex(c, 0)
			sp = complex(s, 0) * phase // s·e^{iφ}
		)

		// rotate rows/columns outside the pivot pair;
		// A'[i][p] = c·A[i][p] − s·e^{-iφ}·A[i][q]
		// A'[i][q] = s·e^{+iφ}·A[i][p] + c·A[i][q]
		for i = 0; i < n; i++ {
			if i == p || i == pq {
				continue
			}
			aip := a.data[i*n+p]
			aiq := a.data[i*n+pq]
			nip := cc*aip - cmplx.Conj(sp)*aiq
			niq := sp*aip + cc*aiq
			a.data[i*n+p] = nip
			a.data[p*n+i] = cmplx.Conj(nip)
			a.data[i*n+pq] = niq
			a.data[pq*n+i] = cmplx.Conj(niq)
		}

		// pivot pair: diagonal moves, off-diagonal annihilates exactly
		a.data[p*n+p] = complex(c*c*app-2*c*s*r+s*s*aqq, 0)
		a.data[pq*n+pq] = complex(s*s*app+2*c*s*r+c*c*aqq, 0)
		a.data[p*n+pq] = 0
		a.data[pq*n+p] = 0

		// accumulate the rotation into Q (Q ← Q·J)
		for i = 0; i < n; i++ {
			qip := q.data[i*n+p]
			qiq := q.data[i*n+pq]
			q.data[i*n+p] = cc*qip - cmplx.Conj(sp)*qiq
			q.data[i*n+pq] = sp*qip + cc*qiq
		}
	}
	if !converged {
		return nil, nil, ErrEigenFailed
	}

	// Stage 4: Finalize eigenvalues from the (now real) diagonal.
	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = real(a.data[i*n+i])
	}

	return vals, q, nil
}

// Propagator returns the unitary time-evolution operator U = exp(-i·h·t)
// built from the spectral decomposition of the Hermitian matrix h:
// U = Q·diag(e^{-i·λ_k·t})·Q†. It is the reference ("groundtruth") evolution
// that product-formula circuits approximate.
//
// Contracts:
//   - h must be square and Hermitian within DefaultEigenTol.
//   - t may be negative (backward evolution) or zero (identity).
//
// Errors: those of EigenHermitian.
// Complexity: eigendecomposition + O(n³) reconstruction.
func Propagator(h *Dense, t float64) (*Dense, error) {
	vals, q, err := EigenHermitian(h, 0, 0)
	if err != nil {
		return nil, err
	}

	n := h.r
	// phases[k] = e^{-i·λ_k·t}
	phases := make([]complex128, n)
	for k := 0; k < n; k++ {
		phases[k] = cmplx.Exp(complex(0, -vals[k]*t))
	}

	// U[i][j] = Σ_k Q[i][k]·phases[k]·conj(Q[j][k])
	u := zeroDense(n, n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			qik := q.data[i*n+k] * phases[k]
			if qik == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				u.data[i*n+j] += qik * cmplx.Conj(q.data[j*n+k])
			}
		}
	}

	return u, nil
}
