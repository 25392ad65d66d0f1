// Package trotter - canonical fingerprinting of synthesis jobs.
package trotter

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/katalvlaran/qevo/pauli"
)

// Fingerprint returns the hex SHA-256 digest of a canonical big-endian
// encoding of the decomposition and request. Equal jobs always share a
// fingerprint, which makes it the cache key for synthesized circuits.
//
// Encoding, in order: qubit count (uint16), term count (uint32), then per
// term the coefficient (IEEE 754 bits, uint64) and one byte per operator;
// then Time (IEEE 754 bits, uint64), Slices (uint64), Mode (byte), Order
// (uint64). The full-width integer fields keep distinct requests from
// sharing a digest.
//
// Errors: ErrNilDecomposition.
// Complexity: O(m·n) hashed bytes for m terms on n qubits.
func Fingerprint(dec *pauli.Decomposition, req Request) (string, error) {
	if dec == nil {
		return "", ErrNilDecomposition
	}

	var (
		h   = sha256.New()
		buf [8]byte
	)

	binary.BigEndian.PutUint16(buf[:2], uint16(dec.Qubits()))
	h.Write(buf[:2])
	binary.BigEndian.PutUint32(buf[:4], uint32(dec.Len()))
	h.Write(buf[:4])
	for _, t := range dec.Terms() {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(t.Coeff))
		h.Write(buf[:])
		ops := make([]byte, len(t.Ops))
		for i, op := range t.Ops {
			ops[i] = byte(op)
		}
		h.Write(ops)
	}

	binary.BigEndian.PutUint64(buf[:], math.Float64bits(req.Time))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(req.Slices))
	h.Write(buf[:])
	h.Write([]byte{byte(req.Mode)})
	binary.BigEndian.PutUint64(buf[:], uint64(req.Order))
	h.Write(buf[:])

	return hex.EncodeToString(h.Sum(nil)), nil
}
