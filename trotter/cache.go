// Package trotter - memoization of synthesized circuits.
package trotter

import (
	"sync"

	"github.com/katalvlaran/qevo/circuit"
	"github.com/katalvlaran/qevo/pauli"
)

// Cache stores synthesized sequences under fingerprint keys. Implementations
// must be safe for concurrent use and must not alias stored sequences with
// callers: Get returns a copy the caller owns, Put copies what it stores.
type Cache interface {
	// Get returns the sequence stored under key and whether it exists.
	Get(key string) (circuit.Sequence, bool)
	// Put stores seq under key, replacing any previous entry.
	Put(key string, seq circuit.Sequence)
}

// MemoryCache is an in-process Cache guarded by a read-write mutex. The
// zero value is not usable; construct with NewMemoryCache.
type MemoryCache struct {
	mu   sync.RWMutex
	seqs map[string]circuit.Sequence
}

// compile-time interface check
var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{seqs: make(map[string]circuit.Sequence)}
}

// Get returns a copy of the cached sequence for key, if any.
// Complexity: O(len) for the defensive copy.
func (c *MemoryCache) Get(key string) (circuit.Sequence, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seq, ok := c.seqs[key]
	if !ok {
		return nil, false
	}

	return seq.Clone(), true
}

// Put stores a copy of seq under key.
// Complexity: O(len) for the defensive copy.
func (c *MemoryCache) Put(key string, seq circuit.Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seqs[key] = seq.Clone()
}

// Len returns the number of cached sequences.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.seqs)
}

// Synthesizer memoizes Synthesize results keyed by Fingerprint. Failed
// synthesis is never cached, so a later valid request is unaffected by
// earlier errors.
type Synthesizer struct {
	cache Cache
}

// NewSynthesizer returns a Synthesizer over the given cache; a nil cache
// selects a fresh MemoryCache.
func NewSynthesizer(cache Cache) *Synthesizer {
	if cache == nil {
		cache = NewMemoryCache()
	}

	return &Synthesizer{cache: cache}
}

// Synthesize returns the cached sequence for the job, synthesizing and
// storing it on the first request. The request is validated before the
// cache is consulted, so a malformed job fails identically whether or not
// a related circuit is already cached.
//
// Errors: those of Synthesize.
func (s *Synthesizer) Synthesize(dec *pauli.Decomposition, req Request) (circuit.Sequence, error) {
	if err := validateRequest(dec, req); err != nil {
		return nil, err
	}

	key, err := Fingerprint(dec, req)
	if err != nil {
		return nil, err
	}

	if seq, ok := s.cache.Get(key); ok {
		return seq, nil
	}

	seq, err := Synthesize(dec, req)
	if err != nil {
		return nil, err
	}
	s.cache.Put(key, seq)

	return seq, nil
}
