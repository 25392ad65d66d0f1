// Package trotter - synthesis request validation.
package trotter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qevo/pauli"
)

// validateRequest rejects malformed jobs before any gate is emitted.
//
// Errors: ErrNilDecomposition, ErrInvalidRequest.
func validateRequest(dec *pauli.Decomposition, req Request) error {
	if dec == nil {
		return ErrNilDecomposition
	}
	if math.IsNaN(req.Time) || math.IsInf(req.Time, 0) {
		return fmt.Errorf("time must be finite, got %v: %w", req.Time, ErrInvalidRequest)
	}
	if req.Slices < 0 {
		return fmt.Errorf("slices must be non-negative, got %d: %w", req.Slices, ErrInvalidRequest)
	}
	if req.Mode > Suzuki {
		return fmt.Errorf("unknown mode %d: %w", req.Mode, ErrInvalidRequest)
	}
	// Order is meaningful only under Suzuki; Lie accepts any value.
	if req.Mode == Suzuki && (req.Order < 1 || req.Order > MaxOrder) {
		return fmt.Errorf("suzuki order must be in [1, %d], got %d: %w", MaxOrder, req.Order, ErrInvalidRequest)
	}

	return nil
}
