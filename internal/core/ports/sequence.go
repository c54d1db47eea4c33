package ports

import (
	"context"

	"automfg/internal/core/domain/model/kernel"
)

// SequenceAllocator hands out strictly increasing numbers per named sequence,
// starting at 1. Sequence names carry their period, e.g. "order:202401".
type SequenceAllocator interface {
	Next(ctx context.Context, name string) (int64, error)
}

// VINGenerator produces identification numbers for new vehicles.
type VINGenerator interface {
	Generate() (kernel.VIN, error)
}
