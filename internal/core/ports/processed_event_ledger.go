package ports

import (
	"context"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
)

// ProcessedEventLedger remembers which notifications a consumer has already
// handled. Entries are keyed by (event id, consumer name) so several
// consumers can process the same notification independently.
type ProcessedEventLedger interface {
	IsProcessed(ctx context.Context, eventID kernel.UUID, consumer string) (bool, error)

	// RecordProcessed stores the entry. Recording an existing entry again is
	// not an error.
	RecordProcessed(ctx context.Context, eventID kernel.UUID, eventType event.Name, consumer string) error
}
