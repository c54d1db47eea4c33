package ports

import (
	"context"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The stored version must
	// match aggregate.Version(), otherwise errs.ErrVersionIsInvalid is returned.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id or returns errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CountByDealerAndModelAndStatuses counts a dealer's orders of one model
	// that are in any of the given statuses.
	CountByDealerAndModelAndStatuses(
		ctx context.Context,
		dealerID string,
		modelCode string,
		statuses []order.Status,
	) (int64, error)
}
