package ports

import (
	"context"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/production"
)

// ProductionOrderRepository persists production orders together with their
// bill of materials and assembly steps.
type ProductionOrderRepository interface {
	Add(ctx context.Context, aggregate *production.ProductionOrder) error

	// Update persists status, station and step changes with an optimistic
	// version check.
	Update(ctx context.Context, aggregate *production.ProductionOrder) error

	Get(ctx context.Context, id kernel.UUID) (*production.ProductionOrder, error)

	// ExistsBySourceOrderID backs the one production order per commercial
	// order rule checked at intake.
	ExistsBySourceOrderID(ctx context.Context, sourceOrderID kernel.UUID) (bool, error)
}
