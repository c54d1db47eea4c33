package ports

import (
	"context"

	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
)

// QualityInspectionRepository persists inspections with their items.
type QualityInspectionRepository interface {
	Add(ctx context.Context, aggregate *inspection.QualityInspection) error
	Update(ctx context.Context, aggregate *inspection.QualityInspection) error
	Get(ctx context.Context, id kernel.UUID) (*inspection.QualityInspection, error)

	// HasOpenInspection reports whether an inspection of the production
	// order has not been reviewed yet.
	HasOpenInspection(ctx context.Context, productionOrderID kernel.UUID) (bool, error)
}
