package postgres

import (
	"context"

	"automfg/internal/adapters/out/postgres/inspectionrepo"
	"automfg/internal/adapters/out/postgres/ledgerrepo"
	"automfg/internal/adapters/out/postgres/orderrepo"
	"automfg/internal/adapters/out/postgres/outboxrepo"
	"automfg/internal/adapters/out/postgres/productionrepo"
	"automfg/internal/adapters/out/postgres/reworkrepo"
	"automfg/internal/adapters/out/postgres/sequencerepo"

	"gorm.io/gorm"
)

// Models lists every table of the manufacturing database in creation order.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&productionrepo.ProductionOrderDTO{},
		&productionrepo.BomLineItemDTO{},
		&productionrepo.AssemblyStepDTO{},
		&inspectionrepo.QualityInspectionDTO{},
		&inspectionrepo.InspectionItemDTO{},
		&reworkrepo.ReworkOrderDTO{},
		&ledgerrepo.ProcessedEventDTO{},
		&outboxrepo.MessageDTO{},
		&sequencerepo.SequenceDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
