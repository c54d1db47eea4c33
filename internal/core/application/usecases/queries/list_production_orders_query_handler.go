package queries

import (
	"context"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/production"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListProductionOrdersQueryHandler lists production orders, oldest first.
type ListProductionOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListProductionOrdersQueryHandler(db *gorm.DB) ListProductionOrdersQueryHandler {
	return ListProductionOrdersQueryHandler{db: db}
}

func (h ListProductionOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListProductionOrdersQuery,
) ([]ProductionOrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).
		Table("production_orders").
		Select("id", "number", "vin", "status", "current_station_sequence", "created_at")
	if status, ok := query.Status(); ok {
		db = db.Where("status = ?", int(status))
	}

	rows, err := db.Order("created_at").Order("number").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ProductionOrderSummary, 0)
	for rows.Next() {
		var (
			summary  ProductionOrderSummary
			id       uuid.UUID
			rawState int
			station  int
		)
		if err = rows.Scan(&id, &summary.Number, &summary.VIN, &rawState, &station, &summary.CreatedAt); err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		summary.Status = production.Status(rawState)
		if station > 0 {
			summary.CurrentStationSequence = &station
		}
		summary.CreatedAt = summary.CreatedAt.UTC()
		orders = append(orders, summary)
	}

	return orders, rows.Err()
}
