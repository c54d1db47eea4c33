package queries

import (
	"context"
	"database/sql"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/production"
	"automfg/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetProductionOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetProductionOrderQueryHandler(db *gorm.DB) GetProductionOrderQueryHandler {
	return GetProductionOrderQueryHandler{db: db}
}

// Handle reads the header, the missing bill of materials parts and the steps
// in station order.
func (h GetProductionOrderQueryHandler) Handle(
	ctx context.Context,
	query GetProductionOrderQuery,
) (GetProductionOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductionOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.ProductionOrderID()

	resp, found, err := h.header(db, id)
	if err != nil {
		return GetProductionOrderQueryResponse{}, err
	}
	if !found {
		return GetProductionOrderQueryResponse{}, errs.NewObjectNotFoundError("production order", id.String())
	}

	if resp.MissingParts, err = h.missingParts(db, id); err != nil {
		return GetProductionOrderQueryResponse{}, err
	}
	if resp.Steps, err = h.steps(db, id); err != nil {
		return GetProductionOrderQueryResponse{}, err
	}
	return resp, nil
}

func (h GetProductionOrderQueryHandler) header(db *gorm.DB, id kernel.UUID) (GetProductionOrderQueryResponse, bool, error) {
	rows, err := db.Raw(`
		SELECT
			id,
			number,
			source_order_id,
			vin,
			status,
			current_station_sequence,
			version
		FROM production_orders
		WHERE id = ?
	`, id.Bytes()).Rows()
	if err != nil {
		return GetProductionOrderQueryResponse{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return GetProductionOrderQueryResponse{}, false, rows.Err()
	}

	var (
		resp          GetProductionOrderQueryResponse
		rawID         uuid.UUID
		sourceOrderID uuid.UUID
		status        int
		station       int
	)
	if err = rows.Scan(&rawID, &resp.Number, &sourceOrderID, &resp.VIN, &status, &station, &resp.Version); err != nil {
		return GetProductionOrderQueryResponse{}, false, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(rawID[:]); err != nil {
		return GetProductionOrderQueryResponse{}, false, err
	}
	if resp.SourceOrderID, err = kernel.UUIDFromBytes(sourceOrderID[:]); err != nil {
		return GetProductionOrderQueryResponse{}, false, err
	}
	resp.Status = production.Status(status)
	if station > 0 {
		resp.CurrentStationSequence = &station
	}
	return resp, true, rows.Err()
}

func (h GetProductionOrderQueryHandler) missingParts(db *gorm.DB, id kernel.UUID) ([]string, error) {
	parts := make([]string, 0)
	err := db.Raw(`
		SELECT part_number
		FROM bom_line_items
		WHERE production_order_id = ? AND available = ?
		ORDER BY position
	`, id.Bytes(), false).Scan(&parts).Error
	return parts, err
}

func (h GetProductionOrderQueryHandler) steps(db *gorm.DB, id kernel.UUID) ([]AssemblyStepView, error) {
	rows, err := db.Raw(`
		SELECT
			id,
			station_code,
			station_sequence,
			task_description,
			standard_minutes,
			status,
			operator_id,
			material_batch_id,
			actual_minutes,
			completed_at
		FROM assembly_steps
		WHERE production_order_id = ?
		ORDER BY position
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	steps := make([]AssemblyStepView, 0)
	for rows.Next() {
		var (
			step        AssemblyStepView
			rawID       uuid.UUID
			status      int
			operatorID  sql.NullString
			batchID     sql.NullString
			minutes     sql.NullInt64
			completedAt sql.NullTime
		)
		err = rows.Scan(
			&rawID,
			&step.StationCode,
			&step.StationSequence,
			&step.TaskDescription,
			&step.StandardMinutes,
			&status,
			&operatorID,
			&batchID,
			&minutes,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		if step.ID, err = kernel.UUIDFromBytes(rawID[:]); err != nil {
			return nil, err
		}
		step.Status = production.StepStatus(status)
		step.OperatorID = operatorID.String
		step.MaterialBatchID = batchID.String
		step.ActualMinutes = int(minutes.Int64)
		if completedAt.Valid {
			at := completedAt.Time.UTC()
			step.CompletedAt = &at
		}
		steps = append(steps, step)
	}

	return steps, rows.Err()
}
