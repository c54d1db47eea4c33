package queries

import (
	"context"
	"database/sql"
	"time"

	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetInspectionQueryHandler struct {
	db *gorm.DB
}

func NewGetInspectionQueryHandler(db *gorm.DB) GetInspectionQueryHandler {
	return GetInspectionQueryHandler{db: db}
}

func (h GetInspectionQueryHandler) Handle(ctx context.Context, query GetInspectionQuery) (GetInspectionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInspectionQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.InspectionID()

	resp, found, err := h.header(db, id)
	if err != nil {
		return GetInspectionQueryResponse{}, err
	}
	if !found {
		return GetInspectionQueryResponse{}, errs.NewObjectNotFoundError("quality inspection", id.String())
	}

	if resp.Items, err = h.items(db, id); err != nil {
		return GetInspectionQueryResponse{}, err
	}
	return resp, nil
}

func (h GetInspectionQueryHandler) header(db *gorm.DB, id kernel.UUID) (GetInspectionQueryResponse, bool, error) {
	rows, err := db.Raw(`
		SELECT
			id,
			production_order_id,
			vin,
			inspector_id,
			reviewer_id,
			result,
			inspected_at,
			reviewed_at,
			version
		FROM quality_inspections
		WHERE id = ?
	`, id.Bytes()).Rows()
	if err != nil {
		return GetInspectionQueryResponse{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return GetInspectionQueryResponse{}, false, rows.Err()
	}

	var (
		resp              GetInspectionQueryResponse
		rawID             uuid.UUID
		productionOrderID uuid.UUID
		reviewerID        sql.NullString
		result            int
		inspectedAt       sql.NullTime
		reviewedAt        sql.NullTime
	)
	err = rows.Scan(
		&rawID,
		&productionOrderID,
		&resp.VIN,
		&resp.InspectorID,
		&reviewerID,
		&result,
		&inspectedAt,
		&reviewedAt,
		&resp.Version,
	)
	if err != nil {
		return GetInspectionQueryResponse{}, false, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(rawID[:]); err != nil {
		return GetInspectionQueryResponse{}, false, err
	}
	if resp.ProductionOrderID, err = kernel.UUIDFromBytes(productionOrderID[:]); err != nil {
		return GetInspectionQueryResponse{}, false, err
	}
	resp.ReviewerID = reviewerID.String
	resp.Result = inspection.Result(result)
	resp.InspectedAt = utcOrNil(inspectedAt)
	resp.ReviewedAt = utcOrNil(reviewedAt)
	return resp, true, rows.Err()
}

func (h GetInspectionQueryHandler) items(db *gorm.DB, id kernel.UUID) ([]InspectionItemView, error) {
	rows, err := db.Raw(`
		SELECT id, description, safety_related, status, notes
		FROM inspection_items
		WHERE inspection_id = ?
		ORDER BY position
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]InspectionItemView, 0)
	for rows.Next() {
		var (
			item   InspectionItemView
			rawID  uuid.UUID
			status int
			notes  sql.NullString
		)
		if err = rows.Scan(&rawID, &item.Description, &item.SafetyRelated, &status, &notes); err != nil {
			return nil, err
		}
		if item.ID, err = kernel.UUIDFromBytes(rawID[:]); err != nil {
			return nil, err
		}
		item.Status = inspection.ItemStatus(status)
		item.Notes = notes.String
		items = append(items, item)
	}

	return items, rows.Err()
}

func utcOrNil(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	at := t.Time.UTC()
	return &at
}
