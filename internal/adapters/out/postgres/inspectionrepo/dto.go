// Package inspectionrepo maps the QualityInspection aggregate to the
// quality_inspections and inspection_items tables.
package inspectionrepo

import (
	"time"

	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type QualityInspectionDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductionOrderID uuid.UUID  `gorm:"type:uuid;not null;index"`
	VIN               string     `gorm:"column:vin;type:varchar(17);not null"`
	InspectorID       string     `gorm:"type:varchar(64);not null"`
	ReviewerID        string     `gorm:"type:varchar(64)"`
	Result            int        `gorm:"not null"`
	InspectedAt       *time.Time
	ReviewedAt        *time.Time
	CorrectsID        *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"autoCreateTime:false"`
	Version           int        `gorm:"not null"`

	Items []InspectionItemDTO `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE"`
}

func (QualityInspectionDTO) TableName() string {
	return "quality_inspections"
}

type InspectionItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InspectionID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position      int       `gorm:"not null"`
	Description   string    `gorm:"type:varchar(255);not null"`
	SafetyRelated bool      `gorm:"not null"`
	Status        int       `gorm:"not null"`
	Notes         string    `gorm:"type:text"`
}

func (InspectionItemDTO) TableName() string {
	return "inspection_items"
}

func fromDomain(qi *inspection.QualityInspection) QualityInspectionDTO {
	id := qi.ID().Bytes()

	dto := QualityInspectionDTO{
		ID:                id,
		ProductionOrderID: qi.ProductionOrderID().Bytes(),
		VIN:               qi.VIN().String(),
		InspectorID:       qi.InspectorID(),
		CreatedAt:         qi.CreatedAt(),
		Version:           qi.Version(),
	}
	if result, ok := qi.Result(); ok {
		dto.Result = int(result)
	}
	if reviewer, ok := qi.ReviewerID(); ok {
		dto.ReviewerID = reviewer
	}
	if at, ok := qi.InspectedAt(); ok {
		dto.InspectedAt = &at
	}
	if at, ok := qi.ReviewedAt(); ok {
		dto.ReviewedAt = &at
	}
	if corrects, ok := qi.Corrects(); ok {
		raw := corrects.Bytes()
		dto.CorrectsID = &raw
	}

	for i, item := range qi.Items() {
		dto.Items = append(dto.Items, InspectionItemDTO{
			ID:            item.ID().Bytes(),
			InspectionID:  id,
			Position:      i + 1,
			Description:   item.Description(),
			SafetyRelated: item.SafetyRelated(),
			Status:        int(item.Status()),
			Notes:         item.Notes(),
		})
	}
	return dto
}

func toDomain(dto QualityInspectionDTO) (*inspection.QualityInspection, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productionOrderID, err := kernel.UUIDFromBytes(dto.ProductionOrderID[:])
	if err != nil {
		return nil, err
	}
	vin, err := kernel.NewVIN(dto.VIN)
	if err != nil {
		return nil, err
	}

	var correctsID kernel.UUID
	if dto.CorrectsID != nil {
		if correctsID, err = kernel.UUIDFromBytes(dto.CorrectsID[:]); err != nil {
			return nil, err
		}
	}

	items := make([]*inspection.InspectionItem, 0, len(dto.Items))
	for _, row := range dto.Items {
		itemID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := inspection.RestoreInspectionItem(
			itemID, row.Description, row.SafetyRelated, inspection.ItemStatus(row.Status), row.Notes,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return inspection.RestoreQualityInspection(
		id,
		productionOrderID,
		vin,
		dto.InspectorID,
		dto.ReviewerID,
		inspection.Result(dto.Result),
		utc(dto.InspectedAt),
		utc(dto.ReviewedAt),
		dto.CreatedAt.UTC(),
		items,
		correctsID,
		dto.Version,
	)
}

func utc(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
