// Package reworkrepo maps the ReworkOrder aggregate to the rework_orders
// table.
package reworkrepo

import (
	"time"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/rework"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReworkOrderDTO struct {
	ID                     uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	ProductionOrderID      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	InspectionID           uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex"`
	Status                 int                         `gorm:"not null"`
	FailedItemDescriptions datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt              time.Time                   `gorm:"autoCreateTime:false"`
	CompletedAt            *time.Time
	Version                int `gorm:"not null"`
}

func (ReworkOrderDTO) TableName() string {
	return "rework_orders"
}

func fromDomain(r *rework.ReworkOrder) ReworkOrderDTO {
	dto := ReworkOrderDTO{
		ID:                     r.ID().Bytes(),
		ProductionOrderID:      r.ProductionOrderID().Bytes(),
		InspectionID:           r.InspectionID().Bytes(),
		Status:                 int(r.Status()),
		FailedItemDescriptions: datatypes.JSONSlice[string](r.FailedItemDescriptions()),
		CreatedAt:              r.CreatedAt(),
		Version:                r.Version(),
	}
	if dto.FailedItemDescriptions == nil {
		dto.FailedItemDescriptions = datatypes.JSONSlice[string]{}
	}
	if at, ok := r.CompletedAt(); ok {
		dto.CompletedAt = &at
	}
	return dto
}

func toDomain(dto ReworkOrderDTO) (*rework.ReworkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productionOrderID, err := kernel.UUIDFromBytes(dto.ProductionOrderID[:])
	if err != nil {
		return nil, err
	}
	inspectionID, err := kernel.UUIDFromBytes(dto.InspectionID[:])
	if err != nil {
		return nil, err
	}

	var completedAt time.Time
	if dto.CompletedAt != nil {
		completedAt = dto.CompletedAt.UTC()
	}

	return rework.RestoreReworkOrder(
		id,
		productionOrderID,
		inspectionID,
		rework.Status(dto.Status),
		[]string(dto.FailedItemDescriptions),
		dto.CreatedAt.UTC(),
		completedAt,
		dto.Version,
	)
}
