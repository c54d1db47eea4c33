// Package productionrepo maps the ProductionOrder aggregate to three tables:
// the order header, its frozen bill of materials and its assembly steps.
package productionrepo

import (
	"errors"
	"time"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/production"

	"github.com/google/uuid"
)

type ProductionOrderDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number                 string    `gorm:"type:varchar(24);not null;uniqueIndex"`
	SourceOrderID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	VIN                    string    `gorm:"column:vin;type:varchar(17);not null;uniqueIndex"`
	Status                 int       `gorm:"not null;index"`
	ProcessStatus          int       `gorm:"not null"`
	CurrentStationSequence int       `gorm:"not null"`
	BomSnapshotDate        time.Time `gorm:"not null"`
	CreatedAt              time.Time `gorm:"autoCreateTime:false"`
	Version                int       `gorm:"not null"`

	BomItems []BomLineItemDTO  `gorm:"foreignKey:ProductionOrderID;constraint:OnDelete:CASCADE"`
	Steps    []AssemblyStepDTO `gorm:"foreignKey:ProductionOrderID;constraint:OnDelete:CASCADE"`
}

func (ProductionOrderDTO) TableName() string {
	return "production_orders"
}

// BomLineItemDTO is one line of the bill of materials. Lines are written
// once and never updated.
type BomLineItemDTO struct {
	ProductionOrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position          int       `gorm:"primaryKey;autoIncrement:false"`
	PartNumber        string    `gorm:"type:varchar(64);not null"`
	Description       string    `gorm:"type:varchar(255);not null"`
	Quantity          int       `gorm:"not null"`
	UnitOfMeasure     string    `gorm:"type:varchar(16);not null"`
	Available         bool      `gorm:"not null"`
}

func (BomLineItemDTO) TableName() string {
	return "bom_line_items"
}

type AssemblyStepDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductionOrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position          int       `gorm:"not null"`
	StationCode       string    `gorm:"type:varchar(32);not null"`
	StationSequence   int       `gorm:"not null"`
	TaskDescription   string    `gorm:"type:varchar(255);not null"`
	StandardMinutes   int       `gorm:"not null"`
	Status            int       `gorm:"not null"`
	OperatorID        string    `gorm:"type:varchar(64)"`
	MaterialBatchID   string    `gorm:"type:varchar(64)"`
	ActualMinutes     int
	CompletedAt       *time.Time
}

func (AssemblyStepDTO) TableName() string {
	return "assembly_steps"
}

func fromDomain(po *production.ProductionOrder) ProductionOrderDTO {
	id := po.ID().Bytes()
	sequence, _ := po.CurrentStationSequence()

	bom := po.Bom()
	items := make([]BomLineItemDTO, 0, len(bom.Items()))
	for i, item := range bom.Items() {
		items = append(items, BomLineItemDTO{
			ProductionOrderID: id,
			Position:          i + 1,
			PartNumber:        item.PartNumber(),
			Description:       item.Description(),
			Quantity:          item.Quantity(),
			UnitOfMeasure:     item.UnitOfMeasure(),
			Available:         item.Available(),
		})
	}

	return ProductionOrderDTO{
		ID:                     id,
		Number:                 po.Number().String(),
		SourceOrderID:          po.SourceOrderID().Bytes(),
		VIN:                    po.VIN().String(),
		Status:                 int(po.Status()),
		ProcessStatus:          int(po.Process().Status()),
		CurrentStationSequence: sequence,
		BomSnapshotDate:        bom.SnapshotDate(),
		CreatedAt:              po.CreatedAt(),
		Version:                po.Version(),
		BomItems:               items,
		Steps:                  stepsFromDomain(id, po.Process().Steps()),
	}
}

func stepsFromDomain(productionOrderID uuid.UUID, steps []*production.AssemblyStep) []AssemblyStepDTO {
	out := make([]AssemblyStepDTO, 0, len(steps))
	for i, s := range steps {
		dto := AssemblyStepDTO{
			ID:                s.ID().Bytes(),
			ProductionOrderID: productionOrderID,
			Position:          i + 1,
			StationCode:       s.Station().Code(),
			StationSequence:   s.Station().Sequence(),
			TaskDescription:   s.TaskDescription(),
			StandardMinutes:   s.StandardMinutes(),
			Status:            int(s.Status()),
		}
		if completedAt, ok := s.CompletedAt(); ok {
			dto.OperatorID = s.OperatorID()
			dto.MaterialBatchID = s.MaterialBatchID().String()
			dto.ActualMinutes = s.ActualMinutes()
			dto.CompletedAt = &completedAt
		}
		out = append(out, dto)
	}
	return out
}

func toDomain(dto ProductionOrderDTO) (*production.ProductionOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sourceOrderID, err := kernel.UUIDFromBytes(dto.SourceOrderID[:])
	if err != nil {
		return nil, err
	}
	number, err := kernel.NewProductionOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}
	vin, err := kernel.NewVIN(dto.VIN)
	if err != nil {
		return nil, err
	}

	bom, err := bomToDomain(dto)
	if err != nil {
		return nil, err
	}

	steps := make([]*production.AssemblyStep, 0, len(dto.Steps))
	for _, s := range dto.Steps {
		step, stepErr := stepToDomain(s)
		if stepErr != nil {
			return nil, stepErr
		}
		steps = append(steps, step)
	}
	process, err := production.RestoreAssemblyProcess(production.ProcessStatus(dto.ProcessStatus), steps)
	if err != nil {
		return nil, err
	}

	return production.RestoreProductionOrder(
		id,
		number,
		sourceOrderID,
		vin,
		production.Status(dto.Status),
		bom,
		process,
		dto.CurrentStationSequence,
		dto.CreatedAt.UTC(),
		dto.Version,
	)
}

func bomToDomain(dto ProductionOrderDTO) (production.BomSnapshot, error) {
	items := make([]production.BomLineItem, 0, len(dto.BomItems))
	var problems []error
	for _, line := range dto.BomItems {
		item, err := production.NewBomLineItem(
			line.PartNumber, line.Description, line.Quantity, line.UnitOfMeasure, line.Available,
		)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(problems...); err != nil {
		return production.BomSnapshot{}, err
	}
	return production.NewBomSnapshot(items, dto.BomSnapshotDate.UTC())
}

func stepToDomain(dto AssemblyStepDTO) (*production.AssemblyStep, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	station, err := kernel.NewWorkStationID(dto.StationCode, dto.StationSequence)
	if err != nil {
		return nil, err
	}

	var completedAt time.Time
	if dto.CompletedAt != nil {
		completedAt = dto.CompletedAt.UTC()
	}

	return production.RestoreAssemblyStep(
		id,
		station,
		dto.TaskDescription,
		dto.StandardMinutes,
		production.StepStatus(dto.Status),
		dto.OperatorID,
		dto.MaterialBatchID,
		dto.ActualMinutes,
		completedAt,
	)
}
