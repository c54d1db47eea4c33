package queries

import (
	"errors"
	"time"

	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/guard"
)

var ErrGetInspectionQueryIsNotConstructed = errors.New("GetInspectionQuery must be created via NewGetInspectionQuery constructor")

// GetInspectionQuery reads a quality inspection with its checklist items.
type GetInspectionQuery struct {
	inspectionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetInspectionQuery(inspectionID kernel.UUID) (GetInspectionQuery, error) {
	if err := inspectionID.Validate(); err != nil {
		return GetInspectionQuery{}, err
	}
	return GetInspectionQuery{
		inspectionID: inspectionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetInspectionQuery) Validate() error {
	return q.guard.Validate(ErrGetInspectionQueryIsNotConstructed)
}

func (q GetInspectionQuery) InspectionID() kernel.UUID {
	return q.inspectionID
}

// GetInspectionQueryResponse is the read model of a quality inspection.
// Result is ResultUnknown until the inspection is completed.
type GetInspectionQueryResponse struct {
	ID                kernel.UUID
	ProductionOrderID kernel.UUID
	VIN               string
	InspectorID       string
	ReviewerID        string
	Result            inspection.Result
	InspectedAt       *time.Time
	ReviewedAt        *time.Time
	Items             []InspectionItemView
	Version           int
}

type InspectionItemView struct {
	ID            kernel.UUID
	Description   string
	SafetyRelated bool
	Status        inspection.ItemStatus
	Notes         string
}
