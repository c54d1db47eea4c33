package queries

import (
	"errors"
	"time"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/production"
	"automfg/internal/pkg/guard"
)

var ErrGetProductionOrderQueryIsNotConstructed = errors.New(
	"GetProductionOrderQuery must be created via NewGetProductionOrderQuery constructor",
)

// GetProductionOrderQuery reads a production order with its assembly steps,
// the shop floor view of one vehicle.
type GetProductionOrderQuery struct {
	productionOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductionOrderQuery(productionOrderID kernel.UUID) (GetProductionOrderQuery, error) {
	if err := productionOrderID.Validate(); err != nil {
		return GetProductionOrderQuery{}, err
	}
	return GetProductionOrderQuery{
		productionOrderID: productionOrderID,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (q GetProductionOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionOrderQueryIsNotConstructed)
}

func (q GetProductionOrderQuery) ProductionOrderID() kernel.UUID {
	return q.productionOrderID
}

// GetProductionOrderQueryResponse is the read model of a production order.
// CurrentStationSequence is nil until production starts.
type GetProductionOrderQueryResponse struct {
	ID                     kernel.UUID
	Number                 string
	SourceOrderID          kernel.UUID
	VIN                    string
	Status                 production.Status
	CurrentStationSequence *int
	MissingParts           []string
	Steps                  []AssemblyStepView
	Version                int
}

type AssemblyStepView struct {
	ID              kernel.UUID
	StationCode     string
	StationSequence int
	TaskDescription string
	StandardMinutes int
	Status          production.StepStatus
	OperatorID      string
	MaterialBatchID string
	ActualMinutes   int
	CompletedAt     *time.Time
}
