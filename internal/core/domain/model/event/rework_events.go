package event

import "automfg/internal/core/domain/model/kernel"

type ReworkOrderCreated struct {
	metadata
	ReworkOrderID     kernel.UUID `json:"reworkOrderId"`
	ProductionOrderID kernel.UUID `json:"productionOrderId"`
	InspectionID      kernel.UUID `json:"inspectionId"`
}

func NewReworkOrderCreated(reworkOrderID, productionOrderID, inspectionID kernel.UUID) ReworkOrderCreated {
	return ReworkOrderCreated{
		metadata:          newMetadata(),
		ReworkOrderID:     reworkOrderID,
		ProductionOrderID: productionOrderID,
		InspectionID:      inspectionID,
	}
}

func (ReworkOrderCreated) Name() Name { return ReworkOrderCreatedName }
func (e ReworkOrderCreated) AggregateID() kernel.UUID { return e.ReworkOrderID }
func (ReworkOrderCreated) AggregateType() string { return ReworkOrderAggregate }

type ReworkCompleted struct {
	metadata
	ReworkOrderID     kernel.UUID `json:"reworkOrderId"`
	ProductionOrderID kernel.UUID `json:"productionOrderId"`
}

func NewReworkCompleted(reworkOrderID, productionOrderID kernel.UUID) ReworkCompleted {
	return ReworkCompleted{
		metadata:          newMetadata(),
		ReworkOrderID:     reworkOrderID,
		ProductionOrderID: productionOrderID,
	}
}

func (ReworkCompleted) Name() Name { return ReworkCompletedName }
func (e ReworkCompleted) AggregateID() kernel.UUID { return e.ReworkOrderID }
func (ReworkCompleted) AggregateType() string { return ReworkOrderAggregate }
