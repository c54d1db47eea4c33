package event

import "automfg/internal/core/domain/model/kernel"

type InspectionCreated struct {
	metadata
	InspectionID      kernel.UUID `json:"inspectionId"`
	ProductionOrderID kernel.UUID `json:"productionOrderId"`
	VIN               string      `json:"vin"`
	InspectorID       string      `json:"inspectorId"`
}

func NewInspectionCreated(inspectionID, productionOrderID kernel.UUID, vin, inspectorID string) InspectionCreated {
	return InspectionCreated{
		metadata:          newMetadata(),
		InspectionID:      inspectionID,
		ProductionOrderID: productionOrderID,
		VIN:               vin,
		InspectorID:       inspectorID,
	}
}

func (InspectionCreated) Name() Name { return InspectionCreatedName }
func (e InspectionCreated) AggregateID() kernel.UUID { return e.InspectionID }
func (InspectionCreated) AggregateType() string { return QualityInspectionAggregate }

type InspectionCompleted struct {
	metadata
	InspectionID      kernel.UUID `json:"inspectionId"`
	ProductionOrderID kernel.UUID `json:"productionOrderId"`
	Result            string      `json:"result"`
}

func NewInspectionCompleted(inspectionID, productionOrderID kernel.UUID, result string) InspectionCompleted {
	return InspectionCompleted{
		metadata:          newMetadata(),
		InspectionID:      inspectionID,
		ProductionOrderID: productionOrderID,
		Result:            result,
	}
}

func (InspectionCompleted) Name() Name { return InspectionCompletedName }
func (e InspectionCompleted) AggregateID() kernel.UUID { return e.InspectionID }
func (InspectionCompleted) AggregateType() string { return QualityInspectionAggregate }

// VehicleCompleted is raised when a reviewed inspection releases the vehicle.
type VehicleCompleted struct {
	metadata
	InspectionID      kernel.UUID `json:"inspectionId"`
	ProductionOrderID kernel.UUID `json:"productionOrderId"`
	VIN               string      `json:"vin"`
}

func NewVehicleCompleted(inspectionID, productionOrderID kernel.UUID, vin string) VehicleCompleted {
	return VehicleCompleted{
		metadata:          newMetadata(),
		InspectionID:      inspectionID,
		ProductionOrderID: productionOrderID,
		VIN:               vin,
	}
}

func (VehicleCompleted) Name() Name { return VehicleCompletedName }
func (e VehicleCompleted) AggregateID() kernel.UUID { return e.InspectionID }
func (VehicleCompleted) AggregateType() string { return QualityInspectionAggregate }

type InspectionFailed struct {
	metadata
	InspectionID           kernel.UUID `json:"inspectionId"`
	ProductionOrderID      kernel.UUID `json:"productionOrderId"`
	VIN                    string      `json:"vin"`
	FailedItemDescriptions []string    `json:"failedItemDescriptions"`
}

func NewInspectionFailed(
	inspectionID, productionOrderID kernel.UUID,
	vin string,
	failedItemDescriptions []string,
) InspectionFailed {
	return InspectionFailed{
		metadata:               newMetadata(),
		InspectionID:           inspectionID,
		ProductionOrderID:      productionOrderID,
		VIN:                    vin,
		FailedItemDescriptions: cloneStrings(failedItemDescriptions),
	}
}

func (InspectionFailed) Name() Name { return InspectionFailedName }
func (e InspectionFailed) AggregateID() kernel.UUID { return e.InspectionID }
func (InspectionFailed) AggregateType() string { return QualityInspectionAggregate }

type InspectionReviewed struct {
	metadata
	InspectionID      kernel.UUID `json:"inspectionId"`
	ProductionOrderID kernel.UUID `json:"productionOrderId"`
	Result            string      `json:"result"`
	ReviewerID        string      `json:"reviewerId"`
}

func NewInspectionReviewed(inspectionID, productionOrderID kernel.UUID, result, reviewerID string) InspectionReviewed {
	return InspectionReviewed{
		metadata:          newMetadata(),
		InspectionID:      inspectionID,
		ProductionOrderID: productionOrderID,
		Result:            result,
		ReviewerID:        reviewerID,
	}
}

func (InspectionReviewed) Name() Name { return InspectionReviewedName }
func (e InspectionReviewed) AggregateID() kernel.UUID { return e.InspectionID }
func (InspectionReviewed) AggregateType() string { return QualityInspectionAggregate }
