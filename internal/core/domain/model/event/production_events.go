package event

import "automfg/internal/core/domain/model/kernel"

type ProductionOrderScheduled struct {
	metadata
	ProductionOrderID kernel.UUID `json:"productionOrderId"`
	OrderNumber       string      `json:"orderNumber"`
	SourceOrderID     kernel.UUID `json:"sourceOrderId"`
	VIN               string      `json:"vin"`
}

func NewProductionOrderScheduled(
	productionOrderID kernel.UUID,
	orderNumber string,
	sourceOrderID kernel.UUID,
	vin string,
) ProductionOrderScheduled {
	return ProductionOrderScheduled{
		metadata:          newMetadata(),
		ProductionOrderID: productionOrderID,
		OrderNumber:       orderNumber,
		SourceOrderID:     sourceOrderID,
		VIN:               vin,
	}
}

func (ProductionOrderScheduled) Name() Name { return ProductionOrderScheduledName }
func (e ProductionOrderScheduled) AggregateID() kernel.UUID { return e.ProductionOrderID }
func (ProductionOrderScheduled) AggregateType() string { return ProductionOrderAggregate }

type MaterialShortage struct {
	metadata
	ProductionOrderID kernel.UUID `json:"productionOrderId"`
	SourceOrderID     kernel.UUID `json:"sourceOrderId"`
	MissingParts      []string    `json:"missingParts"`
}

func NewMaterialShortage(productionOrderID, sourceOrderID kernel.UUID, missingParts []string) MaterialShortage {
	return MaterialShortage{
		metadata:          newMetadata(),
		ProductionOrderID: productionOrderID,
		SourceOrderID:     sourceOrderID,
		MissingParts:      cloneStrings(missingParts),
	}
}

func (MaterialShortage) Name() Name { return MaterialShortageName }
func (e MaterialShortage) AggregateID() kernel.UUID { return e.ProductionOrderID }
func (MaterialShortage) AggregateType() string { return ProductionOrderAggregate }

type ProductionStarted struct {
	metadata
	ProductionOrderID kernel.UUID `json:"productionOrderId"`
	VIN               string      `json:"vin"`
	OperatorID        string      `json:"operatorId"`
}

func NewProductionStarted(productionOrderID kernel.UUID, vin, operatorID string) ProductionStarted {
	return ProductionStarted{
		metadata:          newMetadata(),
		ProductionOrderID: productionOrderID,
		VIN:               vin,
		OperatorID:        operatorID,
	}
}

func (ProductionStarted) Name() Name { return ProductionStartedName }
func (e ProductionStarted) AggregateID() kernel.UUID { return e.ProductionOrderID }
func (ProductionStarted) AggregateType() string { return ProductionOrderAggregate }

// AssemblyOvertimeAlert is raised when a step took more than one and a half
// times its standard duration.
type AssemblyOvertimeAlert struct {
	metadata
	ProductionOrderID kernel.UUID `json:"productionOrderId"`
	StepDescription   string      `json:"stepDescription"`
	StandardMinutes   int         `json:"standardMinutes"`
	ActualMinutes     int         `json:"actualMinutes"`
}

func NewAssemblyOvertimeAlert(
	productionOrderID kernel.UUID,
	stepDescription string,
	standardMinutes, actualMinutes int,
) AssemblyOvertimeAlert {
	return AssemblyOvertimeAlert{
		metadata:          newMetadata(),
		ProductionOrderID: productionOrderID,
		StepDescription:   stepDescription,
		StandardMinutes:   standardMinutes,
		ActualMinutes:     actualMinutes,
	}
}

func (AssemblyOvertimeAlert) Name() Name { return AssemblyOvertimeAlertName }
func (e AssemblyOvertimeAlert) AggregateID() kernel.UUID { return e.ProductionOrderID }
func (AssemblyOvertimeAlert) AggregateType() string { return ProductionOrderAggregate }

type AssemblyCompleted struct {
	metadata
	ProductionOrderID kernel.UUID `json:"productionOrderId"`
	VIN               string      `json:"vin"`
}

func NewAssemblyCompleted(productionOrderID kernel.UUID, vin string) AssemblyCompleted {
	return AssemblyCompleted{
		metadata:          newMetadata(),
		ProductionOrderID: productionOrderID,
		VIN:               vin,
	}
}

func (AssemblyCompleted) Name() Name { return AssemblyCompletedName }
func (e AssemblyCompleted) AggregateID() kernel.UUID { return e.ProductionOrderID }
func (AssemblyCompleted) AggregateType() string { return ProductionOrderAggregate }
