package event

import "automfg/internal/core/domain/model/kernel"

type OrderPlaced struct {
	metadata
	OrderID     kernel.UUID `json:"orderId"`
	OrderNumber string      `json:"orderNumber"`
	DealerID    string      `json:"dealerId"`
	ModelCode   string      `json:"modelCode"`
	ColorCode   string      `json:"colorCode"`
	OptionCodes []string    `json:"optionCodes"`
}

func NewOrderPlaced(
	orderID kernel.UUID,
	orderNumber, dealerID, modelCode, colorCode string,
	optionCodes []string,
) OrderPlaced {
	return OrderPlaced{
		metadata:    newMetadata(),
		OrderID:     orderID,
		OrderNumber: orderNumber,
		DealerID:    dealerID,
		ModelCode:   modelCode,
		ColorCode:   colorCode,
		OptionCodes: cloneStrings(optionCodes),
	}
}

func (OrderPlaced) Name() Name { return OrderPlacedName }
func (e OrderPlaced) AggregateID() kernel.UUID { return e.OrderID }
func (OrderPlaced) AggregateType() string { return OrderAggregate }

type OrderChanged struct {
	metadata
	OrderID     kernel.UUID `json:"orderId"`
	ColorCode   string      `json:"colorCode"`
	OptionCodes []string    `json:"optionCodes"`
}

func NewOrderChanged(orderID kernel.UUID, colorCode string, optionCodes []string) OrderChanged {
	return OrderChanged{
		metadata:    newMetadata(),
		OrderID:     orderID,
		ColorCode:   colorCode,
		OptionCodes: cloneStrings(optionCodes),
	}
}

func (OrderChanged) Name() Name { return OrderChangedName }
func (e OrderChanged) AggregateID() kernel.UUID { return e.OrderID }
func (OrderChanged) AggregateType() string { return OrderAggregate }

type OrderCancelled struct {
	metadata
	OrderID     kernel.UUID `json:"orderId"`
	OrderNumber string      `json:"orderNumber"`
}

func NewOrderCancelled(orderID kernel.UUID, orderNumber string) OrderCancelled {
	return OrderCancelled{
		metadata:    newMetadata(),
		OrderID:     orderID,
		OrderNumber: orderNumber,
	}
}

func (OrderCancelled) Name() Name { return OrderCancelledName }
func (e OrderCancelled) AggregateID() kernel.UUID { return e.OrderID }
func (OrderCancelled) AggregateType() string { return OrderAggregate }

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
