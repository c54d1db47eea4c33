package commands

import (
	"errors"
	"strings"
	"time"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"
	"automfg/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a dealer placing a vehicle order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), "DEALER-7", "MODEL-S", "PEARL-WHITE",
//	    []string{"AUTOPILOT"}, time.Time{})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	ref, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	orderID           kernel.UUID
	dealerID          string
	modelCode         string
	colorCode         string
	optionCodes       []string
	requestedDelivery time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates identifiers and required codes. A zero
// requested delivery date means "as early as possible".
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	dealerID string,
	modelCode string,
	colorCode string,
	optionCodes []string,
	requestedDelivery time.Time,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		optionCodes:       append([]string(nil), optionCodes...),
		requestedDelivery: requestedDelivery,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.orderID, "order id", orderID),
		setRequired(&cmd.dealerID, "dealer id", dealerID),
		setRequired(&cmd.modelCode, "model code", modelCode),
		setRequired(&cmd.colorCode, "color code", colorCode),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c PlaceOrderCommand) DealerID() string { return c.dealerID }
func (c PlaceOrderCommand) ModelCode() string { return c.modelCode }
func (c PlaceOrderCommand) ColorCode() string { return c.colorCode }
func (c PlaceOrderCommand) OptionCodes() []string { return append([]string(nil), c.optionCodes...) }
func (c PlaceOrderCommand) RequestedDelivery() time.Time { return c.requestedDelivery }

// setRequired trims value and stores it in dst unless it is blank.
func setRequired(dst *string, paramName, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*dst = value
	return nil
}

func setID(dst *kernel.UUID, paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	*dst = id
	return nil
}
