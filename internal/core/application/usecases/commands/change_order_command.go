package commands

import (
	"errors"
	"strings"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/guard"
)

var ErrChangeOrderCommandIsNotConstructed = errors.New(
	"ChangeOrderCommand must be created via NewChangeOrderCommand constructor",
)

// ChangeOrderCommand changes the configuration of an order. Blank model or
// color and nil options keep the current value; a different model replaces
// the order (BR-14).
type ChangeOrderCommand struct {
	orderID     kernel.UUID
	modelCode   string
	colorCode   string
	optionCodes []string

	guard guard.ConstructorGuard
}

func NewChangeOrderCommand(
	orderID kernel.UUID,
	modelCode string,
	colorCode string,
	optionCodes []string,
) (ChangeOrderCommand, error) {
	cmd := ChangeOrderCommand{
		modelCode: strings.TrimSpace(modelCode),
		colorCode: strings.TrimSpace(colorCode),
		guard:     guard.NewConstructorGuard(),
	}
	if optionCodes != nil {
		cmd.optionCodes = append([]string{}, optionCodes...)
	}

	if err := setID(&cmd.orderID, "order id", orderID); err != nil {
		return ChangeOrderCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderCommandIsNotConstructed)
}

func (c ChangeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ModelCode returns the requested model, blank when unchanged.
func (c ChangeOrderCommand) ModelCode() string {
	return c.modelCode
}

// ColorCode returns the requested color, blank when unchanged.
func (c ChangeOrderCommand) ColorCode() string {
	return c.colorCode
}

// OptionCodes returns the requested options and whether they were given.
func (c ChangeOrderCommand) OptionCodes() ([]string, bool) {
	if c.optionCodes == nil {
		return nil, false
	}
	return append([]string{}, c.optionCodes...), true
}
