package commands

import (
	"errors"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/guard"
)

var ErrIntakeOrderCommandIsNotConstructed = errors.New(
	"IntakeOrderCommand must be created via NewIntakeOrderCommand constructor",
)

// IntakeOrderCommand carries an OrderPlaced notification into the production
// context. NotificationID is the id of the delivered event and drives
// idempotency.
type IntakeOrderCommand struct {
	notificationID kernel.UUID
	sourceOrderID  kernel.UUID
	modelCode      string
	optionCodes    []string

	guard guard.ConstructorGuard
}

func NewIntakeOrderCommand(
	notificationID kernel.UUID,
	sourceOrderID kernel.UUID,
	modelCode string,
	optionCodes []string,
) (IntakeOrderCommand, error) {
	cmd := IntakeOrderCommand{
		optionCodes: append([]string(nil), optionCodes...),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.notificationID, "notification id", notificationID),
		setID(&cmd.sourceOrderID, "source order id", sourceOrderID),
		setRequired(&cmd.modelCode, "model code", modelCode),
	); err != nil {
		return IntakeOrderCommand{}, err
	}

	return cmd, nil
}

func (c IntakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrIntakeOrderCommandIsNotConstructed)
}

func (c IntakeOrderCommand) NotificationID() kernel.UUID { return c.notificationID }
func (c IntakeOrderCommand) SourceOrderID() kernel.UUID { return c.sourceOrderID }
func (c IntakeOrderCommand) ModelCode() string { return c.modelCode }
func (c IntakeOrderCommand) OptionCodes() []string { return append([]string(nil), c.optionCodes...) }
