package commands

import (
	"errors"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/guard"
)

var ErrCompleteReworkCommandIsNotConstructed = errors.New(
	"CompleteReworkCommand must be created via NewCompleteReworkCommand constructor",
)

type CompleteReworkCommand struct {
	reworkOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteReworkCommand(reworkOrderID kernel.UUID) (CompleteReworkCommand, error) {
	cmd := CompleteReworkCommand{guard: guard.NewConstructorGuard()}
	if err := setID(&cmd.reworkOrderID, "rework order id", reworkOrderID); err != nil {
		return CompleteReworkCommand{}, err
	}
	return cmd, nil
}

func (c CompleteReworkCommand) Validate() error {
	return c.guard.Validate(ErrCompleteReworkCommandIsNotConstructed)
}

func (c CompleteReworkCommand) ReworkOrderID() kernel.UUID {
	return c.reworkOrderID
}
