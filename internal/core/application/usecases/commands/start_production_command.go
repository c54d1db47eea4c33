package commands

import (
	"errors"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/guard"
)

var ErrStartProductionCommandIsNotConstructed = errors.New(
	"StartProductionCommand must be created via NewStartProductionCommand constructor",
)

// StartProductionCommand puts a scheduled production order on the line.
// Operator and workstation are checked by the production order itself.
type StartProductionCommand struct {
	productionOrderID kernel.UUID
	operatorID        string
	workstationCode   string

	guard guard.ConstructorGuard
}

func NewStartProductionCommand(
	productionOrderID kernel.UUID,
	operatorID string,
	workstationCode string,
) (StartProductionCommand, error) {
	cmd := StartProductionCommand{
		operatorID:      operatorID,
		workstationCode: workstationCode,
		guard:           guard.NewConstructorGuard(),
	}
	if err := setID(&cmd.productionOrderID, "production order id", productionOrderID); err != nil {
		return StartProductionCommand{}, err
	}
	return cmd, nil
}

func (c StartProductionCommand) Validate() error {
	return c.guard.Validate(ErrStartProductionCommandIsNotConstructed)
}

func (c StartProductionCommand) ProductionOrderID() kernel.UUID { return c.productionOrderID }
func (c StartProductionCommand) OperatorID() string { return c.operatorID }
func (c StartProductionCommand) WorkstationCode() string { return c.workstationCode }
