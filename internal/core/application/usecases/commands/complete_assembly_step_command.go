package commands

import (
	"errors"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/guard"
)

var ErrCompleteAssemblyStepCommandIsNotConstructed = errors.New(
	"CompleteAssemblyStepCommand must be created via NewCompleteAssemblyStepCommand constructor",
)

// CompleteAssemblyStepCommand reports a finished assembly step. Operator,
// material batch (BR-08) and minutes are validated by the assembly process.
type CompleteAssemblyStepCommand struct {
	productionOrderID kernel.UUID
	stepID            kernel.UUID
	operatorID        string
	materialBatchID   string
	actualMinutes     int

	guard guard.ConstructorGuard
}

func NewCompleteAssemblyStepCommand(
	productionOrderID kernel.UUID,
	stepID kernel.UUID,
	operatorID string,
	materialBatchID string,
	actualMinutes int,
) (CompleteAssemblyStepCommand, error) {
	cmd := CompleteAssemblyStepCommand{
		operatorID:      operatorID,
		materialBatchID: materialBatchID,
		actualMinutes:   actualMinutes,
		guard:           guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		setID(&cmd.productionOrderID, "production order id", productionOrderID),
		setID(&cmd.stepID, "step id", stepID),
	); err != nil {
		return CompleteAssemblyStepCommand{}, err
	}
	return cmd, nil
}

func (c CompleteAssemblyStepCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAssemblyStepCommandIsNotConstructed)
}

func (c CompleteAssemblyStepCommand) ProductionOrderID() kernel.UUID { return c.productionOrderID }
func (c CompleteAssemblyStepCommand) StepID() kernel.UUID { return c.stepID }
func (c CompleteAssemblyStepCommand) OperatorID() string { return c.operatorID }
func (c CompleteAssemblyStepCommand) MaterialBatchID() string { return c.materialBatchID }
func (c CompleteAssemblyStepCommand) ActualMinutes() int { return c.actualMinutes }
