package commands

import (
	"errors"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/guard"
)

var ErrCreateInspectionCommandIsNotConstructed = errors.New(
	"CreateInspectionCommand must be created via NewCreateInspectionCommand constructor",
)

type CreateInspectionCommand struct {
	inspectionID      kernel.UUID
	productionOrderID kernel.UUID
	inspectorID       string

	guard guard.ConstructorGuard
}

func NewCreateInspectionCommand(
	inspectionID kernel.UUID,
	productionOrderID kernel.UUID,
	inspectorID string,
) (CreateInspectionCommand, error) {
	cmd := CreateInspectionCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setID(&cmd.inspectionID, "inspection id", inspectionID),
		setID(&cmd.productionOrderID, "production order id", productionOrderID),
		setRequired(&cmd.inspectorID, "inspector id", inspectorID),
	); err != nil {
		return CreateInspectionCommand{}, err
	}

	return cmd, nil
}

func (c CreateInspectionCommand) Validate() error {
	return c.guard.Validate(ErrCreateInspectionCommandIsNotConstructed)
}

func (c CreateInspectionCommand) InspectionID() kernel.UUID { return c.inspectionID }
func (c CreateInspectionCommand) ProductionOrderID() kernel.UUID { return c.productionOrderID }
func (c CreateInspectionCommand) InspectorID() string { return c.inspectorID }
