package commands

import (
	"errors"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/guard"
)

var ErrCompleteInspectionCommandIsNotConstructed = errors.New(
	"CompleteInspectionCommand must be created via NewCompleteInspectionCommand constructor",
)

// CompleteInspectionCommand evaluates an inspection. InspectorID must be the
// inspector the inspection was opened for.
type CompleteInspectionCommand struct {
	inspectionID kernel.UUID
	inspectorID  string

	guard guard.ConstructorGuard
}

func NewCompleteInspectionCommand(inspectionID kernel.UUID, inspectorID string) (CompleteInspectionCommand, error) {
	cmd := CompleteInspectionCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setID(&cmd.inspectionID, "inspection id", inspectionID),
		setRequired(&cmd.inspectorID, "inspector id", inspectorID),
	); err != nil {
		return CompleteInspectionCommand{}, err
	}

	return cmd, nil
}

func (c CompleteInspectionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteInspectionCommandIsNotConstructed)
}

func (c CompleteInspectionCommand) InspectionID() kernel.UUID { return c.inspectionID }
func (c CompleteInspectionCommand) InspectorID() string { return c.inspectorID }
