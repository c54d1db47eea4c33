package commands

import (
	"errors"

	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/guard"
)

var ErrRecordInspectionItemResultCommandIsNotConstructed = errors.New(
	"RecordInspectionItemResultCommand must be created via NewRecordInspectionItemResultCommand constructor",
)

type RecordInspectionItemResultCommand struct {
	inspectionID kernel.UUID
	itemID       kernel.UUID
	status       inspection.ItemStatus
	notes        string

	guard guard.ConstructorGuard
}

// NewRecordInspectionItemResultCommand accepts the status as sent by the
// client, e.g. "PASSED" or "CONDITIONAL".
func NewRecordInspectionItemResultCommand(
	inspectionID kernel.UUID,
	itemID kernel.UUID,
	status string,
	notes string,
) (RecordInspectionItemResultCommand, error) {
	cmd := RecordInspectionItemResultCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	itemStatus, statusErr := inspection.ParseItemStatus(status)
	if err := errors.Join(
		setID(&cmd.inspectionID, "inspection id", inspectionID),
		setID(&cmd.itemID, "item id", itemID),
		statusErr,
	); err != nil {
		return RecordInspectionItemResultCommand{}, err
	}
	cmd.status = itemStatus

	return cmd, nil
}

func (c RecordInspectionItemResultCommand) Validate() error {
	return c.guard.Validate(ErrRecordInspectionItemResultCommandIsNotConstructed)
}

func (c RecordInspectionItemResultCommand) InspectionID() kernel.UUID { return c.inspectionID }
func (c RecordInspectionItemResultCommand) ItemID() kernel.UUID { return c.itemID }
func (c RecordInspectionItemResultCommand) Status() inspection.ItemStatus { return c.status }
func (c RecordInspectionItemResultCommand) Notes() string { return c.notes }
