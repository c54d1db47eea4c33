package inspection

import (
	"errors"
	"fmt"
	"strings"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"
)

// ChecklistItemTemplate is one line of a model's inspection checklist.
type ChecklistItemTemplate struct {
	Description   string
	SafetyRelated bool
}

// InspectionItem is one checked aspect of the vehicle. Its status is set
// exactly once.
type InspectionItem struct {
	id            kernel.UUID
	description   string
	safetyRelated bool
	status        ItemStatus
	notes         string
}

func newInspectionItem(template ChecklistItemTemplate) (*InspectionItem, error) {
	if strings.TrimSpace(template.Description) == "" {
		return nil, errs.NewValueIsRequiredError("checklist item description")
	}
	return &InspectionItem{
		id:            kernel.NewUUID(),
		description:   template.Description,
		safetyRelated: template.SafetyRelated,
		status:        ItemPending,
	}, nil
}

// RestoreInspectionItem reconstructs an item from persistent storage.
func RestoreInspectionItem(
	id kernel.UUID,
	description string,
	safetyRelated bool,
	status ItemStatus,
	notes string,
) (*InspectionItem, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	item, err := newInspectionItem(ChecklistItemTemplate{Description: description, SafetyRelated: safetyRelated})
	if err != nil {
		return nil, err
	}
	item.id = id
	item.status = status
	item.notes = notes
	return item, nil
}

func (i *InspectionItem) ID() kernel.UUID { return i.id }
func (i *InspectionItem) Description() string { return i.description }
func (i *InspectionItem) SafetyRelated() bool { return i.safetyRelated }
func (i *InspectionItem) Status() ItemStatus { return i.status }
func (i *InspectionItem) Notes() string { return i.notes }
func (i *InspectionItem) IsPending() bool { return i.status == ItemPending }

func (i *InspectionItem) recordResult(status ItemStatus, notes string) error {
	if i.status != ItemPending {
		return errs.NewStateConflictErrorWithCause(
			"inspection item",
			fmt.Errorf("item %s already has result %s", i.id, i.status),
		)
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if status == ItemPending {
		return errs.NewValueIsInvalidErrorWithCause("item status", errors.New("a result cannot be PENDING"))
	}
	i.status = status
	i.notes = notes
	return nil
}
