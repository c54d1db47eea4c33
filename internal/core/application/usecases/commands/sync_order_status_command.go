package commands

import (
	"errors"
	"fmt"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"
	"automfg/internal/pkg/guard"
)

var ErrSyncOrderStatusCommandIsNotConstructed = errors.New(
	"SyncOrderStatusCommand must be created via NewSyncOrderStatusCommand constructor",
)

// SyncOrderStatusCommand advances a commercial order after a manufacturing
// event. Only the events listed in SyncedEvents are accepted.
type SyncOrderStatusCommand struct {
	notificationID    kernel.UUID
	eventName         event.Name
	productionOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// SyncedEvents lists the manufacturing events that move a commercial order.
func SyncedEvents() []event.Name {
	return []event.Name{
		event.ProductionOrderScheduledName,
		event.ProductionStartedName,
		event.VehicleCompletedName,
	}
}

func NewSyncOrderStatusCommand(
	notificationID kernel.UUID,
	eventName event.Name,
	productionOrderID kernel.UUID,
) (SyncOrderStatusCommand, error) {
	cmd := SyncOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setID(&cmd.notificationID, "notification id", notificationID),
		setID(&cmd.productionOrderID, "production order id", productionOrderID),
		cmd.setEventName(eventName),
	); err != nil {
		return SyncOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c SyncOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSyncOrderStatusCommandIsNotConstructed)
}

func (c SyncOrderStatusCommand) NotificationID() kernel.UUID { return c.notificationID }
func (c SyncOrderStatusCommand) EventName() event.Name { return c.eventName }
func (c SyncOrderStatusCommand) ProductionOrderID() kernel.UUID { return c.productionOrderID }

func (c *SyncOrderStatusCommand) setEventName(name event.Name) error {
	for _, synced := range SyncedEvents() {
		if name == synced {
			c.eventName = name
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("event name", fmt.Errorf("%q does not affect order status", name))
}
