package commands

import (
	"context"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/order"
)

// SyncOrderStatusCommandHandler keeps the commercial order in step with
// manufacturing:
//
//	ProductionOrderScheduled -> MarkScheduled
//	ProductionStarted        -> MarkInProduction
//	VehicleCompleted         -> MarkCompleted
//
// Cancelled orders and orders already at or past the milestone are not
// advanced; the notification is recorded and skipped.
type SyncOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewSyncOrderStatusCommandHandler(uowFactory UoWFactory) SyncOrderStatusCommandHandler {
	return SyncOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h SyncOrderStatusCommandHandler) Handle(ctx context.Context, cmd SyncOrderStatusCommand) (IntakeOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ledger := uow.ProcessedEventLedger()
	processed, err := ledger.IsProcessed(ctx, cmd.NotificationID(), StatusSyncConsumerName)
	if err != nil {
		return 0, err
	}
	if processed {
		return IntakeSkipped, nil
	}

	po, err := uow.ProductionOrderRepository().Get(ctx, cmd.ProductionOrderID())
	if err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, po.SourceOrderID())
	if err != nil {
		return 0, err
	}

	outcome := IntakeSkipped
	if o.Status() != order.Cancelled && !o.Status().HasReached(targetStatus(cmd.EventName())) {
		if err = advance(o, cmd.EventName()); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		outcome = IntakeApplied
	}

	if err = ledger.RecordProcessed(ctx, cmd.NotificationID(), cmd.EventName(), StatusSyncConsumerName); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return outcome, nil
}

// targetStatus is the order status a synced event leads to. An order already
// there or further along has seen the event before, e.g. after a ledger write
// was lost.
func targetStatus(name event.Name) order.Status {
	switch name {
	case event.ProductionOrderScheduledName:
		return order.Scheduled
	case event.ProductionStartedName:
		return order.InProduction
	default:
		return order.Completed
	}
}

func advance(o *order.Order, name event.Name) error {
	switch name {
	case event.ProductionOrderScheduledName:
		return o.MarkScheduled()
	case event.ProductionStartedName:
		return o.MarkInProduction()
	default:
		return o.MarkCompleted()
	}
}
