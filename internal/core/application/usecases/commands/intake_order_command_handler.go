package commands

import (
	"context"
	"time"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/production"
	"automfg/internal/core/domain/services"
	"automfg/internal/core/ports"
)

// IntakeOrderCommandHandler turns a placed commercial order into a
// production order. Delivery is at-least-once, so the handler is idempotent
// twice over: by notification id through the processed-event ledger, and by
// source order id through the production order repository.
//
// Example:
//
//	outcome, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if outcome == IntakeSkipped {
//	    // duplicate delivery, nothing changed
//	}
type IntakeOrderCommandHandler struct {
	uowFactory   IntakeUoWFactory
	bomExpander  services.BomExpander
	routing      ports.AssemblyRoutingGateway
	sequences    ports.SequenceAllocator
	vins         ports.VINGenerator
	facilityCode string
}

func NewIntakeOrderCommandHandler(
	uowFactory IntakeUoWFactory,
	bomExpander services.BomExpander,
	routing ports.AssemblyRoutingGateway,
	sequences ports.SequenceAllocator,
	vins ports.VINGenerator,
	facilityCode string,
) IntakeOrderCommandHandler {
	return IntakeOrderCommandHandler{
		uowFactory:   uowFactory,
		bomExpander:  bomExpander,
		routing:      routing,
		sequences:    sequences,
		vins:         vins,
		facilityCode: facilityCode,
	}
}

// Handle creates the production order and records the notification in the
// same transaction.
func (h IntakeOrderCommandHandler) Handle(ctx context.Context, cmd IntakeOrderCommand) (IntakeOutcome, error) {
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
	processed, err := ledger.IsProcessed(ctx, cmd.NotificationID(), IntakeConsumerName)
	if err != nil {
		return 0, err
	}
	if processed {
		return IntakeSkipped, nil
	}

	productionRepo := uow.ProductionOrderRepository()
	exists, err := productionRepo.ExistsBySourceOrderID(ctx, cmd.SourceOrderID())
	if err != nil {
		return 0, err
	}
	if exists {
		if err = ledger.RecordProcessed(ctx, cmd.NotificationID(), event.OrderPlacedName, IntakeConsumerName); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
		return IntakeSkipped, nil
	}

	po, err := h.newProductionOrder(ctx, cmd)
	if err != nil {
		return 0, err
	}

	if err = productionRepo.Add(ctx, po); err != nil {
		return 0, err
	}

	if err = ledger.RecordProcessed(ctx, cmd.NotificationID(), event.OrderPlacedName, IntakeConsumerName); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return IntakeApplied, nil
}

func (h IntakeOrderCommandHandler) newProductionOrder(
	ctx context.Context,
	cmd IntakeOrderCommand,
) (*production.ProductionOrder, error) {
	bom, err := h.bomExpander.Expand(ctx, cmd.ModelCode(), cmd.OptionCodes())
	if err != nil {
		return nil, err
	}

	templates, err := h.routing.TemplatesForModel(ctx, cmd.ModelCode())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sequence, err := h.sequences.Next(ctx, productionSequenceName(h.facilityCode, now))
	if err != nil {
		return nil, err
	}
	number, err := kernel.ProductionOrderNumberFor(h.facilityCode, now, sequence)
	if err != nil {
		return nil, err
	}

	vin, err := h.vins.Generate()
	if err != nil {
		return nil, err
	}

	return production.NewProductionOrder(kernel.NewUUID(), number, cmd.SourceOrderID(), vin, bom, templates)
}
