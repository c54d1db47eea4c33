package commands

import (
	"context"
)

// CompleteReworkCommandHandler closes a rework order and returns the vehicle
// to ASSEMBLY_COMPLETED, ready for a new inspection.
type CompleteReworkCommandHandler struct {
	uowFactory UoWFactory
}

func NewCompleteReworkCommandHandler(uowFactory UoWFactory) CompleteReworkCommandHandler {
	return CompleteReworkCommandHandler{uowFactory: uowFactory}
}

func (h CompleteReworkCommandHandler) Handle(ctx context.Context, cmd CompleteReworkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reworkRepo := uow.ReworkOrderRepository()
	productionRepo := uow.ProductionOrderRepository()

	ro, err := reworkRepo.Get(ctx, cmd.ReworkOrderID())
	if err != nil {
		return err
	}

	if err = ro.Complete(); err != nil {
		return err
	}

	po, err := productionRepo.Get(ctx, ro.ProductionOrderID())
	if err != nil {
		return err
	}

	if err = po.StartRework(); err != nil {
		return err
	}
	if err = po.CompleteRework(); err != nil {
		return err
	}

	if err = reworkRepo.Update(ctx, ro); err != nil {
		return err
	}

	if err = productionRepo.Update(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
