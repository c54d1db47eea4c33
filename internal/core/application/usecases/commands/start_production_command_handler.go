package commands

import (
	"context"
)

type StartProductionCommandHandler struct {
	uowFactory ProductionUoWFactory
}

func NewStartProductionCommandHandler(uowFactory ProductionUoWFactory) StartProductionCommandHandler {
	return StartProductionCommandHandler{uowFactory: uowFactory}
}

// Handle starts assembly at station 1. The commercial order follows through
// the ProductionStarted event.
func (h StartProductionCommandHandler) Handle(ctx context.Context, cmd StartProductionCommand) error {
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

	productionRepo := uow.ProductionOrderRepository()
	po, err := productionRepo.Get(ctx, cmd.ProductionOrderID())
	if err != nil {
		return err
	}

	if err = po.StartProduction(cmd.OperatorID(), cmd.WorkstationCode()); err != nil {
		return err
	}

	if err = productionRepo.Update(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
