package commands

import (
	"context"

	"automfg/internal/core/domain/model/production"
)

// CompleteAssemblyStepCommandHandler records a completed step and returns
// what the completion caused: overtime (BR-09), a finished station, or a
// finished assembly.
type CompleteAssemblyStepCommandHandler struct {
	uowFactory ProductionUoWFactory
}

func NewCompleteAssemblyStepCommandHandler(uowFactory ProductionUoWFactory) CompleteAssemblyStepCommandHandler {
	return CompleteAssemblyStepCommandHandler{uowFactory: uowFactory}
}

func (h CompleteAssemblyStepCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteAssemblyStepCommand,
) (production.StepCompletion, error) {
	if err := cmd.Validate(); err != nil {
		return production.StepCompletion{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return production.StepCompletion{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productionRepo := uow.ProductionOrderRepository()
	po, err := productionRepo.Get(ctx, cmd.ProductionOrderID())
	if err != nil {
		return production.StepCompletion{}, err
	}

	completion, err := po.CompleteAssemblyStep(cmd.StepID(), cmd.OperatorID(), cmd.MaterialBatchID(), cmd.ActualMinutes())
	if err != nil {
		return production.StepCompletion{}, err
	}

	if err = productionRepo.Update(ctx, po); err != nil {
		return production.StepCompletion{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return production.StepCompletion{}, err
	}

	return completion, nil
}
