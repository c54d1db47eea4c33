package commands

import (
	"context"

	"automfg/internal/core/domain/model/inspection"
)

// CompleteInspectionCommandHandler evaluates all recorded items and returns
// the result. The vehicle is only released once a second person reviews it.
type CompleteInspectionCommandHandler struct {
	uowFactory InspectionUoWFactory
}

func NewCompleteInspectionCommandHandler(uowFactory InspectionUoWFactory) CompleteInspectionCommandHandler {
	return CompleteInspectionCommandHandler{uowFactory: uowFactory}
}

func (h CompleteInspectionCommandHandler) Handle(ctx context.Context, cmd CompleteInspectionCommand) (inspection.Result, error) {
	if err := cmd.Validate(); err != nil {
		return inspection.ResultUnknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return inspection.ResultUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inspectionRepo := uow.QualityInspectionRepository()
	qi, err := inspectionRepo.Get(ctx, cmd.InspectionID())
	if err != nil {
		return inspection.ResultUnknown, err
	}

	if err = qi.Complete(cmd.InspectorID()); err != nil {
		return inspection.ResultUnknown, err
	}

	if err = inspectionRepo.Update(ctx, qi); err != nil {
		return inspection.ResultUnknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return inspection.ResultUnknown, err
	}

	result, _ := qi.Result()
	return result, nil
}
