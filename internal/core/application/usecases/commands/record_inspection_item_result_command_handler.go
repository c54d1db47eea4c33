package commands

import (
	"context"
)

type RecordInspectionItemResultCommandHandler struct {
	uowFactory InspectionUoWFactory
}

func NewRecordInspectionItemResultCommandHandler(uowFactory InspectionUoWFactory) RecordInspectionItemResultCommandHandler {
	return RecordInspectionItemResultCommandHandler{uowFactory: uowFactory}
}

func (h RecordInspectionItemResultCommandHandler) Handle(ctx context.Context, cmd RecordInspectionItemResultCommand) error {
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

	inspectionRepo := uow.QualityInspectionRepository()
	qi, err := inspectionRepo.Get(ctx, cmd.InspectionID())
	if err != nil {
		return err
	}

	if err = qi.RecordItemResult(cmd.ItemID(), cmd.Status(), cmd.Notes()); err != nil {
		return err
	}

	if err = inspectionRepo.Update(ctx, qi); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
