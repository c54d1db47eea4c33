package commands

import (
	"context"

	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/services"
)

// ReviewResult tells the caller how a review ended. ReworkOrderID is only
// set when the inspection failed.
type ReviewResult struct {
	Result        inspection.Result
	ReworkOrderID kernel.UUID
	ReworkCreated bool
}

// ReviewInspectionCommandHandler reviews an inspection and applies its
// outcome to the production order in one transaction. Aggregates are saved
// in a fixed order: inspection, production order, rework order.
//
// Example:
//
//	cmd, _ := NewReviewInspectionCommand(inspectionID, "QC-LEAD-2")
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    // reviewer equals inspector (BR-12)
//	case err != nil:
//	    return err
//	case res.ReworkCreated:
//	    log.Printf("rework %s opened", res.ReworkOrderID)
//	}
type ReviewInspectionCommandHandler struct {
	uowFactory UoWFactory
	outcome    services.InspectionOutcome
}

func NewReviewInspectionCommandHandler(uowFactory UoWFactory) ReviewInspectionCommandHandler {
	return ReviewInspectionCommandHandler{
		uowFactory: uowFactory,
		outcome:    services.NewInspectionOutcome(),
	}
}

func (h ReviewInspectionCommandHandler) Handle(ctx context.Context, cmd ReviewInspectionCommand) (ReviewResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReviewResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReviewResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inspectionRepo := uow.QualityInspectionRepository()
	productionRepo := uow.ProductionOrderRepository()

	qi, err := inspectionRepo.Get(ctx, cmd.InspectionID())
	if err != nil {
		return ReviewResult{}, err
	}

	if err = qi.Review(cmd.ReviewerID()); err != nil {
		return ReviewResult{}, err
	}

	po, err := productionRepo.Get(ctx, qi.ProductionOrderID())
	if err != nil {
		return ReviewResult{}, err
	}

	reworkOrder, err := h.outcome.Apply(qi, po)
	if err != nil {
		return ReviewResult{}, err
	}

	if err = inspectionRepo.Update(ctx, qi); err != nil {
		return ReviewResult{}, err
	}

	if err = productionRepo.Update(ctx, po); err != nil {
		return ReviewResult{}, err
	}

	result, _ := qi.Result()
	res := ReviewResult{Result: result}

	if reworkOrder != nil {
		if err = uow.ReworkOrderRepository().Add(ctx, reworkOrder); err != nil {
			return ReviewResult{}, err
		}
		res.ReworkOrderID = reworkOrder.ID()
		res.ReworkCreated = true
	}

	if err = uow.Commit(ctx); err != nil {
		return ReviewResult{}, err
	}

	return res, nil
}
