package commands

import (
	"context"
	"errors"
	"fmt"

	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/production"
	"automfg/internal/core/ports"
	"automfg/internal/pkg/errs"
)

var (
	ErrEmptyChecklist        = errors.New("no inspection checklist is defined for the model")
	ErrInspectionAlreadyOpen = errors.New("an inspection of the production order awaits review")
)

// CreateInspectionCommandHandler opens the final inspection of an assembled
// vehicle with the checklist of its model.
type CreateInspectionCommandHandler struct {
	uowFactory UoWFactory
	checklists ports.InspectionChecklistGateway
}

func NewCreateInspectionCommandHandler(
	uowFactory UoWFactory,
	checklists ports.InspectionChecklistGateway,
) CreateInspectionCommandHandler {
	return CreateInspectionCommandHandler{
		uowFactory: uowFactory,
		checklists: checklists,
	}
}

// Handle requires the production order in ASSEMBLY_COMPLETED status with no
// other inspection awaiting review.
func (h CreateInspectionCommandHandler) Handle(ctx context.Context, cmd CreateInspectionCommand) error {
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

	po, err := uow.ProductionOrderRepository().Get(ctx, cmd.ProductionOrderID())
	if err != nil {
		return err
	}
	if po.Status() != production.AssemblyCompleted {
		return errs.NewStateConflictErrorWithCause(
			"production order status",
			fmt.Errorf("inspection requires %s, got %s", production.AssemblyCompleted, po.Status()),
		)
	}

	inspectionRepo := uow.QualityInspectionRepository()
	open, err := inspectionRepo.HasOpenInspection(ctx, po.ID())
	if err != nil {
		return err
	}
	if open {
		return errs.NewStateConflictErrorWithCause("quality inspection", fmt.Errorf("%s: %w", po.Number(), ErrInspectionAlreadyOpen))
	}

	o, err := uow.OrderRepository().Get(ctx, po.SourceOrderID())
	if err != nil {
		return err
	}

	checklist, err := h.checklists.ChecklistForModel(ctx, o.ModelCode())
	if err != nil {
		return err
	}
	if len(checklist) == 0 {
		return errs.NewStateConflictErrorWithCause("inspection checklist", fmt.Errorf("%s: %w", o.ModelCode(), ErrEmptyChecklist))
	}

	qi, err := inspection.NewQualityInspection(cmd.InspectionID(), po.ID(), po.VIN(), cmd.InspectorID(), checklist)
	if err != nil {
		return err
	}

	if err = inspectionRepo.Add(ctx, qi); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
