package services

import (
	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/production"
	"automfg/internal/core/domain/model/rework"
	"automfg/internal/pkg/errs"
)

// InspectionOutcome carries the verdict of a reviewed inspection over to the
// production order. PASSED and CONDITIONAL_PASS release the vehicle; FAILED
// marks the production order failed and opens a rework order listing the
// failed checklist items.
type InspectionOutcome struct{}

func NewInspectionOutcome() InspectionOutcome {
	return InspectionOutcome{}
}

// Apply returns the new rework order, or nil when the vehicle was released.
// The inspection must be reviewed and belong to the production order.
func (InspectionOutcome) Apply(qi *inspection.QualityInspection, po *production.ProductionOrder) (*rework.ReworkOrder, error) {
	if err := qi.Validate(); err != nil {
		return nil, err
	}
	if err := po.Validate(); err != nil {
		return nil, err
	}
	if !qi.ProductionOrderID().IsEqual(po.ID()) {
		return nil, errs.NewValueIsInvalidError("production order id")
	}

	result, completed := qi.Result()
	if _, reviewed := qi.ReviewerID(); !completed || !reviewed {
		return nil, errs.NewStateConflictError("inspection review")
	}

	if result.ReleasesVehicle() {
		return nil, po.MarkInspectionPassed()
	}

	if err := po.MarkInspectionFailed(); err != nil {
		return nil, err
	}
	return rework.NewReworkOrder(kernel.NewUUID(), po.ID(), qi.ID(), qi.FailedItemDescriptions())
}
