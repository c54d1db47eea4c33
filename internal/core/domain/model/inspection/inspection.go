package inspection

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"
	"automfg/internal/pkg/guard"
)

// MaxConditionalNonSafetyItems is the most non-safety items that may be
// CONDITIONAL for the inspection to still pass conditionally (BR-11).
const MaxConditionalNonSafetyItems = 3

var (
	ErrQualityInspectionIsNotConstructed = errors.New("QualityInspection must be created via NewQualityInspection constructor")

	// ErrFourEyesViolated is reported when the inspector tries to review
	// their own inspection.
	ErrFourEyesViolated = errors.New("reviewer must differ from inspector (four-eyes principle, BR-12)")
)

// QualityInspection is the aggregate root of the final vehicle check. An
// inspector records a result per checklist item and completes the
// inspection; a second person reviews it, which releases the vehicle or
// sends it to rework.
//
// Result evaluation on Complete, first match wins:
//  1. a safety related item FAILED: Failed (BR-10)
//  2. a non-safety item FAILED: Failed
//  3. more than MaxConditionalNonSafetyItems non-safety items CONDITIONAL: Failed (BR-11)
//  4. any item CONDITIONAL: ConditionalPass
//  5. otherwise Passed
type QualityInspection struct {
	id                kernel.UUID
	productionOrderID kernel.UUID
	vin               kernel.VIN
	inspectorID       string
	reviewerID        string
	result            Result
	inspectedAt       time.Time
	reviewedAt        time.Time
	createdAt         time.Time
	items             []*InspectionItem
	correctsID        kernel.UUID
	version           int

	events event.Buffer
	guard  guard.ConstructorGuard
}

// NewQualityInspection creates an inspection with one pending item per
// checklist line and records InspectionCreated.
func NewQualityInspection(
	id kernel.UUID,
	productionOrderID kernel.UUID,
	vin kernel.VIN,
	inspectorID string,
	checklist []ChecklistItemTemplate,
) (*QualityInspection, error) {
	qi := &QualityInspection{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		qi.setIdentity(id, productionOrderID, vin, inspectorID),
		qi.setChecklist(checklist),
	); err != nil {
		return nil, err
	}

	qi.events.Record(event.NewInspectionCreated(qi.id, qi.productionOrderID, qi.vin.String(), qi.inspectorID))
	return qi, nil
}

// NewReinspection creates an inspection that corrects a previous one, e.g.
// after rework.
func NewReinspection(
	id kernel.UUID,
	productionOrderID kernel.UUID,
	vin kernel.VIN,
	inspectorID string,
	checklist []ChecklistItemTemplate,
	previousInspectionID kernel.UUID,
) (*QualityInspection, error) {
	if err := previousInspectionID.Validate(); err != nil {
		return nil, err
	}
	qi, err := NewQualityInspection(id, productionOrderID, vin, inspectorID, checklist)
	if err != nil {
		return nil, err
	}
	qi.correctsID = previousInspectionID
	return qi, nil
}

// RestoreQualityInspection reconstructs an inspection from persistent
// storage. ResultUnknown means not completed, an empty reviewer means not
// reviewed, a zero correctsID means no correction link.
func RestoreQualityInspection(
	id kernel.UUID,
	productionOrderID kernel.UUID,
	vin kernel.VIN,
	inspectorID string,
	reviewerID string,
	result Result,
	inspectedAt time.Time,
	reviewedAt time.Time,
	createdAt time.Time,
	items []*InspectionItem,
	correctsID kernel.UUID,
	version int,
) (*QualityInspection, error) {
	qi := &QualityInspection{
		reviewerID:  reviewerID,
		result:      result,
		inspectedAt: inspectedAt,
		reviewedAt:  reviewedAt,
		createdAt:   createdAt,
		correctsID:  correctsID,
		version:     version,
		guard:       guard.NewConstructorGuard(),
	}

	var resultErr error
	if result != ResultUnknown {
		resultErr = result.Validate()
	}
	var itemsErr error
	if len(items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("inspection items")
	}

	if err := errors.Join(
		qi.setIdentity(id, productionOrderID, vin, inspectorID),
		resultErr,
		itemsErr,
	); err != nil {
		return nil, err
	}
	qi.items = append([]*InspectionItem(nil), items...)

	return qi, nil
}

func (q *QualityInspection) Validate() error {
	if q == nil {
		return ErrQualityInspectionIsNotConstructed
	}
	return q.guard.Validate(ErrQualityInspectionIsNotConstructed)
}

func (q *QualityInspection) ID() kernel.UUID { return q.id }
func (q *QualityInspection) ProductionOrderID() kernel.UUID { return q.productionOrderID }
func (q *QualityInspection) VIN() kernel.VIN { return q.vin }
func (q *QualityInspection) InspectorID() string { return q.inspectorID }
func (q *QualityInspection) CreatedAt() time.Time { return q.createdAt }
func (q *QualityInspection) Version() int { return q.version }
func (q *QualityInspection) DomainEvents() []event.DomainEvent { return q.events.Events() }
func (q *QualityInspection) ClearDomainEvents() { q.events.Clear() }
func (q *QualityInspection) IncrementVersion() { q.version++ }

// Result returns the verdict; ok is false until the inspection is completed.
func (q *QualityInspection) Result() (Result, bool) {
	return q.result, q.result != ResultUnknown
}

// ReviewerID returns the reviewer; ok is false until the inspection is reviewed.
func (q *QualityInspection) ReviewerID() (string, bool) {
	return q.reviewerID, q.reviewerID != ""
}

func (q *QualityInspection) InspectedAt() (time.Time, bool) {
	return q.inspectedAt, q.result != ResultUnknown
}

func (q *QualityInspection) ReviewedAt() (time.Time, bool) {
	return q.reviewedAt, q.reviewerID != ""
}

// Corrects returns the inspection this one re-checks, if any.
func (q *QualityInspection) Corrects() (kernel.UUID, bool) {
	return q.correctsID, q.correctsID.Validate() == nil
}

func (q *QualityInspection) Items() []*InspectionItem {
	out := make([]*InspectionItem, len(q.items))
	copy(out, q.items)
	return out
}

// FailedItemDescriptions lists the descriptions of failed items in
// checklist order.
func (q *QualityInspection) FailedItemDescriptions() []string {
	var out []string
	for _, item := range q.items {
		if item.status == ItemFailed {
			out = append(out, item.description)
		}
	}
	return out
}

// RecordItemResult sets the outcome of one item.
//
// Errors:
//   - ObjectNotFoundError when the item does not belong to the inspection
//   - StateConflictError when the item already has a result
//   - ValidationError when status is PENDING or undefined
func (q *QualityInspection) RecordItemResult(itemID kernel.UUID, status ItemStatus, notes string) error {
	for _, item := range q.items {
		if item.id.IsEqual(itemID) {
			return item.recordResult(status, notes)
		}
	}
	return errs.NewObjectNotFoundError("inspection item", itemID.String())
}

// Complete evaluates the items and records InspectionCompleted. Only the
// assigned inspector may complete, and only once every item has a result.
func (q *QualityInspection) Complete(inspectorID string) error {
	if q.result != ResultUnknown {
		return errs.NewStateConflictErrorWithCause(
			"quality inspection", fmt.Errorf("inspection is already completed with %s", q.result),
		)
	}
	for _, item := range q.items {
		if item.IsPending() {
			return errs.NewStateConflictErrorWithCause(
				"quality inspection", errors.New("not all items have been recorded"),
			)
		}
	}
	if strings.TrimSpace(inspectorID) != q.inspectorID {
		return errs.NewValueIsInvalidErrorWithCause(
			"inspector id", errors.New("does not match the assigned inspector"),
		)
	}

	q.result = q.evaluate()
	q.inspectedAt = time.Now().UTC()

	q.events.Record(event.NewInspectionCompleted(q.id, q.productionOrderID, q.result.String()))
	return nil
}

// Review signs off a completed inspection. It records VehicleCompleted for
// releasing results, InspectionFailed with the failed item descriptions for
// Failed, and InspectionReviewed in every case.
func (q *QualityInspection) Review(reviewerID string) error {
	if q.result == ResultUnknown {
		return errs.NewStateConflictErrorWithCause(
			"quality inspection", errors.New("inspection has not been completed yet"),
		)
	}
	if q.reviewerID != "" {
		return errs.NewStateConflictErrorWithCause(
			"quality inspection", fmt.Errorf("inspection was already reviewed by %s", q.reviewerID),
		)
	}
	reviewerID = strings.TrimSpace(reviewerID)
	if reviewerID == "" {
		return errs.NewValueIsRequiredError("reviewer id")
	}
	if reviewerID == q.inspectorID {
		return errs.NewValueIsInvalidErrorWithCause("reviewer id", ErrFourEyesViolated)
	}

	q.reviewerID = reviewerID
	q.reviewedAt = time.Now().UTC()

	if q.result.ReleasesVehicle() {
		q.events.Record(event.NewVehicleCompleted(q.id, q.productionOrderID, q.vin.String()))
	} else {
		q.events.Record(event.NewInspectionFailed(q.id, q.productionOrderID, q.vin.String(), q.FailedItemDescriptions()))
	}
	q.events.Record(event.NewInspectionReviewed(q.id, q.productionOrderID, q.result.String(), q.reviewerID))
	return nil
}

func (q *QualityInspection) evaluate() Result {
	var nonSafetyFailed bool
	var conditional, nonSafetyConditional int

	for _, item := range q.items {
		switch item.status {
		case ItemFailed:
			if item.safetyRelated {
				return Failed
			}
			nonSafetyFailed = true
		case ItemConditional:
			conditional++
			if !item.safetyRelated {
				nonSafetyConditional++
			}
		}
	}

	switch {
	case nonSafetyFailed:
		return Failed
	case nonSafetyConditional > MaxConditionalNonSafetyItems:
		return Failed
	case conditional > 0:
		return ConditionalPass
	default:
		return Passed
	}
}

func (q *QualityInspection) setIdentity(
	id kernel.UUID,
	productionOrderID kernel.UUID,
	vin kernel.VIN,
	inspectorID string,
) error {
	inspectorID = strings.TrimSpace(inspectorID)
	var inspectorErr error
	if inspectorID == "" {
		inspectorErr = errs.NewValueIsRequiredError("inspector id")
	}
	if err := errors.Join(id.Validate(), productionOrderID.Validate(), vin.Validate(), inspectorErr); err != nil {
		return err
	}
	q.id = id
	q.productionOrderID = productionOrderID
	q.vin = vin
	q.inspectorID = inspectorID
	return nil
}

func (q *QualityInspection) setChecklist(checklist []ChecklistItemTemplate) error {
	if len(checklist) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("checklist", errors.New("at least one checklist item is required"))
	}
	items := make([]*InspectionItem, 0, len(checklist))
	for _, template := range checklist {
		item, err := newInspectionItem(template)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	q.items = items
	return nil
}
