// Package rework implements the ReworkOrder aggregate: the repair work
// ordered for a vehicle that failed its inspection review.
package rework

import (
	"errors"
	"fmt"
	"time"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"
	"automfg/internal/pkg/guard"
)

// Status of a rework order. A rework order is created open and completed
// once; there is no way back.
//
//	Created ──> Completed
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the open status in which the repair is carried out.
	Created

	// Completed is final. Completing the rework returns the production order
	// to assembly completed for another inspection.
	Completed
)

func (s Status) String() string {
	switch s {
	case Created:
		return "CREATED"
	case Completed:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) Validate() error {
	if s != Created && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

var ErrReworkOrderIsNotConstructed = errors.New("ReworkOrder must be created via NewReworkOrder constructor")

// ReworkOrder lists what failed in an inspection so it can be repaired. The
// failed item descriptions never change after creation.
type ReworkOrder struct {
	id                     kernel.UUID
	productionOrderID      kernel.UUID
	inspectionID           kernel.UUID
	status                 Status
	failedItemDescriptions []string
	createdAt              time.Time
	completedAt            time.Time
	version                int

	events event.Buffer
	guard  guard.ConstructorGuard
}

// NewReworkOrder creates a rework order in Created status and records
// ReworkOrderCreated.
func NewReworkOrder(
	id kernel.UUID,
	productionOrderID kernel.UUID,
	inspectionID kernel.UUID,
	failedItemDescriptions []string,
) (*ReworkOrder, error) {
	if err := errors.Join(id.Validate(), productionOrderID.Validate(), inspectionID.Validate()); err != nil {
		return nil, err
	}

	r := &ReworkOrder{
		id:                     id,
		productionOrderID:      productionOrderID,
		inspectionID:           inspectionID,
		status:                 Created,
		failedItemDescriptions: append([]string(nil), failedItemDescriptions...),
		createdAt:              time.Now().UTC(),
		guard:                  guard.NewConstructorGuard(),
	}
	r.events.Record(event.NewReworkOrderCreated(r.id, r.productionOrderID, r.inspectionID))
	return r, nil
}

// RestoreReworkOrder reconstructs a rework order from persistent storage.
// No events are recorded.
func RestoreReworkOrder(
	id kernel.UUID,
	productionOrderID kernel.UUID,
	inspectionID kernel.UUID,
	status Status,
	failedItemDescriptions []string,
	createdAt time.Time,
	completedAt time.Time,
	version int,
) (*ReworkOrder, error) {
	if err := errors.Join(
		id.Validate(),
		productionOrderID.Validate(),
		inspectionID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &ReworkOrder{
		id:                     id,
		productionOrderID:      productionOrderID,
		inspectionID:           inspectionID,
		status:                 status,
		failedItemDescriptions: append([]string(nil), failedItemDescriptions...),
		createdAt:              createdAt,
		completedAt:            completedAt,
		version:                version,
		guard:                  guard.NewConstructorGuard(),
	}, nil
}

func (r *ReworkOrder) Validate() error {
	if r == nil {
		return ErrReworkOrderIsNotConstructed
	}
	return r.guard.Validate(ErrReworkOrderIsNotConstructed)
}

func (r *ReworkOrder) ID() kernel.UUID { return r.id }
func (r *ReworkOrder) ProductionOrderID() kernel.UUID { return r.productionOrderID }
func (r *ReworkOrder) InspectionID() kernel.UUID { return r.inspectionID }
func (r *ReworkOrder) Status() Status { return r.status }
func (r *ReworkOrder) CreatedAt() time.Time { return r.createdAt }
func (r *ReworkOrder) Version() int { return r.version }
func (r *ReworkOrder) DomainEvents() []event.DomainEvent { return r.events.Events() }
func (r *ReworkOrder) ClearDomainEvents() { r.events.Clear() }
func (r *ReworkOrder) IncrementVersion() { r.version++ }

// FailedItemDescriptions returns a copy of the checklist items that failed,
// in checklist order.
func (r *ReworkOrder) FailedItemDescriptions() []string {
	return append([]string(nil), r.failedItemDescriptions...)
}

func (r *ReworkOrder) CompletedAt() (time.Time, bool) {
	return r.completedAt, r.status == Completed
}

// Complete closes the rework order and records ReworkCompleted. Completing a
// rework order twice yields a StateConflictError.
func (r *ReworkOrder) Complete() error {
	if r.status != Created {
		return errs.NewStateConflictErrorWithCause(
			"rework order", fmt.Errorf("rework order %s is already %s", r.id, r.status),
		)
	}
	r.status = Completed
	r.completedAt = time.Now().UTC()
	r.events.Record(event.NewReworkCompleted(r.id, r.productionOrderID))
	return nil
}
