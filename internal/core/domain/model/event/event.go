package event

import (
	"time"

	"automfg/internal/core/domain/model/kernel"
)

// Name identifies the kind of a domain event. It is stored with every outbox
// message and used to route messages to consumers.
type Name string

const (
	OrderPlacedName              Name = "OrderPlaced"
	OrderChangedName             Name = "OrderChanged"
	OrderCancelledName           Name = "OrderCancelled"
	ProductionOrderScheduledName Name = "ProductionOrderScheduled"
	MaterialShortageName         Name = "MaterialShortage"
	ProductionStartedName        Name = "ProductionStarted"
	AssemblyOvertimeAlertName    Name = "AssemblyOvertimeAlert"
	AssemblyCompletedName        Name = "AssemblyCompleted"
	InspectionCreatedName        Name = "InspectionCreated"
	InspectionCompletedName      Name = "InspectionCompleted"
	VehicleCompletedName         Name = "VehicleCompleted"
	InspectionFailedName         Name = "InspectionFailed"
	InspectionReviewedName       Name = "InspectionReviewed"
	ReworkOrderCreatedName       Name = "ReworkOrderCreated"
	ReworkCompletedName          Name = "ReworkCompleted"
)

// Aggregate types reported by AggregateType.
const (
	OrderAggregate             = "Order"
	ProductionOrderAggregate   = "ProductionOrder"
	QualityInspectionAggregate = "QualityInspection"
	ReworkOrderAggregate       = "ReworkOrder"
)

func (n Name) String() string {
	return string(n)
}

// DomainEvent is a fact recorded by an aggregate. The set of implementations
// is closed: only types of this package satisfy it.
//
// Payload fields are exported and tagged for JSON. Identity and occurrence
// time live in unexported metadata and are persisted next to the payload.
type DomainEvent interface {
	ID() kernel.UUID
	Name() Name
	AggregateID() kernel.UUID
	AggregateType() string
	OccurredAt() time.Time

	sealed()
}

type metadata struct {
	id         kernel.UUID
	occurredAt time.Time
}

func newMetadata() metadata {
	return metadata{
		id:         kernel.NewUUID(),
		occurredAt: time.Now().UTC(),
	}
}

func (m metadata) ID() kernel.UUID {
	return m.id
}

func (m metadata) OccurredAt() time.Time {
	return m.occurredAt
}

func (metadata) sealed() {}
