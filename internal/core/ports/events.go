package ports

import (
	"context"
	"time"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
)

// EventSource is implemented by every aggregate that records domain events.
type EventSource interface {
	DomainEvents() []event.DomainEvent
	ClearDomainEvents()
}

// DomainEventPublisher hands domain events over for delivery. Implementations
// bound to a transaction make the events visible only after commit.
type DomainEventPublisher interface {
	Publish(ctx context.Context, e event.DomainEvent) error
	PublishAll(ctx context.Context, events []event.DomainEvent) error
}

// Notification is a domain event as it travels between contexts: identity,
// routing data and the JSON payload.
type Notification struct {
	ID            kernel.UUID
	Name          event.Name
	AggregateType string
	AggregateID   kernel.UUID
	OccurredAt    time.Time
	Payload       []byte
}

// OutboxStore gives the relay access to events that were committed but not
// yet delivered.
type OutboxStore interface {
	// FetchPending returns up to limit undelivered notifications with fewer
	// than maxAttempts failed deliveries, oldest first.
	FetchPending(ctx context.Context, limit, maxAttempts int) ([]Notification, error)
	MarkPublished(ctx context.Context, id kernel.UUID) error
	MarkFailed(ctx context.Context, id kernel.UUID, cause error) error
}

// NotificationDispatcher delivers one notification to its consumers.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}
