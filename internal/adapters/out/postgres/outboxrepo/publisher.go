package outboxrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"automfg/internal/core/domain/model/event"

	"gorm.io/gorm"
)

// Publisher implements ports.DomainEventPublisher by inserting events into
// the outbox through the given connection, usually an open transaction.
type Publisher struct {
	db *gorm.DB
}

func NewPublisher(db *gorm.DB) *Publisher {
	return &Publisher{db: db}
}

func (p *Publisher) Publish(ctx context.Context, e event.DomainEvent) error {
	return p.PublishAll(ctx, []event.DomainEvent{e})
}

// PublishAll writes the events in one batch. The database numbers the rows
// in the order given, which is the order the relay delivers them.
func (p *Publisher) PublishAll(ctx context.Context, events []event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]MessageDTO, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", e.Name(), err)
		}
		rows = append(rows, MessageDTO{
			ID:            e.ID().Bytes(),
			EventName:     e.Name().String(),
			AggregateType: e.AggregateType(),
			AggregateID:   e.AggregateID().Bytes(),
			OccurredAt:    e.OccurredAt(),
			Payload:       payload,
		})
	}

	return p.db.WithContext(ctx).Create(&rows).Error
}
