// Package ledgerrepo stores which notifications each consumer has handled.
package ledgerrepo

import (
	"context"
	"time"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProcessedEventDTO is keyed by (event id, consumer).
type ProcessedEventDTO struct {
	EventID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Consumer    string    `gorm:"type:varchar(64);primaryKey"`
	EventType   string    `gorm:"type:varchar(64);not null"`
	ProcessedAt time.Time `gorm:"not null"`
}

func (ProcessedEventDTO) TableName() string {
	return "processed_events"
}

// GormProcessedEventLedger implements ports.ProcessedEventLedger. Bound to a
// transaction, its entries commit or roll back together with the changes
// they guard.
type GormProcessedEventLedger struct {
	db *gorm.DB
}

func NewGormProcessedEventLedger(db *gorm.DB) *GormProcessedEventLedger {
	return &GormProcessedEventLedger{db: db}
}

func (l *GormProcessedEventLedger) IsProcessed(ctx context.Context, eventID kernel.UUID, consumer string) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).
		Model(&ProcessedEventDTO{}).
		Where("event_id = ? AND consumer = ?", eventID.Bytes(), consumer).
		Count(&count).Error
	return count > 0, err
}

func (l *GormProcessedEventLedger) RecordProcessed(
	ctx context.Context,
	eventID kernel.UUID,
	eventType event.Name,
	consumer string,
) error {
	dto := ProcessedEventDTO{
		EventID:     eventID.Bytes(),
		Consumer:    consumer,
		EventType:   eventType.String(),
		ProcessedAt: time.Now().UTC(),
	}
	return l.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}
