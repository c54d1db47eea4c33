// Package outboxrepo implements the transactional outbox: domain events are
// written in the transaction that produced them and relayed afterwards.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageDTO is one outbox row. A NULL published_at marks a pending message.
// Seq is assigned by the database on insert and fixes the relay order, also
// for events of one command that share a timestamp.
type MessageDTO struct {
	Seq           int64          `gorm:"primaryKey;autoIncrement;index:idx_outbox_pending,priority:2"`
	ID            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	EventName     string         `gorm:"type:varchar(64);not null"`
	AggregateType string         `gorm:"type:varchar(64);not null"`
	AggregateID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	OccurredAt    time.Time      `gorm:"not null"`
	Payload       datatypes.JSON `gorm:"not null"`
	PublishedAt   *time.Time     `gorm:"index:idx_outbox_pending,priority:1"`
	Attempts      int            `gorm:"not null;default:0"`
	LastError     string         `gorm:"type:text"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}
