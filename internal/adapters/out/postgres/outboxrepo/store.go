package outboxrepo

import (
	"context"
	"time"
	"unicode/utf8"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/ports"

	"gorm.io/gorm"
)

const maxErrorLength = 1024

// Store implements ports.OutboxStore for the relay.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FetchPending returns up to limit undelivered messages in insertion order.
func (s *Store) FetchPending(ctx context.Context, limit, maxAttempts int) ([]ports.Notification, error) {
	var rows []MessageDTO
	err := s.db.WithContext(ctx).
		Where("published_at IS NULL AND attempts < ?", maxAttempts).
		Order("seq").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ports.Notification, 0, len(rows))
	for _, row := range rows {
		n, convErr := toNotification(row)
		if convErr != nil {
			return nil, convErr
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *Store) MarkPublished(ctx context.Context, id kernel.UUID) error {
	return s.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id.Bytes()).
		Update("published_at", time.Now().UTC()).Error
}

// MarkFailed counts a failed delivery. Messages that reach the relay's max
// attempts are no longer fetched.
func (s *Store) MarkFailed(ctx context.Context, id kernel.UUID, cause error) error {
	message := ""
	if cause != nil {
		message = cause.Error()
	}
	message = truncate(message, maxErrorLength)

	return s.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumns(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": message,
		}).Error
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func toNotification(row MessageDTO) (ports.Notification, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return ports.Notification{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(row.AggregateID[:])
	if err != nil {
		return ports.Notification{}, err
	}

	return ports.Notification{
		ID:            id,
		Name:          event.Name(row.EventName),
		AggregateType: row.AggregateType,
		AggregateID:   aggregateID,
		OccurredAt:    row.OccurredAt.UTC(),
		Payload:       []byte(row.Payload),
	}, nil
}
