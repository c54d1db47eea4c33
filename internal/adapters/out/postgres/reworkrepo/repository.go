package reworkrepo

import (
	"context"
	"errors"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/rework"
	"automfg/internal/core/ports"
	"automfg/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReworkOrderRepository implements ports.ReworkOrderRepository using GORM.
type GormReworkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate ports.EventSource)
}

func NewGormReworkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormReworkOrderRepository {
	return &GormReworkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormReworkOrderRepository) Add(ctx context.Context, aggregate *rework.ReworkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReworkOrderRepository) Update(ctx context.Context, aggregate *rework.ReworkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++
	result := r.db.WithContext(ctx).
		Model(&ReworkOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("status", "completed_at", "version").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("rework order " + aggregate.ID().String())
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReworkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*rework.ReworkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReworkOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rework order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
