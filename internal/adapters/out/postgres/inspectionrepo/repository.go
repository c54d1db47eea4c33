package inspectionrepo

import (
	"context"
	"errors"

	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/ports"
	"automfg/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormQualityInspectionRepository implements
// ports.QualityInspectionRepository using GORM.
type GormQualityInspectionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate ports.EventSource)
}

func NewGormQualityInspectionRepository(db *gorm.DB, tracker aggregateTracker) *GormQualityInspectionRepository {
	return &GormQualityInspectionRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormQualityInspectionRepository) Add(ctx context.Context, aggregate *inspection.QualityInspection) error {
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

// Update writes the inspection header under optimistic locking together with
// the item results.
func (r *GormQualityInspectionRepository) Update(ctx context.Context, aggregate *inspection.QualityInspection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++
	db := r.db.WithContext(ctx)

	result := db.Model(&QualityInspectionDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("reviewer_id", "result", "inspected_at", "reviewed_at", "version").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("quality inspection " + aggregate.ID().String())
	}

	for i := range dto.Items {
		item := dto.Items[i]
		if err := db.Model(&InspectionItemDTO{}).
			Where("id = ?", item.ID).
			Select("status", "notes").
			Updates(&item).Error; err != nil {
			return err
		}
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormQualityInspectionRepository) HasOpenInspection(ctx context.Context, productionOrderID kernel.UUID) (bool, error) {
	if err := productionOrderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&QualityInspectionDTO{}).
		Where("production_order_id = ? AND reviewed_at IS NULL", productionOrderID.Bytes()).
		Count(&count).Error
	return count > 0, err
}

func (r *GormQualityInspectionRepository) Get(ctx context.Context, id kernel.UUID) (*inspection.QualityInspection, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QualityInspectionDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quality inspection", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
