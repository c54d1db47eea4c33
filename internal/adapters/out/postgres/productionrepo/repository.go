package productionrepo

import (
	"context"
	"errors"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/production"
	"automfg/internal/core/ports"
	"automfg/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductionOrderRepository implements ports.ProductionOrderRepository
// using GORM.
type GormProductionOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate ports.EventSource)
}

func NewGormProductionOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormProductionOrderRepository {
	return &GormProductionOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the production order with its bill of materials and steps.
func (r *GormProductionOrderRepository) Add(ctx context.Context, aggregate *production.ProductionOrder) error {
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

// Update writes the header under optimistic locking and the progress of
// every step. The bill of materials is immutable and never rewritten.
func (r *GormProductionOrderRepository) Update(ctx context.Context, aggregate *production.ProductionOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++
	db := r.db.WithContext(ctx)

	result := db.Model(&ProductionOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("status", "process_status", "current_station_sequence", "version").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("production order " + aggregate.ID().String())
	}

	for i := range dto.Steps {
		step := dto.Steps[i]
		if err := db.Model(&AssemblyStepDTO{}).
			Where("id = ?", step.ID).
			Select("status", "operator_id", "material_batch_id", "actual_minutes", "completed_at").
			Updates(&step).Error; err != nil {
			return err
		}
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*production.ProductionOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "production order", id.String(), "id = ?", id.Bytes())
}

func (r *GormProductionOrderRepository) ExistsBySourceOrderID(ctx context.Context, sourceOrderID kernel.UUID) (bool, error) {
	if err := sourceOrderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProductionOrderDTO{}).
		Where("source_order_id = ?", sourceOrderID.Bytes()).
		Count(&count).Error
	return count > 0, err
}

func (r *GormProductionOrderRepository) first(
	ctx context.Context,
	param, id string,
	query string,
	args ...any,
) (*production.ProductionOrder, error) {
	var dto ProductionOrderDTO
	err := r.db.WithContext(ctx).
		Preload("BomItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, err
	}

	return toDomain(dto)
}
