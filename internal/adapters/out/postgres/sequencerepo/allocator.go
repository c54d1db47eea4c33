// Package sequencerepo allocates gap-tolerant monthly counters in a table.
package sequencerepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SequenceDTO struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null"`
}

func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormSequenceAllocator implements ports.SequenceAllocator. Every call runs
// in its own short transaction, so a number handed out to a command that
// later fails is not reused.
type GormSequenceAllocator struct {
	db *gorm.DB
}

func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// Next returns the next value of the named counter, starting at 1.
func (a *GormSequenceAllocator) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&SequenceDTO{Name: name}).Error; err != nil {
			return err
		}
		return tx.Raw(
			"UPDATE sequences SET value = value + 1 WHERE name = ? RETURNING value", name,
		).Scan(&value).Error
	})
	return value, err
}
