// Package orderrepo maps the Order aggregate to the orders table.
package orderrepo

import (
	"time"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the row of a commercial order. Dealer, model and status share
// an index that backs the active order limit check.
type OrderDTO struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Number            string                      `gorm:"type:varchar(20);not null;uniqueIndex"`
	DealerID          string                      `gorm:"type:varchar(64);not null;index:idx_orders_dealer_model_status,priority:1"`
	ModelCode         string                      `gorm:"type:varchar(64);not null;index:idx_orders_dealer_model_status,priority:2"`
	ColorCode         string                      `gorm:"type:varchar(64);not null"`
	OptionCodes       datatypes.JSONSlice[string] `gorm:"not null"`
	Status            int                         `gorm:"not null;index:idx_orders_dealer_model_status,priority:3"`
	EstimatedDelivery time.Time                   `gorm:"not null"`
	PriceQuote        decimal.Decimal             `gorm:"type:numeric(14,2);not null"`
	ChangeCount       int                         `gorm:"not null"`
	OrderDate         time.Time                   `gorm:"not null"`
	CreatedAt         time.Time                   `gorm:"autoCreateTime:false"`
	UpdatedAt         time.Time                   `gorm:"autoUpdateTime:false"`
	Version           int                         `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                o.ID().Bytes(),
		Number:            o.Number().String(),
		DealerID:          o.DealerID(),
		ModelCode:         o.ModelCode(),
		ColorCode:         o.ColorCode(),
		OptionCodes:       datatypes.JSONSlice[string](o.OptionCodes()),
		Status:            int(o.Status()),
		EstimatedDelivery: o.EstimatedDelivery(),
		PriceQuote:        o.PriceQuote(),
		ChangeCount:       o.ChangeCount(),
		OrderDate:         o.OrderDate(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
		Version:           o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.NewOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		number,
		dto.DealerID,
		dto.ModelCode,
		dto.ColorCode,
		[]string(dto.OptionCodes),
		order.Status(dto.Status),
		dto.EstimatedDelivery.UTC(),
		dto.PriceQuote,
		dto.ChangeCount,
		dto.OrderDate.UTC(),
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		dto.Version,
	)
}
