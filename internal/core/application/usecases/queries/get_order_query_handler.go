package queries

import (
	"context"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/order"
	"automfg/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads orders with plain SQL, bypassing the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			dealer_id,
			model_code,
			color_code,
			option_codes,
			status,
			estimated_delivery,
			price_quote,
			change_count,
			order_date,
			updated_at,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var (
		resp    GetOrderQueryResponse
		id      uuid.UUID
		options datatypes.JSONSlice[string]
		status  int
		price   decimal.Decimal
	)
	err = rows.Scan(
		&id,
		&resp.Number,
		&resp.DealerID,
		&resp.ModelCode,
		&resp.ColorCode,
		&options,
		&status,
		&resp.EstimatedDelivery,
		&price,
		&resp.ChangeCount,
		&resp.OrderDate,
		&resp.UpdatedAt,
		&resp.Version,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.OptionCodes = append([]string{}, options...)
	resp.Status = order.Status(status)
	resp.PriceQuote = price
	resp.EstimatedDelivery = resp.EstimatedDelivery.UTC()
	resp.OrderDate = resp.OrderDate.UTC()
	resp.UpdatedAt = resp.UpdatedAt.UTC()

	return resp, rows.Err()
}
