package queries

import (
	"context"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists a dealer's orders, oldest first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummary, 0)
	if query.DealerID() == "" {
		return orders, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			dealer_id,
			model_code,
			status,
			estimated_delivery,
			price_quote
		FROM orders
		WHERE dealer_id = ? AND status = ?
		ORDER BY order_date, number
	`, query.DealerID(), int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			summary OrderSummary
			id      uuid.UUID
			status  int
			price   decimal.Decimal
		)
		err = rows.Scan(
			&id,
			&summary.Number,
			&summary.DealerID,
			&summary.ModelCode,
			&status,
			&summary.EstimatedDelivery,
			&price,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		summary.Status = order.Status(status)
		summary.PriceQuote = price
		summary.EstimatedDelivery = summary.EstimatedDelivery.UTC()
		orders = append(orders, summary)
	}

	return orders, rows.Err()
}
