package queries

import (
	"errors"
	"strings"
	"time"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/order"
	"automfg/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery selects the orders of one dealer in one status. An empty
// status selects PLACED orders; an empty dealer selects nothing.
//
// Example:
//
//	query, err := NewListOrdersQuery("DEALER-7", "SCHEDULED")
//	if err != nil {
//	    return err // unknown status
//	}
//	orders, err := NewListOrdersQueryHandler(db).Handle(ctx, query)
type ListOrdersQuery struct {
	dealerID string
	status   order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(dealerID, status string) (ListOrdersQuery, error) {
	parsed := order.Placed
	if status = strings.TrimSpace(status); status != "" {
		var err error
		if parsed, err = order.ParseStatus(status); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		dealerID: strings.TrimSpace(dealerID),
		status:   parsed,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) DealerID() string {
	return q.dealerID
}

func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// OrderSummary is one row of an order list.
type OrderSummary struct {
	ID                kernel.UUID
	Number            string
	DealerID          string
	ModelCode         string
	Status            order.Status
	EstimatedDelivery time.Time
	PriceQuote        decimal.Decimal
}
