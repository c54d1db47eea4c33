package queries

import (
	"errors"
	"strings"
	"time"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/production"
	"automfg/internal/pkg/guard"
)

var ErrListProductionOrdersQueryIsNotConstructed = errors.New(
	"ListProductionOrdersQuery must be created via NewListProductionOrdersQuery constructor",
)

// ListProductionOrdersQuery selects production orders by status, or all of
// them when the status is empty.
type ListProductionOrdersQuery struct {
	status production.Status

	guard guard.ConstructorGuard
}

func NewListProductionOrdersQuery(status string) (ListProductionOrdersQuery, error) {
	q := ListProductionOrdersQuery{guard: guard.NewConstructorGuard()}
	if status = strings.TrimSpace(status); status != "" {
		parsed, err := production.ParseStatus(status)
		if err != nil {
			return ListProductionOrdersQuery{}, err
		}
		q.status = parsed
	}
	return q, nil
}

func (q ListProductionOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListProductionOrdersQueryIsNotConstructed)
}

// Status returns the filter; ok is false when every status is selected.
func (q ListProductionOrdersQuery) Status() (production.Status, bool) {
	return q.status, q.status != production.Unknown
}

// ProductionOrderSummary is one row of the production order list.
// CurrentStationSequence is nil until production starts.
type ProductionOrderSummary struct {
	ID                     kernel.UUID
	Number                 string
	VIN                    string
	Status                 production.Status
	CurrentStationSequence *int
	CreatedAt              time.Time
}
