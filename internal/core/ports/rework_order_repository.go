package ports

import (
	"context"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/rework"
)

type ReworkOrderRepository interface {
	Add(ctx context.Context, aggregate *rework.ReworkOrder) error
	Update(ctx context.Context, aggregate *rework.ReworkOrder) error
	Get(ctx context.Context, id kernel.UUID) (*rework.ReworkOrder, error)
}
