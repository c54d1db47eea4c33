package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it share its transaction; aggregates they write are tracked and their
// domain events are published when Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ProductionOrderRepository() ProductionOrderRepository
	QualityInspectionRepository() QualityInspectionRepository
	ReworkOrderRepository() ReworkOrderRepository
	ProcessedEventLedger() ProcessedEventLedger
}
