// Package commands contains the write side of the manufacturing lifecycle.
// Every command follows the same pattern: a command object validated by its
// constructor, and a handler that opens a unit of work, loads aggregates,
// invokes domain behavior, saves and commits. Domain events reach the outbox
// through the unit of work on commit.
package commands

import (
	"context"

	"automfg/internal/core/ports"
)

// Unit of Work interfaces narrow the transactional boundary to the
// repositories each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProductionOrderRepoFactory interface {
		ProductionOrderRepository() ports.ProductionOrderRepository
	}

	QualityInspectionRepoFactory interface {
		QualityInspectionRepository() ports.QualityInspectionRepository
	}

	ReworkOrderRepoFactory interface {
		ReworkOrderRepository() ports.ReworkOrderRepository
	}

	// LedgerFactory exposes the processed-event ledger bound to the same
	// transaction as the repositories.
	LedgerFactory interface {
		ProcessedEventLedger() ports.ProcessedEventLedger
	}

	// OrderUoW is used by commands that only touch commercial orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductionUoW is used by shop-floor commands on a production order.
	ProductionUoW interface {
		TxManager
		ProductionOrderRepoFactory
	}

	ProductionUoWFactory interface {
		Create() ProductionUoW
	}

	// IntakeUoW creates production orders from inbound notifications.
	IntakeUoW interface {
		TxManager
		ProductionOrderRepoFactory
		LedgerFactory
	}

	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// InspectionUoW is used by commands that only touch a quality inspection.
	InspectionUoW interface {
		TxManager
		QualityInspectionRepoFactory
	}

	InspectionUoWFactory interface {
		Create() InspectionUoW
	}

	// UoW spans every aggregate. Used by workflows that coordinate several
	// aggregates in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   inspections := uow.QualityInspectionRepository()
	//   productionOrders := uow.ProductionOrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductionOrderRepoFactory
		QualityInspectionRepoFactory
		ReworkOrderRepoFactory
		LedgerFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
