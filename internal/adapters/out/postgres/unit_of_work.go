// Package postgres provides the GORM implementation of the unit of work and
// the schema of the manufacturing database.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it share the transaction and register every aggregate they write. On
// Commit the domain events of those aggregates are inserted into the outbox
// inside the same transaction, and cleared from the aggregates once the
// transaction is committed:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx) // OrderPlaced is now in outbox_messages
//
// Each UnitOfWork instance belongs to a single goroutine.
package postgres

import (
	"context"

	"automfg/internal/adapters/out/postgres/inspectionrepo"
	"automfg/internal/adapters/out/postgres/ledgerrepo"
	"automfg/internal/adapters/out/postgres/orderrepo"
	"automfg/internal/adapters/out/postgres/outboxrepo"
	"automfg/internal/adapters/out/postgres/productionrepo"
	"automfg/internal/adapters/out/postgres/reworkrepo"
	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/ports"

	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate ports.EventSource
}

// GormUnitOfWorkFactory creates a fresh GormUnitOfWork per business
// operation.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	ledger ports.ProcessedEventLedger
}

// FactoryOption configures a GormUnitOfWorkFactory.
type FactoryOption func(*GormUnitOfWorkFactory)

// WithExternalLedger replaces the transactional processed_events ledger by a
// ledger outside the database, e.g. DynamoDB. Lookups go straight to it;
// entries are written only after the database transaction committed.
func WithExternalLedger(ledger ports.ProcessedEventLedger) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.ledger = ledger
	}
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm returns the concrete unit of work.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	uow := &GormUnitOfWork{db: f.db}
	if f.ledger != nil {
		uow.external = &deferredLedger{target: f.ledger}
	}
	return uow
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
	external          *deferredLedger
}

// Begin opens the transaction. Calling Begin on an open unit of work is a
// no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the pending domain events to the outbox and commits. After a
// successful commit the events are cleared from the aggregates and deferred
// ledger entries are flushed.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	events := uow.pendingEvents()
	if err := outboxrepo.NewPublisher(uow.tx).PublishAll(ctx, events); err != nil {
		return err
	}

	if err := uow.tx.Commit().Error; err != nil {
		uow.reset()
		if uow.external != nil {
			uow.external.discard()
		}
		return err
	}

	for _, tracked := range uow.trackedAggregates {
		tracked.Aggregate.ClearDomainEvents()
	}
	uow.reset()

	if uow.external != nil {
		return uow.external.flush(ctx)
	}
	return nil
}

// Rollback discards the transaction and forgets tracked aggregates and
// deferred ledger entries.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	if uow.external != nil {
		uow.external.discard()
	}
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductionOrderRepository() ports.ProductionOrderRepository {
	return productionrepo.NewGormProductionOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) QualityInspectionRepository() ports.QualityInspectionRepository {
	return inspectionrepo.NewGormQualityInspectionRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ReworkOrderRepository() ports.ReworkOrderRepository {
	return reworkrepo.NewGormReworkOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProcessedEventLedger() ports.ProcessedEventLedger {
	if uow.external != nil {
		return uow.external
	}
	return ledgerrepo.NewGormProcessedEventLedger(uow.conn())
}

// TrackAggregate registers an aggregate written through this unit of work.
// An aggregate written twice is tracked once.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate ports.EventSource) {
	for _, tracked := range uow.trackedAggregates {
		if tracked.ID.IsEqual(id) {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) pendingEvents() []event.DomainEvent {
	var events []event.DomainEvent
	for _, tracked := range uow.trackedAggregates {
		events = append(events, tracked.Aggregate.DomainEvents()...)
	}
	return events
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.trackedAggregates = nil
}

type ledgerEntry struct {
	eventID   kernel.UUID
	eventType event.Name
	consumer  string
}

// deferredLedger holds RecordProcessed calls back until the database
// transaction is committed. A crash between commit and flush leaves the
// notification unrecorded, so it may be handled a second time.
type deferredLedger struct {
	target  ports.ProcessedEventLedger
	pending []ledgerEntry
}

func (l *deferredLedger) IsProcessed(ctx context.Context, eventID kernel.UUID, consumer string) (bool, error) {
	return l.target.IsProcessed(ctx, eventID, consumer)
}

func (l *deferredLedger) RecordProcessed(_ context.Context, eventID kernel.UUID, eventType event.Name, consumer string) error {
	l.pending = append(l.pending, ledgerEntry{eventID: eventID, eventType: eventType, consumer: consumer})
	return nil
}

func (l *deferredLedger) flush(ctx context.Context) error {
	defer l.discard()
	for _, e := range l.pending {
		if err := l.target.RecordProcessed(ctx, e.eventID, e.eventType, e.consumer); err != nil {
			return err
		}
	}
	return nil
}

func (l *deferredLedger) discard() {
	l.pending = nil
}
