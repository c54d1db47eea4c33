package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "automfg/internal/adapters/in/http"
	"automfg/internal/adapters/in/messaging"
	"automfg/internal/adapters/out/catalog"
	"automfg/internal/adapters/out/dynamodb"
	"automfg/internal/adapters/out/postgres"
	"automfg/internal/adapters/out/postgres/outboxrepo"
	"automfg/internal/adapters/out/postgres/sequencerepo"
	"automfg/internal/adapters/out/redis"
	"automfg/internal/adapters/out/vingen"
	"automfg/internal/core/application/usecases/commands"
	"automfg/internal/core/application/usecases/queries"
	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/services"
	"automfg/internal/core/ports"
	"automfg/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg    Config
	gormDB *gorm.DB
	logger *slog.Logger

	uowFactory   *postgres.GormUnitOfWorkFactory
	catalog      *catalog.Catalog
	availability *catalog.MaterialAvailability
	vins         ports.VINGenerator
	sequences    ports.SequenceAllocator
	ledger       *dynamodb.ProcessedEventLedger

	closers []func() error
}

// NewCompositionRoot selects the sequence and ledger backends from cfg and
// builds the shared adapters.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:          cfg,
		gormDB:       gormDB,
		logger:       logger,
		catalog:      catalog.NewCatalog(),
		availability: catalog.NewMaterialAvailability(cfg.ShortageParts...),
	}

	vins, err := vingen.NewGenerator(cfg.VINWMI, nil)
	if err != nil {
		return nil, err
	}
	c.vins = vins

	switch cfg.SequenceBackend {
	case BackendRedis:
		client := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword)
		c.closers = append(c.closers, client.Close)
		c.sequences = redis.NewSequenceAllocator(client, redis.DefaultKeyPrefix)
	default:
		c.sequences = sequencerepo.NewGormSequenceAllocator(gormDB)
	}

	var opts []postgres.FactoryOption
	if cfg.LedgerBackend == BackendDynamoDB {
		client, err := dynamodb.NewClient(ctx, dynamodb.ClientConfig{
			Region:   cfg.DynamoDBRegion,
			Endpoint: cfg.DynamoDBEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("dynamodb client: %w", err)
		}
		c.ledger = dynamodb.NewProcessedEventLedger(client, cfg.DynamoDBTable)
		opts = append(opts, postgres.WithExternalLedger(c.ledger))
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, opts...)

	return c, nil
}

// Migrate creates the database schema and, with the DynamoDB ledger, its
// table.
func (c *CompositionRoot) Migrate(ctx context.Context) error {
	if err := postgres.Migrate(ctx, c.gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if c.ledger != nil {
		if err := c.ledger.EnsureTable(ctx); err != nil {
			return fmt.Errorf("ensure ledger table: %w", err)
		}
	}
	return nil
}

func (c *CompositionRoot) Config() Config {
	return c.cfg
}

// Close releases the connections opened for the selected backends.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) productionUoWFactory() commands.ProductionUoWFactory {
	return FuncProductionUoWFactory(func() commands.ProductionUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) intakeUoWFactory() commands.IntakeUoWFactory {
	return FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) inspectionUoWFactory() commands.InspectionUoWFactory {
	return FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) uowFactoryAll() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.catalog, c.sequences)
}

func (c *CompositionRoot) CreateChangeOrderCommandHandler() commands.ChangeOrderCommandHandler {
	return commands.NewChangeOrderCommandHandler(c.orderUoWFactory(), c.catalog, c.CreatePlaceOrderCommandHandler())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateIntakeOrderCommandHandler() commands.IntakeOrderCommandHandler {
	return commands.NewIntakeOrderCommandHandler(
		c.intakeUoWFactory(),
		services.NewBomExpander(c.catalog, c.availability),
		c.catalog,
		c.sequences,
		c.vins,
		c.cfg.FacilityCode,
	)
}

func (c *CompositionRoot) CreateSyncOrderStatusCommandHandler() commands.SyncOrderStatusCommandHandler {
	return commands.NewSyncOrderStatusCommandHandler(c.uowFactoryAll())
}

func (c *CompositionRoot) CreateStartProductionCommandHandler() commands.StartProductionCommandHandler {
	return commands.NewStartProductionCommandHandler(c.productionUoWFactory())
}

func (c *CompositionRoot) CreateCompleteAssemblyStepCommandHandler() commands.CompleteAssemblyStepCommandHandler {
	return commands.NewCompleteAssemblyStepCommandHandler(c.productionUoWFactory())
}

func (c *CompositionRoot) CreateCreateInspectionCommandHandler() commands.CreateInspectionCommandHandler {
	return commands.NewCreateInspectionCommandHandler(c.uowFactoryAll(), c.catalog)
}

func (c *CompositionRoot) CreateRecordInspectionItemResultCommandHandler() commands.RecordInspectionItemResultCommandHandler {
	return commands.NewRecordInspectionItemResultCommandHandler(c.inspectionUoWFactory())
}

func (c *CompositionRoot) CreateCompleteInspectionCommandHandler() commands.CompleteInspectionCommandHandler {
	return commands.NewCompleteInspectionCommandHandler(c.inspectionUoWFactory())
}

func (c *CompositionRoot) CreateReviewInspectionCommandHandler() commands.ReviewInspectionCommandHandler {
	return commands.NewReviewInspectionCommandHandler(c.uowFactoryAll())
}

func (c *CompositionRoot) CreateCompleteReworkCommandHandler() commands.CompleteReworkCommandHandler {
	return commands.NewCompleteReworkCommandHandler(c.uowFactoryAll())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductionOrdersQueryHandler() queries.ListProductionOrdersQueryHandler {
	return queries.NewListProductionOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductionOrderQueryHandler() queries.GetProductionOrderQueryHandler {
	return queries.NewGetProductionOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInspectionQueryHandler() queries.GetInspectionQueryHandler {
	return queries.NewGetInspectionQueryHandler(c.gormDB)
}

// CreateNotificationRouter subscribes the in-process consumers: production
// intake on OrderPlaced and commercial status sync on the manufacturing
// milestones.
func (c *CompositionRoot) CreateNotificationRouter() *messaging.Router {
	router := messaging.NewRouter(c.logger)
	router.Subscribe(
		messaging.NewOrderIntakeConsumer(c.CreateIntakeOrderCommandHandler(), c.logger),
		event.OrderPlacedName,
	)
	router.Subscribe(
		messaging.NewOrderStatusConsumer(c.CreateSyncOrderStatusCommandHandler(), c.logger),
		commands.SyncedEvents()...,
	)
	return router
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(
		outboxrepo.NewStore(c.gormDB),
		c.CreateNotificationRouter(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateRelayOutboxCommand() (commands.RelayOutboxCommand, error) {
	return commands.NewRelayOutboxCommand(c.cfg.RelayBatchSize, c.cfg.RelayMaxAttempts)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	cmd, err := c.CreateRelayOutboxCommand()
	if err != nil {
		return nil, err
	}

	manager := jobs.NewJobManager()
	manager.Register("outbox_relay", jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(),
		cmd,
		c.cfg.RelaySchedule,
		c.logger,
	))
	return manager, nil
}

func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		PlaceOrder:                 c.CreatePlaceOrderCommandHandler(),
		ChangeOrder:                c.CreateChangeOrderCommandHandler(),
		CancelOrder:                c.CreateCancelOrderCommandHandler(),
		StartProduction:            c.CreateStartProductionCommandHandler(),
		CompleteAssemblyStep:       c.CreateCompleteAssemblyStepCommandHandler(),
		CreateInspection:           c.CreateCreateInspectionCommandHandler(),
		RecordInspectionItemResult: c.CreateRecordInspectionItemResultCommandHandler(),
		CompleteInspection:         c.CreateCompleteInspectionCommandHandler(),
		ReviewInspection:           c.CreateReviewInspectionCommandHandler(),
		CompleteRework:             c.CreateCompleteReworkCommandHandler(),
		GetOrder:                   c.CreateGetOrderQueryHandler(),
		ListOrders:                 c.CreateListOrdersQueryHandler(),
		GetProductionOrder:         c.CreateGetProductionOrderQueryHandler(),
		ListProductionOrders:       c.CreateListProductionOrdersQueryHandler(),
		GetInspection:              c.CreateGetInspectionQueryHandler(),
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductionUoWFactory func() commands.ProductionUoW

func (f FuncProductionUoWFactory) Create() commands.ProductionUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncInspectionUoWFactory func() commands.InspectionUoW

func (f FuncInspectionUoWFactory) Create() commands.InspectionUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
