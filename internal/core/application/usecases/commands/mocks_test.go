package commands_test

import (
	"context"

	"automfg/internal/core/application/usecases/commands"
	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/order"
	"automfg/internal/core/domain/model/production"
	"automfg/internal/core/domain/model/rework"
	"automfg/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) CountByDealerAndModelAndStatuses(
	ctx context.Context,
	dealerID string,
	modelCode string,
	statuses []order.Status,
) (int64, error) {
	args := m.Called(ctx, dealerID, modelCode, statuses)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductionOrderRepository struct{ mock.Mock }

func (m *MockProductionOrderRepository) Add(ctx context.Context, po *production.ProductionOrder) error {
	return m.Called(ctx, po).Error(0)
}

func (m *MockProductionOrderRepository) Update(ctx context.Context, po *production.ProductionOrder) error {
	return m.Called(ctx, po).Error(0)
}

func (m *MockProductionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*production.ProductionOrder, error) {
	args := m.Called(ctx, id)
	po, _ := args.Get(0).(*production.ProductionOrder)
	return po, args.Error(1)
}

func (m *MockProductionOrderRepository) ExistsBySourceOrderID(ctx context.Context, sourceOrderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, sourceOrderID)
	return args.Bool(0), args.Error(1)
}

type MockQualityInspectionRepository struct{ mock.Mock }

func (m *MockQualityInspectionRepository) Add(ctx context.Context, qi *inspection.QualityInspection) error {
	return m.Called(ctx, qi).Error(0)
}

func (m *MockQualityInspectionRepository) Update(ctx context.Context, qi *inspection.QualityInspection) error {
	return m.Called(ctx, qi).Error(0)
}

func (m *MockQualityInspectionRepository) Get(ctx context.Context, id kernel.UUID) (*inspection.QualityInspection, error) {
	args := m.Called(ctx, id)
	qi, _ := args.Get(0).(*inspection.QualityInspection)
	return qi, args.Error(1)
}

func (m *MockQualityInspectionRepository) HasOpenInspection(ctx context.Context, productionOrderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, productionOrderID)
	return args.Bool(0), args.Error(1)
}

type MockReworkOrderRepository struct{ mock.Mock }

func (m *MockReworkOrderRepository) Add(ctx context.Context, ro *rework.ReworkOrder) error {
	return m.Called(ctx, ro).Error(0)
}

func (m *MockReworkOrderRepository) Update(ctx context.Context, ro *rework.ReworkOrder) error {
	return m.Called(ctx, ro).Error(0)
}

func (m *MockReworkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*rework.ReworkOrder, error) {
	args := m.Called(ctx, id)
	ro, _ := args.Get(0).(*rework.ReworkOrder)
	return ro, args.Error(1)
}

type MockLedger struct{ mock.Mock }

func (m *MockLedger) IsProcessed(ctx context.Context, eventID kernel.UUID, consumer string) (bool, error) {
	args := m.Called(ctx, eventID, consumer)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedger) RecordProcessed(ctx context.Context, eventID kernel.UUID, eventType event.Name, consumer string) error {
	return m.Called(ctx, eventID, eventType, consumer).Error(0)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductionOrderRepository() ports.ProductionOrderRepository {
	return m.Called().Get(0).(ports.ProductionOrderRepository)
}

func (m *MockUoW) QualityInspectionRepository() ports.QualityInspectionRepository {
	return m.Called().Get(0).(ports.QualityInspectionRepository)
}

func (m *MockUoW) ReworkOrderRepository() ports.ReworkOrderRepository {
	return m.Called().Get(0).(ports.ReworkOrderRepository)
}

func (m *MockUoW) ProcessedEventLedger() ports.ProcessedEventLedger {
	return m.Called().Get(0).(ports.ProcessedEventLedger)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockProductionUoWFactory struct{ mock.Mock }

func (m *MockProductionUoWFactory) Create() commands.ProductionUoW {
	return m.Called().Get(0).(commands.ProductionUoW)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.IntakeUoW {
	return m.Called().Get(0).(commands.IntakeUoW)
}

type MockInspectionUoWFactory struct{ mock.Mock }

func (m *MockInspectionUoWFactory) Create() commands.InspectionUoW {
	return m.Called().Get(0).(commands.InspectionUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockVehicleConfigGateway struct{ mock.Mock }

func (m *MockVehicleConfigGateway) ValidateConfiguration(
	ctx context.Context,
	modelCode, colorCode string,
	optionCodes []string,
) (ports.ConfigValidation, error) {
	args := m.Called(ctx, modelCode, colorCode, optionCodes)
	return args.Get(0).(ports.ConfigValidation), args.Error(1)
}

func (m *MockVehicleConfigGateway) CalculatePrice(ctx context.Context, modelCode string, optionCodes []string) (decimal.Decimal, error) {
	args := m.Called(ctx, modelCode, optionCodes)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockSequenceAllocator struct{ mock.Mock }

func (m *MockSequenceAllocator) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

type MockVINGenerator struct{ mock.Mock }

func (m *MockVINGenerator) Generate() (kernel.VIN, error) {
	args := m.Called()
	return args.Get(0).(kernel.VIN), args.Error(1)
}

type MockBomCatalog struct{ mock.Mock }

func (m *MockBomCatalog) RequirementsFor(ctx context.Context, modelCode string, optionCodes []string) ([]ports.PartRequirement, error) {
	args := m.Called(ctx, modelCode, optionCodes)
	return args.Get(0).([]ports.PartRequirement), args.Error(1)
}

type MockMaterialAvailability struct{ mock.Mock }

func (m *MockMaterialAvailability) CheckAvailability(ctx context.Context, partNumber string, quantity int) (bool, error) {
	args := m.Called(ctx, partNumber, quantity)
	return args.Bool(0), args.Error(1)
}

type MockRoutingGateway struct{ mock.Mock }

func (m *MockRoutingGateway) TemplatesForModel(ctx context.Context, modelCode string) ([]production.AssemblyStepTemplate, error) {
	args := m.Called(ctx, modelCode)
	return args.Get(0).([]production.AssemblyStepTemplate), args.Error(1)
}

type MockChecklistGateway struct{ mock.Mock }

func (m *MockChecklistGateway) ChecklistForModel(ctx context.Context, modelCode string) ([]inspection.ChecklistItemTemplate, error) {
	args := m.Called(ctx, modelCode)
	return args.Get(0).([]inspection.ChecklistItemTemplate), args.Error(1)
}

type MockOutboxStore struct{ mock.Mock }

func (m *MockOutboxStore) FetchPending(ctx context.Context, limit, maxAttempts int) ([]ports.Notification, error) {
	args := m.Called(ctx, limit, maxAttempts)
	return args.Get(0).([]ports.Notification), args.Error(1)
}

func (m *MockOutboxStore) MarkPublished(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOutboxStore) MarkFailed(ctx context.Context, id kernel.UUID, cause error) error {
	return m.Called(ctx, id, cause).Error(0)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Dispatch(ctx context.Context, n ports.Notification) error {
	return m.Called(ctx, n).Error(0)
}
