package commands_test

import (
	"testing"

	"automfg/internal/core/application/usecases/commands"
	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/inspection"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/order"
	"automfg/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateInspectionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := restoreOrder(t, order.InProduction, 0)
	po := assembledProductionOrder(t, o.ID())
	inspectionID := kernel.NewUUID()
	cmd, err := commands.NewCreateInspectionCommand(inspectionID, po.ID(), inspector)
	require.NoError(t, err)

	uow := new(MockUoW)
	productionRepo := new(MockProductionOrderRepository)
	orderRepo := new(MockOrderRepository)
	inspectionRepo := new(MockQualityInspectionRepository)
	checklists := new(MockChecklistGateway)
	factory := new(MockUoWFactory)

	var added *inspection.QualityInspection
	factory.On("Create").Return(uow).Once()
	checklists.On("ChecklistForModel", ctx, modelS).Return(checklist(), nil).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductionOrderRepository").Return(productionRepo).Once(),
		productionRepo.On("Get", ctx, po.ID()).Return(po, nil).Once(),
		uow.On("QualityInspectionRepository").Return(inspectionRepo).Once(),
		inspectionRepo.On("HasOpenInspection", ctx, po.ID()).Return(false, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		inspectionRepo.On("Add", ctx, mock.AnythingOfType("*inspection.QualityInspection")).Run(func(args mock.Arguments) {
			added = args.Get(1).(*inspection.QualityInspection)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateInspectionCommandHandler(factory, checklists).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.True(t, added.ID().IsEqual(inspectionID))
	assert.True(t, added.ProductionOrderID().IsEqual(po.ID()))
	assert.Equal(t, inspector, added.InspectorID())
	assert.Len(t, added.Items(), 2)
	require.Len(t, added.DomainEvents(), 1)
	assert.Equal(t, event.InspectionCreatedName, added.DomainEvents()[0].Name())
	uow.AssertExpectations(t)
}

func TestCreateInspectionCommandHandler_Handle_RequiresAssembledVehicle(t *testing.T) {
	ctx := t.Context()
	po := startedProductionOrder(t)
	cmd, _ := commands.NewCreateInspectionCommand(kernel.NewUUID(), po.ID(), inspector)

	uow := new(MockUoW)
	productionRepo := new(MockProductionOrderRepository)
	factory := new(MockUoWFactory)
	checklists := new(MockChecklistGateway)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductionOrderRepository").Return(productionRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	productionRepo.On("Get", ctx, po.ID()).Return(po, nil).Once()

	err := commands.NewCreateInspectionCommandHandler(factory, checklists).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	uow.AssertNotCalled(t, "QualityInspectionRepository")
	checklists.AssertNotCalled(t, "ChecklistForModel", mock.Anything, mock.Anything)
}

func TestCreateInspectionCommandHandler_Handle_EmptyChecklist(t *testing.T) {
	ctx := t.Context()
	o := restoreOrder(t, order.InProduction, 0)
	po := assembledProductionOrder(t, o.ID())
	cmd, _ := commands.NewCreateInspectionCommand(kernel.NewUUID(), po.ID(), inspector)

	uow := new(MockUoW)
	productionRepo := new(MockProductionOrderRepository)
	orderRepo := new(MockOrderRepository)
	inspectionRepo := new(MockQualityInspectionRepository)
	checklists := new(MockChecklistGateway)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductionOrderRepository").Return(productionRepo).Once()
	uow.On("QualityInspectionRepository").Return(inspectionRepo).Once()
	inspectionRepo.On("HasOpenInspection", ctx, po.ID()).Return(false, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	productionRepo.On("Get", ctx, po.ID()).Return(po, nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	checklists.On("ChecklistForModel", ctx, modelS).Return([]inspection.ChecklistItemTemplate{}, nil).Once()

	err := commands.NewCreateInspectionCommandHandler(factory, checklists).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	require.ErrorIs(t, err, commands.ErrEmptyChecklist)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateInspectionCommandHandler_Handle_InspectionAwaitingReview(t *testing.T) {
	ctx := t.Context()
	po := assembledProductionOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewCreateInspectionCommand(kernel.NewUUID(), po.ID(), inspector)

	uow := new(MockUoW)
	productionRepo := new(MockProductionOrderRepository)
	inspectionRepo := new(MockQualityInspectionRepository)
	checklists := new(MockChecklistGateway)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductionOrderRepository").Return(productionRepo).Once()
	uow.On("QualityInspectionRepository").Return(inspectionRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	productionRepo.On("Get", ctx, po.ID()).Return(po, nil).Once()
	inspectionRepo.On("HasOpenInspection", ctx, po.ID()).Return(true, nil).Once()

	err := commands.NewCreateInspectionCommandHandler(factory, checklists).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	require.ErrorIs(t, err, commands.ErrInspectionAlreadyOpen)
	inspectionRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func inspectionUoW(
	t *testing.T,
	qi *inspection.QualityInspection,
	expectUpdate bool,
) (*MockInspectionUoWFactory, *MockUoW, *MockQualityInspectionRepository) {
	t.Helper()
	ctx := t.Context()

	uow := new(MockUoW)
	repo := new(MockQualityInspectionRepository)
	factory := new(MockInspectionUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("QualityInspectionRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, qi.ID()).Return(qi, nil).Once()
	if expectUpdate {
		repo.On("Update", ctx, qi).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
	}
	return factory, uow, repo
}

func TestRecordInspectionItemResultCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	po := assembledProductionOrder(t, kernel.NewUUID())
	qi, err := inspection.NewQualityInspection(kernel.NewUUID(), po.ID(), po.VIN(), inspector, checklist())
	require.NoError(t, err)
	item := qi.Items()[1]

	cmd, err := commands.NewRecordInspectionItemResultCommand(qi.ID(), item.ID(), "CONDITIONAL", "orange peel on hood")
	require.NoError(t, err)
	factory, uow, repo := inspectionUoW(t, qi, true)

	err = commands.NewRecordInspectionItemResultCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	recorded := qi.Items()[1]
	assert.Equal(t, inspection.ItemConditional, recorded.Status())
	assert.Equal(t, "orange peel on hood", recorded.Notes())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestRecordInspectionItemResultCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	po := assembledProductionOrder(t, kernel.NewUUID())
	qi, err := inspection.NewQualityInspection(kernel.NewUUID(), po.ID(), po.VIN(), inspector, checklist())
	require.NoError(t, err)

	cmd, err := commands.NewRecordInspectionItemResultCommand(qi.ID(), kernel.NewUUID(), "PASSED", "")
	require.NoError(t, err)
	factory, uow, _ := inspectionUoW(t, qi, false)

	err = commands.NewRecordInspectionItemResultCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewRecordInspectionItemResultCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewRecordInspectionItemResultCommand(kernel.NewUUID(), kernel.NewUUID(), "MAYBE", "")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCompleteInspectionCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name   string
		brakes inspection.ItemStatus
		want   inspection.Result
	}{
		{"all passed", inspection.ItemPassed, inspection.Passed},
		{"conditional", inspection.ItemConditional, inspection.ConditionalPass},
		{"safety failure", inspection.ItemFailed, inspection.Failed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			po := assembledProductionOrder(t, kernel.NewUUID())
			qi, err := inspection.NewQualityInspection(kernel.NewUUID(), po.ID(), po.VIN(), inspector, checklist())
			require.NoError(t, err)
			items := qi.Items()
			require.NoError(t, qi.RecordItemResult(items[0].ID(), tt.brakes, ""))
			require.NoError(t, qi.RecordItemResult(items[1].ID(), inspection.ItemPassed, ""))

			cmd, err := commands.NewCompleteInspectionCommand(qi.ID(), inspector)
			require.NoError(t, err)
			factory, uow, _ := inspectionUoW(t, qi, true)

			result, err := commands.NewCompleteInspectionCommandHandler(factory).Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
			uow.AssertExpectations(t)
		})
	}
}

func TestCompleteInspectionCommandHandler_Handle_PendingItems(t *testing.T) {
	ctx := t.Context()
	po := assembledProductionOrder(t, kernel.NewUUID())
	qi, err := inspection.NewQualityInspection(kernel.NewUUID(), po.ID(), po.VIN(), inspector, checklist())
	require.NoError(t, err)

	cmd, _ := commands.NewCompleteInspectionCommand(qi.ID(), inspector)
	factory, uow, _ := inspectionUoW(t, qi, false)

	result, err := commands.NewCompleteInspectionCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Equal(t, inspection.ResultUnknown, result)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
