package commands_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"automfg/internal/core/application/usecases/commands"
	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/order"
	"automfg/internal/core/ports"
	"automfg/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderSequence(name string) bool {
	return strings.HasPrefix(name, "order:")
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	options := []string{"AUTOPILOT"}
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), dealerID, modelS, "PEARL-WHITE", options, time.Time{})
	require.NoError(t, err)

	catalog := new(MockVehicleConfigGateway)
	catalog.On("ValidateConfiguration", ctx, modelS, "PEARL-WHITE", options).Return(ports.ConfigValidation{Valid: true}, nil).Once()
	catalog.On("CalculatePrice", ctx, modelS, options).Return(decimal.RequireFromString("52000"), nil).Once()

	sequences := new(MockSequenceAllocator)
	sequences.On("Next", ctx, mock.MatchedBy(orderSequence)).Return(int64(42), nil).Once()

	var added *order.Order
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("CountByDealerAndModelAndStatuses", ctx, dealerID, modelS, order.ActiveStatuses()).Return(int64(49), nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
			added = args.Get(1).(*order.Order)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, catalog, sequences)
	ref, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, ref.ID.IsEqual(cmd.OrderID()))
	assert.True(t, strings.HasSuffix(ref.Number.String(), "-00042"))

	require.NotNil(t, added)
	assert.Equal(t, order.Placed, added.Status())
	assert.True(t, decimal.RequireFromString("52000").Equal(added.PriceQuote()))
	require.Len(t, added.DomainEvents(), 1)
	assert.Equal(t, event.OrderPlacedName, added.DomainEvents()[0].Name())

	catalog.AssertExpectations(t)
	sequences.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ActiveOrderLimit(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), dealerID, modelS, "PEARL-WHITE", nil, time.Time{})

	catalog := new(MockVehicleConfigGateway)
	catalog.On("ValidateConfiguration", ctx, modelS, "PEARL-WHITE", []string(nil)).Return(ports.ConfigValidation{Valid: true}, nil)
	catalog.On("CalculatePrice", ctx, modelS, []string(nil)).Return(decimal.RequireFromString("48000"), nil)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("CountByDealerAndModelAndStatuses", ctx, dealerID, modelS, order.ActiveStatuses()).
			Return(int64(commands.MaxActiveOrdersPerDealerModel), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	sequences := new(MockSequenceAllocator)

	h := commands.NewPlaceOrderCommandHandler(factory, catalog, sequences)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	require.ErrorIs(t, err, commands.ErrActiveOrderLimitReached)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	sequences.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_InvalidConfiguration(t *testing.T) {
	ctx := t.Context()
	options := []string{"TOW-PACKAGE", "SPORT-PACKAGE"}
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), dealerID, modelS, "PEARL-WHITE", options, time.Time{})

	catalog := new(MockVehicleConfigGateway)
	catalog.On("ValidateConfiguration", ctx, modelS, "PEARL-WHITE", options).Return(ports.ConfigValidation{
		Violations: []string{"TOW-PACKAGE excludes SPORT-PACKAGE"},
	}, nil).Once()

	factory := new(MockOrderUoWFactory)

	h := commands.NewPlaceOrderCommandHandler(factory, catalog, new(MockSequenceAllocator))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "TOW-PACKAGE excludes SPORT-PACKAGE")
	factory.AssertNotCalled(t, "Create")
	catalog.AssertNotCalled(t, "CalculatePrice", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), dealerID, modelS, "PEARL-WHITE", nil, time.Time{})

	catalog := new(MockVehicleConfigGateway)
	catalog.On("ValidateConfiguration", ctx, modelS, "PEARL-WHITE", []string(nil)).Return(ports.ConfigValidation{Valid: true}, nil)
	catalog.On("CalculatePrice", ctx, modelS, []string(nil)).Return(decimal.RequireFromString("48000"), nil)
	sequences := new(MockSequenceAllocator)
	sequences.On("Next", ctx, mock.MatchedBy(orderSequence)).Return(int64(1), nil)

	commitErr := errors.New("commit error")
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("CountByDealerAndModelAndStatuses", ctx, dealerID, modelS, order.ActiveStatuses()).Return(int64(0), nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(commitErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, catalog, sequences)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commitErr)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewPlaceOrderCommandHandler(new(MockOrderUoWFactory), new(MockVehicleConfigGateway), new(MockSequenceAllocator))

	_, err := h.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}

func TestNewPlaceOrderCommand(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, " ", modelS, "", nil, time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "dealer id")
	assert.Contains(t, err.Error(), "color code")
}
