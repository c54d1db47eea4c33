package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"automfg/internal/adapters/in/messaging"
	"automfg/internal/core/application/usecases/commands"
	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockIntakeHandler struct{ mock.Mock }

func (m *MockIntakeHandler) Handle(ctx context.Context, cmd commands.IntakeOrderCommand) (commands.IntakeOutcome, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.IntakeOutcome), args.Error(1)
}

type MockStatusSyncHandler struct{ mock.Mock }

func (m *MockStatusSyncHandler) Handle(ctx context.Context, cmd commands.SyncOrderStatusCommand) (commands.IntakeOutcome, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.IntakeOutcome), args.Error(1)
}

type MockConsumer struct{ mock.Mock }

func (m *MockConsumer) Name() string { return m.Called().String(0) }

func (m *MockConsumer) Consume(ctx context.Context, n ports.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func notificationOf(t *testing.T, e event.DomainEvent) ports.Notification {
	t.Helper()
	payload, err := json.Marshal(e)
	require.NoError(t, err)
	return ports.Notification{
		ID:            e.ID(),
		Name:          e.Name(),
		AggregateType: e.AggregateType(),
		AggregateID:   e.AggregateID(),
		OccurredAt:    e.OccurredAt(),
		Payload:       payload,
	}
}

func TestOrderIntakeConsumer_Consume(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	n := notificationOf(t, event.NewOrderPlaced(orderID, "ORD-202401-00001", "DEALER-7", "MODEL-S",
		"PEARL-WHITE", []string{"AUTOPILOT", "TOW-PACKAGE"}))

	handler := new(MockIntakeHandler)
	var got commands.IntakeOrderCommand
	handler.On("Handle", ctx, mock.AnythingOfType("commands.IntakeOrderCommand")).
		Run(func(args mock.Arguments) { got = args.Get(1).(commands.IntakeOrderCommand) }).
		Return(commands.IntakeApplied, nil).Once()

	err := messaging.NewOrderIntakeConsumer(handler, discard).Consume(ctx, n)

	require.NoError(t, err)
	assert.True(t, got.NotificationID().IsEqual(n.ID))
	assert.True(t, got.SourceOrderID().IsEqual(orderID))
	assert.Equal(t, "MODEL-S", got.ModelCode())
	assert.Equal(t, []string{"AUTOPILOT", "TOW-PACKAGE"}, got.OptionCodes())
	handler.AssertExpectations(t)
}

func TestOrderIntakeConsumer_BadPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `not json`},
		{"not an object", `["a"]`},
		{"missing order id", `{"modelCode":"MODEL-S"}`},
		{"malformed order id", `{"orderId":"42","modelCode":"MODEL-S"}`},
		{"missing model", `{"orderId":"0b7c5a4e-8f5e-4f4e-9c1a-2f7b9d1e3a10"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := new(MockIntakeHandler)
			n := ports.Notification{ID: kernel.NewUUID(), Name: event.OrderPlacedName, Payload: []byte(tt.payload)}

			err := messaging.NewOrderIntakeConsumer(handler, discard).Consume(t.Context(), n)

			require.Error(t, err)
			handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderStatusConsumer_Consume(t *testing.T) {
	productionOrderID := kernel.NewUUID()
	events := []event.DomainEvent{
		event.NewProductionOrderScheduled(productionOrderID, "PO-SH-202401-00001", kernel.NewUUID(), "1HGBH41JXMN109186"),
		event.NewProductionStarted(productionOrderID, "1HGBH41JXMN109186", "OP-1"),
		event.NewVehicleCompleted(kernel.NewUUID(), productionOrderID, "1HGBH41JXMN109186"),
	}

	for _, e := range events {
		t.Run(e.Name().String(), func(t *testing.T) {
			ctx := t.Context()
			n := notificationOf(t, e)
			handler := new(MockStatusSyncHandler)
			var got commands.SyncOrderStatusCommand
			handler.On("Handle", ctx, mock.AnythingOfType("commands.SyncOrderStatusCommand")).
				Run(func(args mock.Arguments) { got = args.Get(1).(commands.SyncOrderStatusCommand) }).
				Return(commands.IntakeSkipped, nil).Once()

			require.NoError(t, messaging.NewOrderStatusConsumer(handler, discard).Consume(ctx, n))

			assert.Equal(t, e.Name(), got.EventName())
			assert.True(t, got.ProductionOrderID().IsEqual(productionOrderID))
			assert.True(t, got.NotificationID().IsEqual(e.ID()))
		})
	}
}

func TestOrderStatusConsumer_PropagatesHandlerError(t *testing.T) {
	ctx := t.Context()
	n := notificationOf(t, event.NewProductionStarted(kernel.NewUUID(), "1HGBH41JXMN109186", "OP-1"))
	handler := new(MockStatusSyncHandler)
	boom := errors.New("database is gone")
	handler.On("Handle", ctx, mock.Anything).Return(commands.IntakeOutcome(0), boom).Once()

	err := messaging.NewOrderStatusConsumer(handler, discard).Consume(ctx, n)

	require.ErrorIs(t, err, boom)
}

func TestRouter_Dispatch(t *testing.T) {
	ctx := t.Context()
	placed := ports.Notification{ID: kernel.NewUUID(), Name: event.OrderPlacedName}
	started := ports.Notification{ID: kernel.NewUUID(), Name: event.ProductionStartedName}
	overtime := ports.Notification{ID: kernel.NewUUID(), Name: event.AssemblyOvertimeAlertName}

	intake := new(MockConsumer)
	intake.On("Name").Return("intake").Maybe()
	intake.On("Consume", ctx, placed).Return(nil).Once()

	audit := new(MockConsumer)
	audit.On("Name").Return("audit").Maybe()
	audit.On("Consume", ctx, placed).Return(errors.New("audit store down")).Once()
	audit.On("Consume", ctx, started).Return(nil).Once()

	router := messaging.NewRouter(discard)
	router.Subscribe(intake, event.OrderPlacedName)
	router.Subscribe(audit, event.OrderPlacedName, event.ProductionStartedName)

	err := router.Dispatch(ctx, placed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit: audit store down")

	require.NoError(t, router.Dispatch(ctx, started))
	require.NoError(t, router.Dispatch(ctx, overtime), "unrouted events are dropped")

	intake.AssertExpectations(t)
	audit.AssertExpectations(t)
}
