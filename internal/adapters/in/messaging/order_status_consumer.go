package messaging

import (
	"context"
	"log/slog"

	"automfg/internal/core/application/usecases/commands"
	"automfg/internal/core/ports"
)

// StatusSyncHandler advances commercial orders.
type StatusSyncHandler interface {
	Handle(ctx context.Context, cmd commands.SyncOrderStatusCommand) (commands.IntakeOutcome, error)
}

type productionPayload struct {
	ProductionOrderID string `json:"productionOrderId"`
}

// OrderStatusConsumer mirrors manufacturing progress onto the commercial
// order. Subscribe it to commands.SyncedEvents.
type OrderStatusConsumer struct {
	handler StatusSyncHandler
	logger  *slog.Logger
}

func NewOrderStatusConsumer(handler StatusSyncHandler, logger *slog.Logger) *OrderStatusConsumer {
	return &OrderStatusConsumer{
		handler: handler,
		logger:  logger.With("component", commands.StatusSyncConsumerName),
	}
}

func (c *OrderStatusConsumer) Name() string {
	return commands.StatusSyncConsumerName
}

func (c *OrderStatusConsumer) Consume(ctx context.Context, n ports.Notification) error {
	var payload productionPayload
	if err := decodePayload(n.Payload, &payload); err != nil {
		return err
	}
	productionOrderID, err := uuidField("productionOrderId", payload.ProductionOrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSyncOrderStatusCommand(n.ID, n.Name, productionOrderID)
	if err != nil {
		return err
	}

	outcome, err := c.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "order status synced",
		"event", n.Name.String(),
		"production_order_id", productionOrderID.String(),
		"outcome", outcome.String(),
	)
	return nil
}
