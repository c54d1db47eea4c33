package messaging

import (
	"context"
	"log/slog"

	"automfg/internal/core/application/usecases/commands"
	"automfg/internal/core/ports"
)

// IntakeHandler turns placed orders into production orders.
type IntakeHandler interface {
	Handle(ctx context.Context, cmd commands.IntakeOrderCommand) (commands.IntakeOutcome, error)
}

type orderPlacedPayload struct {
	OrderID     string   `json:"orderId"`
	ModelCode   string   `json:"modelCode"`
	OptionCodes []string `json:"optionCodes"`
}

// OrderIntakeConsumer feeds OrderPlaced notifications into production.
type OrderIntakeConsumer struct {
	handler IntakeHandler
	logger  *slog.Logger
}

func NewOrderIntakeConsumer(handler IntakeHandler, logger *slog.Logger) *OrderIntakeConsumer {
	return &OrderIntakeConsumer{
		handler: handler,
		logger:  logger.With("component", commands.IntakeConsumerName),
	}
}

func (c *OrderIntakeConsumer) Name() string {
	return commands.IntakeConsumerName
}

func (c *OrderIntakeConsumer) Consume(ctx context.Context, n ports.Notification) error {
	var payload orderPlacedPayload
	if err := decodePayload(n.Payload, &payload); err != nil {
		return err
	}
	orderID, err := uuidField("orderId", payload.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewIntakeOrderCommand(n.ID, orderID, payload.ModelCode, payload.OptionCodes)
	if err != nil {
		return err
	}

	outcome, err := c.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "order intake handled",
		"notification_id", n.ID.String(),
		"order_id", orderID.String(),
		"outcome", outcome.String(),
	)
	return nil
}
