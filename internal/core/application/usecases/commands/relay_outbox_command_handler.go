package commands

import (
	"context"
	"log/slog"

	"automfg/internal/core/ports"
)

// RelayReport counts what one relay run did.
type RelayReport struct {
	Published int
	Failed    int
}

// RelayOutboxCommandHandler moves committed domain events from the outbox to
// their consumers. Delivery is at-least-once: a notification is marked
// published only after the dispatcher returned, so a crash in between
// redelivers it and the consumers' ledger absorbs the duplicate.
type RelayOutboxCommandHandler struct {
	outbox     ports.OutboxStore
	dispatcher ports.NotificationDispatcher
	logger     *slog.Logger
}

func NewRelayOutboxCommandHandler(
	outbox ports.OutboxStore,
	dispatcher ports.NotificationDispatcher,
	logger *slog.Logger,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		outbox:     outbox,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle dispatches one batch in occurrence order. A failing notification is
// recorded and does not stop the batch; store errors do.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayReport, error) {
	if err := cmd.Validate(); err != nil {
		return RelayReport{}, err
	}

	pending, err := h.outbox.FetchPending(ctx, cmd.BatchSize(), cmd.MaxAttempts())
	if err != nil {
		return RelayReport{}, err
	}

	var report RelayReport
	for _, n := range pending {
		if dispatchErr := h.dispatcher.Dispatch(ctx, n); dispatchErr != nil {
			h.logger.WarnContext(ctx, "notification delivery failed",
				"notification_id", n.ID.String(),
				"event", n.Name.String(),
				"error", dispatchErr,
			)
			if err = h.outbox.MarkFailed(ctx, n.ID, dispatchErr); err != nil {
				return report, err
			}
			report.Failed++
			continue
		}

		if err = h.outbox.MarkPublished(ctx, n.ID); err != nil {
			return report, err
		}
		report.Published++
	}

	return report, nil
}
