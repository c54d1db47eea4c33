// Package messaging routes relayed outbox notifications to the consumers
// that react to them inside the process.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/ports"
)

// Consumer reacts to notifications of the events it subscribed to.
type Consumer interface {
	Name() string
	Consume(ctx context.Context, n ports.Notification) error
}

// Router implements ports.NotificationDispatcher. Every consumer subscribed
// to a notification's event receives it; their errors are joined so the relay
// retries the notification and the consumers' ledgers skip the ones that
// already succeeded.
type Router struct {
	routes map[event.Name][]Consumer
	logger *slog.Logger
}

func NewRouter(logger *slog.Logger) *Router {
	return &Router{
		routes: make(map[event.Name][]Consumer),
		logger: logger.With("component", "notification_router"),
	}
}

// Subscribe registers consumer for the given events.
func (r *Router) Subscribe(consumer Consumer, names ...event.Name) {
	for _, name := range names {
		r.routes[name] = append(r.routes[name], consumer)
	}
}

func (r *Router) Dispatch(ctx context.Context, n ports.Notification) error {
	consumers := r.routes[n.Name]
	if len(consumers) == 0 {
		r.logger.DebugContext(ctx, "no consumer for notification",
			"event", n.Name.String(),
			"notification_id", n.ID.String(),
		)
		return nil
	}

	var errs []error
	for _, consumer := range consumers {
		if err := consumer.Consume(ctx, n); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", consumer.Name(), err))
		}
	}
	return errors.Join(errs...)
}
