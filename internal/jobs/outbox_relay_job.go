package jobs

import (
	"context"
	"log/slog"
	"sync"

	"automfg/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RelayHandler delivers one batch of outbox notifications.
type RelayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayReport, error)
}

// OutboxRelayJob drains the outbox on a cron schedule. Runs never overlap:
// a tick that fires while the previous batch is still being delivered is
// skipped.
type OutboxRelayJob struct {
	handler  RelayHandler
	command  commands.RelayOutboxCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewOutboxRelayJob creates the job. schedule is a six field cron
// expression with seconds, e.g. "*/2 * * * * *".
func NewOutboxRelayJob(
	handler RelayHandler,
	command commands.RelayOutboxCommand,
	schedule string,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:  handler,
		command:  command,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// RunOnce relays one batch unless a batch is already in flight.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	defer func() {
		j.mu.Lock()
		j.running = false
		j.mu.Unlock()
	}()

	report, err := j.handler.Handle(ctx, j.command)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return
	}
	if report.Published > 0 || report.Failed > 0 {
		j.logger.InfoContext(ctx, "Outbox relayed",
			"published", report.Published,
			"failed", report.Failed,
		)
	}
}
