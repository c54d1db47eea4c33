package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"automfg/internal/core/application/usecases/commands"
	"automfg/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRelayHandler struct{ mock.Mock }

func (m *MockRelayHandler) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayReport, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RelayReport), args.Error(1)
}

type MockJob struct{ mock.Mock }

func (m *MockJob) Start() error { return m.Called().Error(0) }
func (m *MockJob) Stop() { m.Called() }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOutboxRelayJob_RunOnce(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayOutboxCommand(50, 5)
	require.NoError(t, err)

	handler := new(MockRelayHandler)
	handler.On("Handle", ctx, cmd).Return(commands.RelayReport{Published: 3}, nil).Once()
	handler.On("Handle", ctx, cmd).Return(commands.RelayReport{}, errors.New("database is gone")).Once()

	job := jobs.NewOutboxRelayJob(handler, cmd, "*/2 * * * * *", discardLogger())
	job.RunOnce(ctx)
	job.RunOnce(ctx)

	handler.AssertExpectations(t)
}

func TestOutboxRelayJob_StartRejectsBadSchedule(t *testing.T) {
	cmd, _ := commands.NewRelayOutboxCommand(50, 5)
	job := jobs.NewOutboxRelayJob(new(MockRelayHandler), cmd, "every now and then", discardLogger())

	require.Error(t, job.Start())
}

func TestOutboxRelayJob_StartAndStop(t *testing.T) {
	cmd, _ := commands.NewRelayOutboxCommand(50, 5)
	handler := new(MockRelayHandler)
	handler.On("Handle", mock.Anything, cmd).Return(commands.RelayReport{}, nil).Maybe()

	job := jobs.NewOutboxRelayJob(handler, cmd, "@every 1h", discardLogger())
	require.NoError(t, job.Start())
	job.Stop()
}

func TestJobManager_StartAllStopsStartedJobsOnFailure(t *testing.T) {
	first, second := new(MockJob), new(MockJob)
	first.On("Start").Return(nil).Once()
	first.On("Stop").Return().Once()
	second.On("Start").Return(errors.New("bad schedule")).Once()

	manager := jobs.NewJobManager()
	manager.Register("first", first)
	manager.Register("second", second)

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start second job")
	first.AssertExpectations(t)
	second.AssertNotCalled(t, "Stop")
}

func TestJobManager_StopAllInReverseOrder(t *testing.T) {
	var stopped []string
	first, second := new(MockJob), new(MockJob)
	first.On("Start").Return(nil).Once()
	second.On("Start").Return(nil).Once()
	first.On("Stop").Run(func(mock.Arguments) { stopped = append(stopped, "first") }).Return().Once()
	second.On("Stop").Run(func(mock.Arguments) { stopped = append(stopped, "second") }).Return().Once()

	manager := jobs.NewJobManager()
	manager.Register("first", first)
	manager.Register("second", second)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Equal(t, []string{"second", "first"}, stopped)
}
