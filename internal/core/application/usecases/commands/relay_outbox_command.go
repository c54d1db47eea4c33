package commands

import (
	"errors"

	"automfg/internal/pkg/errs"
	"automfg/internal/pkg/guard"
)

const (
	MaxRelayBatchSize   = 1000
	MaxRelayMaxAttempts = 100
)

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand delivers up to BatchSize pending notifications. Messages
// that failed MaxAttempts times are parked and no longer fetched.
type RelayOutboxCommand struct {
	batchSize   int
	maxAttempts int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize, maxAttempts int) (RelayOutboxCommand, error) {
	var rangeErrs []error
	if batchSize < 1 || batchSize > MaxRelayBatchSize {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, MaxRelayBatchSize))
	}
	if maxAttempts < 1 || maxAttempts > MaxRelayMaxAttempts {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError("max attempts", maxAttempts, 1, MaxRelayMaxAttempts))
	}
	if err := errors.Join(rangeErrs...); err != nil {
		return RelayOutboxCommand{}, err
	}

	return RelayOutboxCommand{
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int { return c.batchSize }
func (c RelayOutboxCommand) MaxAttempts() int { return c.maxAttempts }
