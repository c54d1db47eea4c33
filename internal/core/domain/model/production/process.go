package production

import (
	"errors"
	"fmt"
	"sort"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"
)

// ProcessStatus is the progress of the assembly process as a whole.
type ProcessStatus int

const (
	ProcessUnknown ProcessStatus = iota
	ProcessNotStarted
	ProcessInProgress
	ProcessCompleted
)

func (s ProcessStatus) String() string {
	switch s {
	case ProcessNotStarted:
		return "NOT_STARTED"
	case ProcessInProgress:
		return "IN_PROGRESS"
	case ProcessCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

func (s ProcessStatus) Validate() error {
	if s < ProcessNotStarted || s > ProcessCompleted {
		return errs.NewValueIsInvalidErrorWithCause("process status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ErrStationSequenceViolated is reported when a step is completed while a
// step at an earlier station is still open.
var ErrStationSequenceViolated = errors.New("previous station steps are not all completed (BR-07)")

// StepCompletion describes the consequences of completing one step.
type StepCompletion struct {
	// Overtime is set when the step took more than 1.5x its standard time.
	Overtime bool
	// StationCompleted is set when no open step remains at the step's station.
	StationCompleted bool
	// AssemblyCompleted is set when no open step remains at all.
	AssemblyCompleted bool
}

// AssemblyProcess is the ordered list of assembly steps of one vehicle.
// Steps of station N+1 may only be completed after all steps of station N.
type AssemblyProcess struct {
	status ProcessStatus
	steps  []*AssemblyStep
}

// NewAssemblyProcess creates one pending step per template, ordered by
// station sequence.
func NewAssemblyProcess(templates []AssemblyStepTemplate) (*AssemblyProcess, error) {
	if len(templates) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause(
			"assembly step templates", errors.New("at least one template is required"),
		)
	}

	steps := make([]*AssemblyStep, 0, len(templates))
	for _, template := range templates {
		if err := template.station.Validate(); err != nil {
			return nil, err
		}
		steps = append(steps, newAssemblyStep(template))
	}

	return newAssemblyProcess(ProcessNotStarted, steps), nil
}

// RestoreAssemblyProcess reconstructs a process from persistent storage.
func RestoreAssemblyProcess(status ProcessStatus, steps []*AssemblyStep) (*AssemblyProcess, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, errs.NewValueIsRequiredError("assembly steps")
	}
	for _, step := range steps {
		if err := step.Validate(); err != nil {
			return nil, err
		}
	}
	return newAssemblyProcess(status, steps), nil
}

func newAssemblyProcess(status ProcessStatus, steps []*AssemblyStep) *AssemblyProcess {
	ordered := make([]*AssemblyStep, len(steps))
	copy(ordered, steps)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].station.Sequence() < ordered[j].station.Sequence()
	})
	return &AssemblyProcess{status: status, steps: ordered}
}

func (p *AssemblyProcess) Status() ProcessStatus {
	return p.status
}

// Steps returns the steps ordered by station sequence.
func (p *AssemblyProcess) Steps() []*AssemblyStep {
	out := make([]*AssemblyStep, len(p.steps))
	copy(out, p.steps)
	return out
}

// Step looks a step up by id.
func (p *AssemblyProcess) Step(stepID kernel.UUID) (*AssemblyStep, error) {
	for _, step := range p.steps {
		if step.id.IsEqual(stepID) {
			return step, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("assembly step", stepID.String())
}

func (p *AssemblyProcess) Start() error {
	if p.status != ProcessNotStarted {
		return errs.NewStateConflictErrorWithCause(
			"assembly process",
			fmt.Errorf("cannot start assembly process: current status is %s", p.status),
		)
	}
	p.status = ProcessInProgress
	return nil
}

// CompleteStep completes one step after checking the station order.
//
// Errors:
//   - StateConflictError when the process is not in progress
//   - ObjectNotFoundError for an unknown step
//   - StateConflictError wrapping ErrStationSequenceViolated (BR-07)
//   - StateConflictError when the step is already completed
//   - ValidationError for a blank operator, blank batch (BR-08) or non-positive minutes
func (p *AssemblyProcess) CompleteStep(
	stepID kernel.UUID,
	operatorID string,
	materialBatchID string,
	actualMinutes int,
) (StepCompletion, error) {
	if p.status != ProcessInProgress {
		return StepCompletion{}, errs.NewStateConflictErrorWithCause(
			"assembly process",
			fmt.Errorf("cannot complete step: assembly process status is %s", p.status),
		)
	}

	step, err := p.Step(stepID)
	if err != nil {
		return StepCompletion{}, err
	}

	sequence := step.station.Sequence()
	if !p.allCompleted(func(s *AssemblyStep) bool { return s.station.Sequence() < sequence }) {
		return StepCompletion{}, errs.NewStateConflictErrorWithCause(
			fmt.Sprintf("station %d", sequence), ErrStationSequenceViolated,
		)
	}

	if err = step.complete(operatorID, materialBatchID, actualMinutes); err != nil {
		return StepCompletion{}, err
	}

	completion := StepCompletion{
		Overtime:          step.IsOvertime(),
		StationCompleted:  p.allCompleted(func(s *AssemblyStep) bool { return s.station.Sequence() == sequence }),
		AssemblyCompleted: p.allCompleted(func(*AssemblyStep) bool { return true }),
	}
	if completion.AssemblyCompleted {
		p.status = ProcessCompleted
	}
	return completion, nil
}

func (p *AssemblyProcess) allCompleted(filter func(*AssemblyStep) bool) bool {
	for _, step := range p.steps {
		if filter(step) && !step.IsCompleted() {
			return false
		}
	}
	return true
}
