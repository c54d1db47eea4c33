package production

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"
	"automfg/internal/pkg/guard"
)

// StepStatus is the progress of a single assembly step.
type StepStatus int

const (
	StepUnknown StepStatus = iota
	StepPending
	StepInProgress
	StepCompleted
)

func (s StepStatus) String() string {
	switch s {
	case StepPending:
		return "PENDING"
	case StepInProgress:
		return "IN_PROGRESS"
	case StepCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

func (s StepStatus) Validate() error {
	if s < StepPending || s > StepCompleted {
		return errs.NewValueIsInvalidErrorWithCause("step status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

var (
	ErrAssemblyStepIsNotConstructed = errors.New("AssemblyStep must be created via its constructor")

	// ErrMaterialBatchRequired is the cause reported when a step is completed
	// without a traceable material batch.
	ErrMaterialBatchRequired = errors.New("material batch id is required for assembly step completion (BR-08)")
)

// AssemblyStep is one task at one work station. Once completed it records who
// did it, with which material batch and how long it took, and never changes
// again.
type AssemblyStep struct {
	id              kernel.UUID
	station         kernel.WorkStationID
	taskDescription string
	standardMinutes int
	status          StepStatus
	operatorID      string
	materialBatchID kernel.MaterialBatchID
	actualMinutes   int
	completedAt     time.Time
	guard           guard.ConstructorGuard
}

func newAssemblyStep(template AssemblyStepTemplate) *AssemblyStep {
	return &AssemblyStep{
		id:              kernel.NewUUID(),
		station:         template.station,
		taskDescription: template.taskDescription,
		standardMinutes: template.standardMinutes,
		status:          StepPending,
		guard:           guard.NewConstructorGuard(),
	}
}

// RestoreAssemblyStep reconstructs a step from persistent storage. Completion
// data is only accepted for completed steps.
func RestoreAssemblyStep(
	id kernel.UUID,
	station kernel.WorkStationID,
	taskDescription string,
	standardMinutes int,
	status StepStatus,
	operatorID string,
	materialBatchID string,
	actualMinutes int,
	completedAt time.Time,
) (*AssemblyStep, error) {
	template, err := NewAssemblyStepTemplate(station, taskDescription, standardMinutes)
	if err != nil {
		return nil, err
	}
	if err = errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	step := newAssemblyStep(template)
	step.id = id
	step.status = status
	if status == StepCompleted {
		batch, batchErr := kernel.NewMaterialBatchID(materialBatchID)
		if batchErr != nil {
			return nil, batchErr
		}
		step.operatorID = operatorID
		step.materialBatchID = batch
		step.actualMinutes = actualMinutes
		step.completedAt = completedAt
	}
	return step, nil
}

func (s *AssemblyStep) ID() kernel.UUID { return s.id }
func (s *AssemblyStep) Station() kernel.WorkStationID { return s.station }
func (s *AssemblyStep) TaskDescription() string { return s.taskDescription }
func (s *AssemblyStep) StandardMinutes() int { return s.standardMinutes }
func (s *AssemblyStep) Status() StepStatus { return s.status }
func (s *AssemblyStep) OperatorID() string { return s.operatorID }
func (s *AssemblyStep) MaterialBatchID() kernel.MaterialBatchID { return s.materialBatchID }
func (s *AssemblyStep) ActualMinutes() int { return s.actualMinutes }
func (s *AssemblyStep) IsCompleted() bool { return s.status == StepCompleted }

// CompletedAt returns the completion time, ok is false for open steps.
func (s *AssemblyStep) CompletedAt() (time.Time, bool) {
	return s.completedAt, s.status == StepCompleted
}

// IsOvertime reports whether the step took more than 1.5 times its standard
// duration (BR-09).
func (s *AssemblyStep) IsOvertime() bool {
	return s.status == StepCompleted && 2*s.actualMinutes > 3*s.standardMinutes
}

func (s *AssemblyStep) Validate() error {
	if s == nil {
		return ErrAssemblyStepIsNotConstructed
	}
	return s.guard.Validate(ErrAssemblyStepIsNotConstructed)
}

func (s *AssemblyStep) complete(operatorID, materialBatchID string, actualMinutes int) error {
	if s.status == StepCompleted {
		return errs.NewStateConflictErrorWithCause(
			"assembly step",
			fmt.Errorf("step %s is already completed and cannot be modified", s.id),
		)
	}
	operatorID = strings.TrimSpace(operatorID)
	if operatorID == "" {
		return errs.NewValueIsRequiredError("operator id")
	}
	batch, err := kernel.NewMaterialBatchID(materialBatchID)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("material batch id", ErrMaterialBatchRequired)
	}
	if actualMinutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"actual minutes", fmt.Errorf("%d is not greater than 0", actualMinutes),
		)
	}

	s.operatorID = operatorID
	s.materialBatchID = batch
	s.actualMinutes = actualMinutes
	s.status = StepCompleted
	s.completedAt = time.Now().UTC()
	return nil
}
