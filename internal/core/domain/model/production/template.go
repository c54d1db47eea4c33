package production

import (
	"errors"
	"fmt"
	"strings"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"
)

// AssemblyStepTemplate describes one task of a model's assembly routing.
type AssemblyStepTemplate struct {
	station         kernel.WorkStationID
	taskDescription string
	standardMinutes int
}

func NewAssemblyStepTemplate(
	station kernel.WorkStationID,
	taskDescription string,
	standardMinutes int,
) (AssemblyStepTemplate, error) {
	var problems []error
	if err := station.Validate(); err != nil {
		problems = append(problems, err)
	}
	if strings.TrimSpace(taskDescription) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("task description"))
	}
	if standardMinutes <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"standard minutes", fmt.Errorf("%d is not greater than 0", standardMinutes),
		))
	}
	if err := errors.Join(problems...); err != nil {
		return AssemblyStepTemplate{}, err
	}

	return AssemblyStepTemplate{
		station:         station,
		taskDescription: taskDescription,
		standardMinutes: standardMinutes,
	}, nil
}

func (t AssemblyStepTemplate) Station() kernel.WorkStationID { return t.station }
func (t AssemblyStepTemplate) TaskDescription() string { return t.taskDescription }
func (t AssemblyStepTemplate) StandardMinutes() int { return t.standardMinutes }
