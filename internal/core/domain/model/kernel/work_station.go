package kernel

import (
	"fmt"
	"strings"

	"automfg/internal/pkg/errs"
)

var ErrWorkStationIDIsNotConstructed = errs.NewValueIsRequiredError("WorkStationID must be created via NewWorkStationID")

// WorkStationID names a station of the assembly line together with its
// position (sequence) on the line. Sequences start at 1.
type WorkStationID struct {
	code     string
	sequence int
}

func NewWorkStationID(code string, sequence int) (WorkStationID, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return WorkStationID{}, errs.NewValueIsRequiredError("work station code")
	}
	if sequence < 1 {
		return WorkStationID{}, errs.NewValueIsInvalidErrorWithCause(
			"work station sequence",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}
	return WorkStationID{code: code, sequence: sequence}, nil
}

func (w WorkStationID) Code() string {
	return w.code
}

func (w WorkStationID) Sequence() int {
	return w.sequence
}

func (w WorkStationID) IsEqual(other WorkStationID) bool {
	return w.code == other.code && w.sequence == other.sequence
}

func (w WorkStationID) String() string {
	return fmt.Sprintf("%s#%d", w.code, w.sequence)
}

func (w WorkStationID) Validate() error {
	if w.code == "" {
		return ErrWorkStationIDIsNotConstructed
	}
	return nil
}
