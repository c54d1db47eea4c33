package production

import (
	"fmt"

	"automfg/internal/pkg/errs"
)

// Status is the shop floor state of a production order.
//
//	MaterialPending
//	Scheduled ──> InProduction ──> AssemblyCompleted ──┬──> InspectionPassed
//	                                     ▲              └──> InspectionFailed
//	                                     │                         │
//	                                     └──── ReworkInProgress <──┘
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// MaterialPending marks an order whose bill of materials has parts that
	// were unavailable at intake. It cannot start production.
	MaterialPending

	// Scheduled is the initial status when every part was available.
	Scheduled

	// InProduction means the first assembly step has begun.
	InProduction

	// AssemblyCompleted is reached when the last step of the last station
	// completes. The vehicle now waits for quality inspection.
	AssemblyCompleted

	// InspectionPassed is final: the vehicle left the line.
	InspectionPassed

	// InspectionFailed follows a failed inspection until rework starts.
	InspectionFailed

	// ReworkInProgress returns to AssemblyCompleted when the rework order
	// completes, so the vehicle is inspected again.
	ReworkInProgress
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		MaterialPending:   "MATERIAL_PENDING",
		Scheduled:         "SCHEDULED",
		InProduction:      "IN_PRODUCTION",
		AssemblyCompleted: "ASSEMBLY_COMPLETED",
		InspectionPassed:  "INSPECTION_PASSED",
		InspectionFailed:  "INSPECTION_FAILED",
		ReworkInProgress:  "REWORK_IN_PROGRESS",
	}
}

// ParseStatus maps the upper-case name, e.g. "ASSEMBLY_COMPLETED", back to
// its value.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > ReworkInProgress {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) expect(operation string, want Status) error {
	if s != want {
		return errs.NewStateConflictErrorWithCause(
			"production order status",
			fmt.Errorf("cannot %s: order status is %s, expected %s", operation, s, want),
		)
	}
	return nil
}
