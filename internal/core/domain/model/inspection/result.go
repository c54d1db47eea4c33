package inspection

import (
	"fmt"

	"automfg/internal/pkg/errs"
)

// Result is the overall verdict of a completed inspection. It is derived
// from the item outcomes by the rules listed on QualityInspection.
type Result int

const (
	// ResultUnknown is the zero value of an inspection still in progress.
	ResultUnknown Result = iota

	// Passed releases the vehicle without remarks.
	Passed

	// ConditionalPass releases the vehicle with at most
	// MaxConditionalNonSafetyItems minor remarks on non-safety items.
	ConditionalPass

	// Failed sends the vehicle to rework once a second person reviews the
	// inspection.
	Failed
)

func getResultStrings() map[Result]string {
	return map[Result]string{
		ResultUnknown:   "UNKNOWN",
		Passed:          "PASSED",
		ConditionalPass: "CONDITIONAL_PASS",
		Failed:          "FAILED",
	}
}

func (r Result) String() string {
	if str, ok := getResultStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

func (r Result) Validate() error {
	if r < Passed || r > Failed {
		return errs.NewValueIsInvalidErrorWithCause("result is invalid", fmt.Errorf("%d is not a valid result", r))
	}
	return nil
}

// ReleasesVehicle reports whether the vehicle may leave the plant.
func (r Result) ReleasesVehicle() bool {
	return r == Passed || r == ConditionalPass
}

// ItemStatus is the outcome recorded for one checklist item. Every item
// starts Pending, is recorded once and must leave Pending before the
// inspection can be completed.
type ItemStatus int

const (
	ItemUnknown ItemStatus = iota
	ItemPending
	ItemPassed
	ItemFailed

	// ItemConditional marks a minor defect that does not block release on
	// its own.
	ItemConditional
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:     "UNKNOWN",
		ItemPending:     "PENDING",
		ItemPassed:      "PASSED",
		ItemFailed:      "FAILED",
		ItemConditional: "CONDITIONAL",
	}
}

func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s ItemStatus) Validate() error {
	if s < ItemPending || s > ItemConditional {
		return errs.NewValueIsInvalidErrorWithCause("item status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseItemStatus maps the upper-case name of a status back to its value.
func ParseItemStatus(s string) (ItemStatus, error) {
	for status, name := range getItemStatusStrings() {
		if status != ItemUnknown && name == s {
			return status, nil
		}
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause("item status", fmt.Errorf("%q is not a valid status", s))
}
