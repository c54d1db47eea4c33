package order

import (
	"fmt"

	"automfg/internal/pkg/errs"
)

// Status represents the commercial lifecycle state of an order.
//
// State transitions:
//
//	Placed ──> Scheduled ──> InProduction ──> Completed
//	   │           │
//	   └───────────┴──> Cancelled
//
// Transitions only move forward; cancellation is possible while the order has
// not entered production.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Placed is the initial status of an order accepted from a dealer.
	Placed

	// Scheduled indicates that a production order exists for the order.
	Scheduled

	// InProduction indicates that assembly of the vehicle has started.
	InProduction

	// Completed indicates that the vehicle passed its final inspection review.
	Completed

	// Cancelled is a final state reached from Placed or Scheduled.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "UNKNOWN",
		Placed:       "PLACED",
		Scheduled:    "SCHEDULED",
		InProduction: "IN_PRODUCTION",
		Completed:    "COMPLETED",
		Cancelled:    "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:       "PLACED",
		Scheduled:    "SCHEDULED",
		InProduction: "IN_PRODUCTION",
		Completed:    "COMPLETED",
		Cancelled:    "CANCELLED",
	}
}

// ActiveStatuses lists the statuses that count against a dealer's open order
// limit. A dealer may hold at most five active orders of one model; completed
// and cancelled orders no longer count.
func ActiveStatuses() []Status {
	return []Status{Placed, Scheduled, InProduction}
}

// ParseStatus maps the upper-case name used by the API, e.g. "IN_PRODUCTION",
// back to its value. Unknown names yield a ValueIsInvalidError.
//
// Example:
//
//	status, err := order.ParseStatus("SCHEDULED")
//	if err != nil {
//	    return err // 400 at the HTTP boundary
//	}
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined statuses.
// Unknown and values outside the enumeration are rejected.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// HasReached reports whether an order in this status has already arrived at
// target along the forward path Placed -> Scheduled -> InProduction ->
// Completed. Cancelled only reaches itself and is never reached by another
// status.
//
// Status synchronisation uses it to ignore milestones that arrive late:
//
//	InProduction.HasReached(Scheduled)  // true, the milestone is stale
//	Scheduled.HasReached(InProduction)  // false, the order must advance
//	Cancelled.HasReached(Scheduled)     // false
func (s Status) HasReached(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s == Cancelled || target == Cancelled {
		return s == target
	}
	return s >= target
}

// String returns the upper-case name of the status, e.g. "IN_PRODUCTION".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsModifiable reports whether the configuration of an order in this status
// may still change or the order may be cancelled. Once production starts the
// vehicle is being built and the order is frozen.
func (s Status) IsModifiable() bool {
	return s == Placed || s == Scheduled
}

// Schedule transitions Placed -> Scheduled. It is applied when manufacturing
// reports that a production order exists.
func (s Status) Schedule() (Status, error) {
	return s.transition(Scheduled, Placed)
}

// StartProduction transitions Scheduled -> InProduction when the first
// assembly step of the vehicle begins.
func (s Status) StartProduction() (Status, error) {
	return s.transition(InProduction, Scheduled)
}

// Complete transitions InProduction -> Completed after the final inspection
// of the vehicle is approved.
func (s Status) Complete() (Status, error) {
	return s.transition(Completed, InProduction)
}

// Cancel transitions Placed or Scheduled -> Cancelled. Any other source
// status yields a StateConflictError.
func (s Status) Cancel() (Status, error) {
	return s.transition(Cancelled, Placed, Scheduled)
}

// transition returns to when s is one of from, otherwise a
// StateConflictError naming both statuses.
func (s Status) transition(to Status, from ...Status) (Status, error) {
	for _, allowed := range from {
		if s == allowed {
			return to, nil
		}
	}
	return 0, errs.NewStateConflictErrorWithCause(
		"order status",
		fmt.Errorf("cannot move from %s to %s", s.String(), to.String()),
	)
}
