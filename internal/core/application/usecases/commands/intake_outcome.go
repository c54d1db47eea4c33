package commands

// IntakeOutcome reports what an inbound notification handler did with a
// notification. A duplicate is a successful no-op, never an error.
type IntakeOutcome int

const (
	// IntakeApplied means the notification changed state.
	IntakeApplied IntakeOutcome = iota + 1

	// IntakeSkipped means the notification was already processed or has
	// nothing left to change.
	IntakeSkipped
)

func (o IntakeOutcome) String() string {
	switch o {
	case IntakeApplied:
		return "APPLIED"
	case IntakeSkipped:
		return "SKIPPED"
	default:
		return "UNKNOWN"
	}
}

// Consumer names identify ledger entries.
const (
	IntakeConsumerName     = "production-order-intake"
	StatusSyncConsumerName = "order-status-sync"
)
