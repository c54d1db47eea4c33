package kernel

import (
	"fmt"
	"regexp"
	"time"

	"automfg/internal/pkg/errs"
)

// MaxMonthlySequence is the largest sequence that fits the five digit suffix
// of order and production order numbers.
const MaxMonthlySequence = 99999

var (
	orderNumberPattern = regexp.MustCompile(`^ORD-\d{6}-\d{5}$`)

	ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError("OrderNumber must be created via NewOrderNumber")
)

// OrderNumber is the dealer-facing number of a commercial order, formatted
// ORD-YYYYMM-NNNNN.
type OrderNumber struct {
	value string
}

func NewOrderNumber(value string) (OrderNumber, error) {
	if value == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number")
	}
	if !orderNumberPattern.MatchString(value) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q does not match ORD-YYYYMM-NNNNN", value),
		)
	}
	return OrderNumber{value: value}, nil
}

// OrderNumberFor formats the number for the month of period and a monthly
// sequence in [1, MaxMonthlySequence].
func OrderNumberFor(period time.Time, sequence int64) (OrderNumber, error) {
	if sequence < 1 || sequence > MaxMonthlySequence {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("order number sequence", sequence, 1, MaxMonthlySequence)
	}
	return NewOrderNumber(fmt.Sprintf("ORD-%s-%05d", period.Format("200601"), sequence))
}

func (n OrderNumber) String() string {
	return n.value
}

func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
