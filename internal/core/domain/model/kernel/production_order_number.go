package kernel

import (
	"fmt"
	"regexp"
	"time"

	"automfg/internal/pkg/errs"
)

var (
	productionOrderNumberPattern = regexp.MustCompile(`^PO-[A-Z]{2}-\d{6}-\d{5}$`)
	facilityCodePattern          = regexp.MustCompile(`^[A-Z]{2}$`)

	ErrProductionOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
		"ProductionOrderNumber must be created via NewProductionOrderNumber",
	)
)

// ProductionOrderNumber identifies a production order on the shop floor,
// formatted PO-XX-YYYYMM-NNNNN where XX is the two letter facility code.
type ProductionOrderNumber struct {
	value string
}

func NewProductionOrderNumber(value string) (ProductionOrderNumber, error) {
	if value == "" {
		return ProductionOrderNumber{}, errs.NewValueIsRequiredError("production order number")
	}
	if !productionOrderNumberPattern.MatchString(value) {
		return ProductionOrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"production order number",
			fmt.Errorf("%q does not match PO-XX-YYYYMM-NNNNN", value),
		)
	}
	return ProductionOrderNumber{value: value}, nil
}

// ProductionOrderNumberFor formats the number for a facility, the month of
// period and a monthly sequence in [1, MaxMonthlySequence].
func ProductionOrderNumberFor(facilityCode string, period time.Time, sequence int64) (ProductionOrderNumber, error) {
	if !facilityCodePattern.MatchString(facilityCode) {
		return ProductionOrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"facility code",
			fmt.Errorf("%q must be two upper-case letters", facilityCode),
		)
	}
	if sequence < 1 || sequence > MaxMonthlySequence {
		return ProductionOrderNumber{}, errs.NewValueIsOutOfRangeError(
			"production order number sequence", sequence, 1, MaxMonthlySequence,
		)
	}
	return NewProductionOrderNumber(fmt.Sprintf("PO-%s-%s-%05d", facilityCode, period.Format("200601"), sequence))
}

// FacilityCode returns the XX part of the number.
func (n ProductionOrderNumber) FacilityCode() string {
	if len(n.value) < 5 {
		return ""
	}
	return n.value[3:5]
}

func (n ProductionOrderNumber) String() string {
	return n.value
}

func (n ProductionOrderNumber) IsEqual(other ProductionOrderNumber) bool {
	return n.value == other.value
}

func (n ProductionOrderNumber) Validate() error {
	if n.value == "" {
		return ErrProductionOrderNumberIsNotConstructed
	}
	return nil
}
