package production

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"automfg/internal/pkg/errs"
	"automfg/internal/pkg/guard"
)

var (
	ErrBomLineItemIsNotConstructed = errors.New("BomLineItem must be created via NewBomLineItem constructor")
	ErrBomSnapshotIsNotConstructed = errors.New("BomSnapshot must be created via NewBomSnapshot constructor")
)

// BomLineItem is one part requirement of a bill of materials together with
// the availability observed when the snapshot was taken.
type BomLineItem struct {
	partNumber    string
	description   string
	quantity      int
	unitOfMeasure string
	available     bool
	guard         guard.ConstructorGuard
}

func NewBomLineItem(partNumber, description string, quantity int, unitOfMeasure string, available bool) (BomLineItem, error) {
	partNumber = strings.TrimSpace(partNumber)
	unitOfMeasure = strings.TrimSpace(unitOfMeasure)

	var problems []error
	if partNumber == "" {
		problems = append(problems, errs.NewValueIsRequiredError("part number"))
	}
	if quantity <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity),
		))
	}
	if unitOfMeasure == "" {
		problems = append(problems, errs.NewValueIsRequiredError("unit of measure"))
	}
	if err := errors.Join(problems...); err != nil {
		return BomLineItem{}, err
	}

	return BomLineItem{
		partNumber:    partNumber,
		description:   description,
		quantity:      quantity,
		unitOfMeasure: unitOfMeasure,
		available:     available,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (i BomLineItem) PartNumber() string { return i.partNumber }
func (i BomLineItem) Description() string { return i.description }
func (i BomLineItem) Quantity() int { return i.quantity }
func (i BomLineItem) UnitOfMeasure() string { return i.unitOfMeasure }
func (i BomLineItem) Available() bool { return i.available }

func (i BomLineItem) Validate() error {
	return i.guard.Validate(ErrBomLineItemIsNotConstructed)
}

// BomSnapshot freezes the bill of materials of a production order at the
// moment the order was created. It always holds at least one line.
type BomSnapshot struct {
	items        []BomLineItem
	snapshotDate time.Time
	guard        guard.ConstructorGuard
}

func NewBomSnapshot(items []BomLineItem, snapshotDate time.Time) (BomSnapshot, error) {
	if len(items) == 0 {
		return BomSnapshot{}, errs.NewValueIsRequiredErrorWithCause(
			"bom snapshot", errors.New("at least one line item is required"),
		)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return BomSnapshot{}, err
		}
	}
	if snapshotDate.IsZero() {
		return BomSnapshot{}, errs.NewValueIsRequiredError("snapshot date")
	}

	out := make([]BomLineItem, len(items))
	copy(out, items)
	return BomSnapshot{
		items:        out,
		snapshotDate: snapshotDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (b BomSnapshot) Items() []BomLineItem {
	out := make([]BomLineItem, len(b.items))
	copy(out, b.items)
	return out
}

func (b BomSnapshot) SnapshotDate() time.Time {
	return b.snapshotDate
}

// IsFullyAvailable reports whether every line was available at snapshot time.
func (b BomSnapshot) IsFullyAvailable() bool {
	for _, item := range b.items {
		if !item.available {
			return false
		}
	}
	return true
}

// MissingParts returns the part numbers of unavailable lines in BOM order.
func (b BomSnapshot) MissingParts() []string {
	var missing []string
	for _, item := range b.items {
		if !item.available {
			missing = append(missing, item.partNumber)
		}
	}
	return missing
}

func (b BomSnapshot) Validate() error {
	return b.guard.Validate(ErrBomSnapshotIsNotConstructed)
}
