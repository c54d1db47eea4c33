package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"automfg/internal/core/domain/model/event"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/pkg/errs"
	"automfg/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// MinDeliveryLeadDays is the minimal distance between order date and
	// estimated delivery date (BR-03).
	MinDeliveryLeadDays = 45

	// MaxConfigurationChanges bounds how often a configuration may change (BR-15).
	MaxConfigurationChanges = 3
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrChangeLimitReached reports a configuration change beyond MaxConfigurationChanges.
	ErrChangeLimitReached = errors.New("configuration change limit of 3 reached (BR-15)")
)

// Order is the aggregate root of the commercial context. It records what a
// dealer ordered, what it costs and how far the vehicle has progressed.
//
// Order follows these invariants:
//   - order number, dealer, model and color are always present
//   - estimated delivery is never earlier than order date + 45 days
//   - change count stays within [0, MaxConfigurationChanges]
//   - status transitions only move forward, except cancellation
//
// Every state change records a domain event in the order's buffer.
type Order struct {
	id                kernel.UUID
	number            kernel.OrderNumber
	dealerID          string
	modelCode         string
	colorCode         string
	optionCodes       []string
	status            Status
	estimatedDelivery time.Time
	priceQuote        decimal.Decimal
	changeCount       int
	orderDate         time.Time
	createdAt         time.Time
	updatedAt         time.Time
	version           int

	events event.Buffer
	guard  guard.ConstructorGuard
}

// NewOrder places a new order dated today. A requested delivery date earlier
// than today + MinDeliveryLeadDays (or a zero date) is moved to that minimum.
//
// Example:
//
//	number, _ := kernel.OrderNumberFor(time.Now(), 1)
//	o, err := order.NewOrder(kernel.NewUUID(), number, "DEALER-7", "MODEL-S", "PEARL-WHITE",
//	    []string{"AUTOPILOT"}, time.Time{}, decimal.RequireFromString("48500"))
//	if err != nil {
//	    return err
//	}
//	// o.Status() == order.Placed, o.DomainEvents() holds OrderPlaced
func NewOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	dealerID string,
	modelCode string,
	colorCode string,
	optionCodes []string,
	requestedDelivery time.Time,
	priceQuote decimal.Decimal,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:    Placed,
		orderDate: truncateToDate(now),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setDealerID(dealerID),
		o.setModelCode(modelCode),
		o.setColorCode(colorCode),
		o.setPriceQuote(priceQuote),
	); err != nil {
		return nil, err
	}
	o.optionCodes = normalizeOptions(optionCodes)
	o.estimatedDelivery = clampDelivery(o.orderDate, requestedDelivery)

	o.events.Record(event.NewOrderPlaced(
		o.id, o.number.String(), o.dealerID, o.modelCode, o.colorCode, o.optionCodes,
	))
	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage. No event is
// recorded.
func RestoreOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	dealerID string,
	modelCode string,
	colorCode string,
	optionCodes []string,
	status Status,
	estimatedDelivery time.Time,
	priceQuote decimal.Decimal,
	changeCount int,
	orderDate time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		optionCodes:       normalizeOptions(optionCodes),
		estimatedDelivery: estimatedDelivery,
		orderDate:         orderDate,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		version:           version,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setDealerID(dealerID),
		o.setModelCode(modelCode),
		o.setColorCode(colorCode),
		o.setPriceQuote(priceQuote),
		o.setStatus(status),
		o.setChangeCount(changeCount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) Number() kernel.OrderNumber { return o.number }
func (o *Order) DealerID() string { return o.dealerID }
func (o *Order) ModelCode() string { return o.modelCode }
func (o *Order) ColorCode() string { return o.colorCode }
func (o *Order) Status() Status { return o.status }
func (o *Order) EstimatedDelivery() time.Time { return o.estimatedDelivery }
func (o *Order) PriceQuote() decimal.Decimal { return o.priceQuote }
func (o *Order) ChangeCount() int { return o.changeCount }
func (o *Order) OrderDate() time.Time { return o.orderDate }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
func (o *Order) Version() int { return o.version }
func (o *Order) DomainEvents() []event.DomainEvent { return o.events.Events() }

// OptionCodes returns a copy of the ordered option package codes.
func (o *Order) OptionCodes() []string {
	out := make([]string, len(o.optionCodes))
	copy(out, o.optionCodes)
	return out
}

// ClearDomainEvents empties the event buffer once the events were persisted.
func (o *Order) ClearDomainEvents() {
	o.events.Clear()
}

// IncrementVersion is called by repositories after a successful write.
func (o *Order) IncrementVersion() {
	o.version++
}

// IsModifiable reports whether configuration changes and cancellation are
// still allowed.
func (o *Order) IsModifiable() bool {
	return o.status.IsModifiable()
}

// ChangeConfiguration replaces color, options and price of an order that has
// not entered production. Model changes are not handled here: they cancel
// the order and place a new one.
//
// Errors:
//   - StateConflictError when the order is not Placed or Scheduled
//   - StateConflictError when MaxConfigurationChanges was already reached (BR-15)
//   - ValidationError for a blank color or negative price
func (o *Order) ChangeConfiguration(colorCode string, optionCodes []string, priceQuote decimal.Decimal) error {
	if !o.status.IsModifiable() {
		return errs.NewStateConflictErrorWithCause(
			"order status",
			fmt.Errorf("configuration of an order in %s status cannot change", o.status),
		)
	}
	if o.changeCount >= MaxConfigurationChanges {
		return errs.NewStateConflictErrorWithCause("change count", ErrChangeLimitReached)
	}

	colorCode = strings.TrimSpace(colorCode)
	if colorCode == "" {
		return errs.NewValueIsRequiredError("color code")
	}
	if priceQuote.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price quote", fmt.Errorf("%s is negative", priceQuote))
	}

	o.colorCode = colorCode
	o.optionCodes = normalizeOptions(optionCodes)
	o.priceQuote = priceQuote
	o.changeCount++
	o.touch()

	o.events.Record(event.NewOrderChanged(o.id, o.colorCode, o.optionCodes))
	return nil
}

// Cancel moves a Placed or Scheduled order to Cancelled.
func (o *Order) Cancel() error {
	status, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = status
	o.touch()

	o.events.Record(event.NewOrderCancelled(o.id, o.number.String()))
	return nil
}

// MarkScheduled records that a production order was created for the order.
func (o *Order) MarkScheduled() error {
	return o.advance(Status.Schedule)
}

// MarkInProduction records that assembly has started.
func (o *Order) MarkInProduction() error {
	return o.advance(Status.StartProduction)
}

// MarkCompleted records that the vehicle was released after inspection.
func (o *Order) MarkCompleted() error {
	return o.advance(Status.Complete)
}

func (o *Order) advance(transition func(Status) (Status, error)) error {
	status, err := transition(o.status)
	if err != nil {
		return err
	}
	o.status = status
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setDealerID(dealerID string) error {
	dealerID = strings.TrimSpace(dealerID)
	if dealerID == "" {
		return errs.NewValueIsRequiredError("dealer id")
	}
	o.dealerID = dealerID
	return nil
}

func (o *Order) setModelCode(modelCode string) error {
	modelCode = strings.TrimSpace(modelCode)
	if modelCode == "" {
		return errs.NewValueIsRequiredError("model code")
	}
	o.modelCode = modelCode
	return nil
}

func (o *Order) setColorCode(colorCode string) error {
	colorCode = strings.TrimSpace(colorCode)
	if colorCode == "" {
		return errs.NewValueIsRequiredError("color code")
	}
	o.colorCode = colorCode
	return nil
}

func (o *Order) setPriceQuote(priceQuote decimal.Decimal) error {
	if priceQuote.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price quote", fmt.Errorf("%s is negative", priceQuote))
	}
	o.priceQuote = priceQuote
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setChangeCount(changeCount int) error {
	if changeCount < 0 || changeCount > MaxConfigurationChanges {
		return errs.NewValueIsOutOfRangeError("change count", changeCount, 0, MaxConfigurationChanges)
	}
	o.changeCount = changeCount
	return nil
}

func clampDelivery(orderDate, requested time.Time) time.Time {
	earliest := orderDate.AddDate(0, 0, MinDeliveryLeadDays)
	if requested.IsZero() {
		return earliest
	}
	requested = truncateToDate(requested.UTC())
	if requested.Before(earliest) {
		return earliest
	}
	return requested
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func normalizeOptions(optionCodes []string) []string {
	out := make([]string, 0, len(optionCodes))
	for _, code := range optionCodes {
		if code = strings.TrimSpace(code); code != "" {
			out = append(out, code)
		}
	}
	return out
}
