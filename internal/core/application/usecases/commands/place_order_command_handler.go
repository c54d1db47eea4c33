package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/order"
	"automfg/internal/core/ports"
	"automfg/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxActiveOrdersPerDealerModel caps open orders of one dealer for one model (BR-01).
const MaxActiveOrdersPerDealerModel = 50

var ErrActiveOrderLimitReached = errors.New("dealer reached the limit of 50 active orders for the model (BR-01)")

// OrderRef identifies the order a command ended up working on. A model
// change replaces the order, so callers must not assume the id they sent.
type OrderRef struct {
	ID     kernel.UUID
	Number kernel.OrderNumber
}

// PlaceOrderCommandHandler validates the configuration against the vehicle
// catalog, prices it, numbers the order and stores it in PLACED status.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.VehicleConfigGateway
	sequences  ports.SequenceAllocator
}

func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.VehicleConfigGateway,
	sequences ports.SequenceAllocator,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		sequences:  sequences,
	}
}

// Handle places the order and returns its identity.
//
// Errors:
//   - ValidationError when the catalog rejects the configuration
//   - StateConflictError wrapping ErrActiveOrderLimitReached
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (OrderRef, error) {
	if err := cmd.Validate(); err != nil {
		return OrderRef{}, err
	}

	price, err := priceConfiguration(ctx, h.catalog, cmd.ModelCode(), cmd.ColorCode(), cmd.OptionCodes())
	if err != nil {
		return OrderRef{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return OrderRef{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	active, err := orderRepo.CountByDealerAndModelAndStatuses(ctx, cmd.DealerID(), cmd.ModelCode(), order.ActiveStatuses())
	if err != nil {
		return OrderRef{}, err
	}
	if active >= MaxActiveOrdersPerDealerModel {
		return OrderRef{}, errs.NewStateConflictErrorWithCause("active orders", ErrActiveOrderLimitReached)
	}

	now := time.Now().UTC()
	sequence, err := h.sequences.Next(ctx, orderSequenceName(now))
	if err != nil {
		return OrderRef{}, err
	}
	number, err := kernel.OrderNumberFor(now, sequence)
	if err != nil {
		return OrderRef{}, err
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.DealerID(),
		cmd.ModelCode(),
		cmd.ColorCode(),
		cmd.OptionCodes(),
		cmd.RequestedDelivery(),
		price,
	)
	if err != nil {
		return OrderRef{}, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return OrderRef{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderRef{}, err
	}

	return OrderRef{ID: placed.ID(), Number: placed.Number()}, nil
}

// checkConfiguration turns catalog violations into a ValidationError.
func checkConfiguration(
	ctx context.Context,
	catalog ports.VehicleConfigGateway,
	modelCode, colorCode string,
	optionCodes []string,
) error {
	validation, err := catalog.ValidateConfiguration(ctx, modelCode, colorCode, optionCodes)
	if err != nil {
		return err
	}
	if !validation.Valid {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle configuration",
			errors.New(strings.Join(validation.Violations, "; ")),
		)
	}
	return nil
}

// priceConfiguration rejects configurations the catalog does not allow and
// returns the price of an allowed one.
func priceConfiguration(
	ctx context.Context,
	catalog ports.VehicleConfigGateway,
	modelCode, colorCode string,
	optionCodes []string,
) (decimal.Decimal, error) {
	if err := checkConfiguration(ctx, catalog, modelCode, colorCode, optionCodes); err != nil {
		return decimal.Decimal{}, err
	}
	return catalog.CalculatePrice(ctx, modelCode, optionCodes)
}
