package commands

import (
	"context"

	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/order"
	"automfg/internal/core/ports"
)

// ChangeOrderCommandHandler applies configuration changes. Within the same
// model the order is repriced and changed in place, counting against the
// change limit (BR-15). A model change runs as a two-step saga (BR-14): the
// old order is cancelled and committed, then a new order is placed through
// PlaceOrderCommandHandler. The two steps are separate transactions; when the
// second fails the old order stays cancelled and the error is returned.
type ChangeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.VehicleConfigGateway
	placeOrder PlaceOrderCommandHandler
}

func NewChangeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.VehicleConfigGateway,
	placeOrder PlaceOrderCommandHandler,
) ChangeOrderCommandHandler {
	return ChangeOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		placeOrder: placeOrder,
	}
}

// Handle returns the order that carries the new configuration.
func (h ChangeOrderCommandHandler) Handle(ctx context.Context, cmd ChangeOrderCommand) (OrderRef, error) {
	if err := cmd.Validate(); err != nil {
		return OrderRef{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderRef{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return OrderRef{}, err
	}

	colorCode := cmd.ColorCode()
	if colorCode == "" {
		colorCode = current.ColorCode()
	}
	optionCodes, given := cmd.OptionCodes()
	if !given {
		optionCodes = current.OptionCodes()
	}
	modelCode := cmd.ModelCode()
	if modelCode == "" || modelCode == current.ModelCode() {
		return h.changeInPlace(ctx, uow, orderRepo, current, colorCode, optionCodes)
	}

	// The replacement must be valid before the old order is given up.
	if err = checkConfiguration(ctx, h.catalog, modelCode, colorCode, optionCodes); err != nil {
		return OrderRef{}, err
	}

	if err = current.Cancel(); err != nil {
		return OrderRef{}, err
	}
	if err = orderRepo.Update(ctx, current); err != nil {
		return OrderRef{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return OrderRef{}, err
	}

	place, err := NewPlaceOrderCommand(
		kernel.NewUUID(),
		current.DealerID(),
		modelCode,
		colorCode,
		optionCodes,
		current.EstimatedDelivery(),
	)
	if err != nil {
		return OrderRef{}, err
	}

	return h.placeOrder.Handle(ctx, place)
}

func (h ChangeOrderCommandHandler) changeInPlace(
	ctx context.Context,
	uow OrderUoW,
	orderRepo ports.OrderRepository,
	current *order.Order,
	colorCode string,
	optionCodes []string,
) (OrderRef, error) {
	price, err := priceConfiguration(ctx, h.catalog, current.ModelCode(), colorCode, optionCodes)
	if err != nil {
		return OrderRef{}, err
	}

	if err = current.ChangeConfiguration(colorCode, optionCodes, price); err != nil {
		return OrderRef{}, err
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return OrderRef{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderRef{}, err
	}

	return OrderRef{ID: current.ID(), Number: current.Number()}, nil
}
