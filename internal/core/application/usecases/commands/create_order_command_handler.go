package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// CreateOrderCommandHandler prices every line from the current catalog and
// persists a Pending order. Unit prices are copied into the order so later
// menu edits do not change it.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.OrderPricer
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle fails with errs.ObjectNotFoundError for an unknown menu item and with
// MenuItemUnavailableError for an item that is switched off. Nothing is stored
// in either case.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()
	lines := cmd.Lines()
	priced := make([]services.Line, 0, len(lines))
	for _, line := range lines {
		menuItem, err := menuRepo.Get(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		priced = append(priced, services.Line{Item: menuItem, Quantity: line.Quantity})
	}

	items, err := h.pricer.Price(priced)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerName(), cmd.TableNumber(), items)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
