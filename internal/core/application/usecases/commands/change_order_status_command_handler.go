package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies one step of the status machine. The write is conditional on the
// status that was read, so of two racing requests only one commits and the other
// gets errs.ErrConcurrentModification.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	expected := o.Status()
	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.UpdateStatus(ctx, o, expected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
