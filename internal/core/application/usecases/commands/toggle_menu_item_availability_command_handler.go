package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

type ToggleMenuItemAvailabilityCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewToggleMenuItemAvailabilityCommandHandler(uowFactory MenuUoWFactory) ToggleMenuItemAvailabilityCommandHandler {
	return ToggleMenuItemAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the item with its new availability.
func (h *ToggleMenuItemAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleMenuItemAvailabilityCommand,
) (*menu.MenuItem, error) {
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

	repo := uow.MenuItemRepository()
	item, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	item.ToggleAvailability()

	if err = repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
