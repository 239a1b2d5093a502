package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

// CreateMenuItemCommandHandler adds a menu item after checking that its name is free.
// The check is a fast path for a readable error; the storage unique index still
// catches a concurrent insert of the same name.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menu.MenuItem, error) {
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
	taken, err := repo.ExistsByName(ctx, cmd.Name(), nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewObjectAlreadyExistsError("menu item name", cmd.Name())
	}

	item, err := menu.NewMenuItem(kernel.NewUUID(), cmd.Name(), cmd.Category(), cmd.Price())
	if err != nil {
		return nil, err
	}
	item.SetDescription(cmd.Description())
	item.SetIngredients(cmd.Ingredients())
	item.SetAvailability(cmd.IsAvailable())
	item.SetImageURL(cmd.ImageURL())
	if err = item.SetPreparationTime(cmd.PreparationTime()); err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
