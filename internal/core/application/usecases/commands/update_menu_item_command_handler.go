package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the item, applies the provided fields and saves it. A rename to a
// name held by another item fails with ObjectAlreadyExistsError.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*menu.MenuItem, error) {
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

	previousName := item.Name()
	if err = cmd.apply(item); err != nil {
		return nil, err
	}

	if item.Name() != previousName {
		id := item.ID()
		taken, existsErr := repo.ExistsByName(ctx, item.Name(), &id)
		if existsErr != nil {
			return nil, existsErr
		}
		if taken {
			return nil, errs.NewObjectAlreadyExistsError("menu item name", item.Name())
		}
	}

	if err = repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
