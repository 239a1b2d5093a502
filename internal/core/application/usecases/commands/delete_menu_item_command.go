package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand removes a menu item. Existing orders keep their lines.
type DeleteMenuItemCommand struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(id kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteMenuItemCommand{}, err
	}
	return DeleteMenuItemCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) ID() kernel.UUID {
	return c.id
}
