package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrToggleMenuItemAvailabilityCommandIsNotConstructed = errors.New(
	"ToggleMenuItemAvailabilityCommand must be created via NewToggleMenuItemAvailabilityCommand constructor",
)

// ToggleMenuItemAvailabilityCommand flips isAvailable without a payload.
type ToggleMenuItemAvailabilityCommand struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewToggleMenuItemAvailabilityCommand(id kernel.UUID) (ToggleMenuItemAvailabilityCommand, error) {
	if err := id.Validate(); err != nil {
		return ToggleMenuItemAvailabilityCommand{}, err
	}
	return ToggleMenuItemAvailabilityCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleMenuItemAvailabilityCommandIsNotConstructed)
}

func (c ToggleMenuItemAvailabilityCommand) ID() kernel.UUID {
	return c.id
}
