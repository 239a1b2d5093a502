package commands

import (
	"restaurant/internal/core/domain/services"
)

// ErrMenuItemUnavailable and MenuItemUnavailableError are the order pricing
// failures surfaced by CreateOrderCommandHandler.
var ErrMenuItemUnavailable = services.ErrMenuItemUnavailable

type MenuItemUnavailableError = services.MenuItemUnavailableError

var NewMenuItemUnavailableError = services.NewMenuItemUnavailableError
