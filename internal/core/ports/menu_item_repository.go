// Package ports defines the persistence contracts of the restaurant domain.
// Adapters in internal/adapters/out implement them; use cases depend only on
// these interfaces.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu item aggregates.
type MenuItemRepository interface {
	// Add persists a new menu item.
	// Returns errs.ObjectAlreadyExistsError when the name is already taken.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update persists every attribute of an existing menu item.
	// Returns errs.ObjectNotFoundError when the item does not exist and
	// errs.ObjectAlreadyExistsError when the new name is already taken.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Delete removes the menu item. Order lines that reference it are left untouched.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a menu item by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// ExistsByName reports whether another item already uses name (exact, case-sensitive).
	// excludeID, when set, skips the item being renamed.
	ExistsByName(ctx context.Context, name string, excludeID *kernel.UUID) (bool, error)
}
