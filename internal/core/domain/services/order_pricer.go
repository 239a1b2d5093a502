package services

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
)

// ErrMenuItemUnavailable is wrapped by MenuItemUnavailableError.
var ErrMenuItemUnavailable = errors.New("menu item is unavailable")

// MenuItemUnavailableError rejects an order line whose menu item is switched off.
type MenuItemUnavailableError struct {
	MenuItemID kernel.UUID
	Name       string
}

func NewMenuItemUnavailableError(id kernel.UUID, name string) *MenuItemUnavailableError {
	return &MenuItemUnavailableError{MenuItemID: id, Name: name}
}

func (e *MenuItemUnavailableError) Error() string {
	return fmt.Sprintf("%q is currently unavailable", e.Name)
}

func (e *MenuItemUnavailableError) Unwrap() error {
	return ErrMenuItemUnavailable
}

// Line is one requested order line together with the catalog entry it refers to.
type Line struct {
	Item     *menu.MenuItem
	Quantity int
}

// OrderPricer is a domain service that turns requested lines into order items
// priced from the catalog as it is right now.
//
// Business rules:
//   - Every referenced menu item must be available
//   - Each order item copies the menu item's current price
//   - Line order is preserved
//
// Example usage:
//
//	pricer := services.NewOrderPricer()
//	items, err := pricer.Price([]services.Line{{Item: salmon, Quantity: 2}})
//	if errors.Is(err, services.ErrMenuItemUnavailable) {
//	    // reject the order
//	}
//	o, err := order.NewOrder(kernel.NewUUID(), "Alice", 3, items)
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price fails on the first line that is invalid or unavailable.
func (p OrderPricer) Price(lines []Line) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for i, line := range lines {
		if err := line.Item.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		if !line.Item.IsAvailable() {
			return nil, NewMenuItemUnavailableError(line.Item.ID(), line.Item.Name())
		}

		item, err := order.NewItem(line.Item.ID(), line.Quantity, line.Item.Price())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
