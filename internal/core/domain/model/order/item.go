package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order. UnitPrice is the menu price captured when the
// order was placed; later catalog edits never reach it.
type Item struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money

	isConstructed bool
}

func NewItem(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	return Item{
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) MenuItemID() kernel.UUID { return i.menuItemID }
func (i Item) Quantity() int           { return i.quantity }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i Item) Subtotal() kernel.Money  { return i.unitPrice.Mul(i.quantity) }
