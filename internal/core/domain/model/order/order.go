package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order pipeline. It owns its line items and
// the status state machine.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and an immutable order number
//   - Must contain at least one line item
//   - Total amount is the rounded sum of the line subtotals, fixed at creation
//   - Customer name is non-empty and stored trimmed
//   - Table number is positive
//   - Status changes only along the transitions defined by Status
//
// Orders are never deleted; Cancelled is the way out of the pipeline.
type Order struct {
	id           kernel.UUID
	number       string
	items        []Item
	totalAmount  kernel.Money
	status       Status
	customerName string
	tableNumber  int
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewOrder creates a Pending order and fixes its total from the given line items.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerName: trimmed, must not be empty
//   - tableNumber: must be greater than 0
//   - items: at least one line, each already carrying its frozen unit price
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: every validation failure joined together
//
// Example:
//
//	line, _ := order.NewItem(salmonID, 1, salmonPrice)
//	o, err := order.NewOrder(kernel.NewUUID(), "Alice", 3, []order.Item{line})
func NewOrder(id kernel.UUID, customerName string, tableNumber int, items []Item) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setTableNumber(tableNumber),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	o.number = NewNumber(now)

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. The stored total is kept as is.
func RestoreOrder(
	id kernel.UUID,
	number string,
	items []Item,
	totalAmount kernel.Money,
	status Status,
	customerName string,
	tableNumber int,
	createdAt time.Time,
	updatedAt time.Time,
) *Order {
	return &Order{
		id:            id,
		number:        number,
		items:         items,
		totalAmount:   totalAmount,
		status:        status,
		customerName:  customerName,
		tableNumber:   tableNumber,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

// Validate ensures the Order instance was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID           { return o.id }
func (o *Order) Number() string            { return o.number }
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }
func (o *Order) Status() Status            { return o.status }
func (o *Order) CustomerName() string      { return o.customerName }
func (o *Order) TableNumber() int          { return o.tableNumber }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }

// Items returns a copy of the line items in the order they were placed.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// ChangeStatus moves the order to target if the state machine allows it.
// On error the order is left untouched.
//
// Example:
//
//	if err := o.ChangeStatus(order.Preparing); err != nil {
//	    // errors.Is(err, order.ErrInvalidTransition) for a forbidden move
//	}
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = trimmed
	return nil
}

func (o *Order) setTableNumber(tableNumber int) error {
	if tableNumber < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"table number is invalid",
			fmt.Errorf("%d is not greater than 0", tableNumber),
		)
	}
	o.tableNumber = tableNumber
	return nil
}

// setItems stores the lines and computes the total. It is only called during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	total := kernel.ZeroMoney()
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		total = total.Add(item.Subtotal())
	}
	o.items = slices.Clone(items)
	o.totalAmount = total
	return nil
}
