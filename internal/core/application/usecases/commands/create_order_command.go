package commands

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is a requested menu item and quantity.
type OrderLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

type CreateOrderCommand struct {
	customerName string
	tableNumber  int
	lines        []OrderLine

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(customerName string, tableNumber int, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setTableNumber(tableNumber),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerName() string { return c.customerName }
func (c CreateOrderCommand) TableNumber() int     { return c.tableNumber }

func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.customerName = trimmed
	return nil
}

func (c *CreateOrderCommand) setTableNumber(tableNumber int) error {
	if tableNumber < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"table number must be a positive number",
			fmt.Errorf("%d is less than 1", tableNumber),
		)
	}
	c.tableNumber = tableNumber
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	var err error
	for i, line := range lines {
		if vErr := line.MenuItemID.Validate(); vErr != nil {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].menuItemId", i), vErr,
			))
		}
		if line.Quantity < 1 {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity must be at least 1", i),
				fmt.Errorf("%d is less than 1", line.Quantity),
			))
		}
	}
	if err != nil {
		return err
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
