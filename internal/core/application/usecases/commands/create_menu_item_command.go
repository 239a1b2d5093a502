package commands

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemInput carries raw request values. Price is a pointer so that a
// missing price can be told apart from a free item.
type CreateMenuItemInput struct {
	Name            string
	Description     string
	Category        string
	Price           *float64
	Ingredients     []string
	IsAvailable     *bool
	PreparationTime int
	ImageURL        string
}

// CreateMenuItemCommand represents a request to add a menu item to the catalog.
//
// Example:
//
//	price := 24.99
//	cmd, err := NewCreateMenuItemCommand(CreateMenuItemInput{
//	    Name:     "Grilled Salmon",
//	    Category: "Main Course",
//	    Price:    &price,
//	})
//	item, err := handler.Handle(ctx, cmd)
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	name            string
	description     string
	category        menu.Category
	price           kernel.Money
	ingredients     []string
	isAvailable     bool
	preparationTime int
	imageURL        string

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand validates input and joins every failure into one error.
func NewCreateMenuItemCommand(input CreateMenuItemInput) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		description: input.Description,
		ingredients: input.Ingredients,
		isAvailable: true,
		imageURL:    input.ImageURL,
		guard:       guard.NewConstructorGuard(),
	}
	if input.IsAvailable != nil {
		cmd.isAvailable = *input.IsAvailable
	}

	if err := errors.Join(
		cmd.setName(input.Name),
		cmd.setCategory(input.Category),
		cmd.setPrice(input.Price),
		cmd.setPreparationTime(input.PreparationTime),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Name() string            { return c.name }
func (c CreateMenuItemCommand) Description() string     { return c.description }
func (c CreateMenuItemCommand) Category() menu.Category { return c.category }
func (c CreateMenuItemCommand) Price() kernel.Money     { return c.price }
func (c CreateMenuItemCommand) Ingredients() []string   { return c.ingredients }
func (c CreateMenuItemCommand) IsAvailable() bool       { return c.isAvailable }
func (c CreateMenuItemCommand) PreparationTime() int    { return c.preparationTime }
func (c CreateMenuItemCommand) ImageURL() string        { return c.imageURL }

func (c *CreateMenuItemCommand) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	c.name = trimmed
	return nil
}

func (c *CreateMenuItemCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	parsed, err := menu.ParseCategory(category)
	if err != nil {
		return err
	}
	c.category = parsed
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price *float64) error {
	if price == nil {
		return errs.NewValueIsRequiredError("price")
	}
	money, err := kernel.MoneyFromFloat(*price)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price must be non-negative", err)
	}
	c.price = money
	return nil
}

func (c *CreateMenuItemCommand) setPreparationTime(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparation time must be non-negative",
			fmt.Errorf("%d is less than 0", minutes),
		)
	}
	c.preparationTime = minutes
	return nil
}
