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

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemInput is a partial update: nil fields are left as they are.
type UpdateMenuItemInput struct {
	Name            *string
	Description     *string
	Category        *string
	Price           *float64
	Ingredients     *[]string
	IsAvailable     *bool
	PreparationTime *int
	ImageURL        *string
}

// UpdateMenuItemCommand changes only the attributes present in the request.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	id              kernel.UUID
	name            *string
	description     *string
	category        *menu.Category
	price           *kernel.Money
	ingredients     *[]string
	isAvailable     *bool
	preparationTime *int
	imageURL        *string

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(id kernel.UUID, input UpdateMenuItemInput) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		description: input.Description,
		ingredients: input.Ingredients,
		isAvailable: input.IsAvailable,
		imageURL:    input.ImageURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setName(input.Name),
		cmd.setCategory(input.Category),
		cmd.setPrice(input.Price),
		cmd.setPreparationTime(input.PreparationTime),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) ID() kernel.UUID { return c.id }

// apply copies every provided field onto item.
func (c UpdateMenuItemCommand) apply(item *menu.MenuItem) error {
	var err error
	if c.name != nil {
		err = errors.Join(err, item.SetName(*c.name))
	}
	if c.category != nil {
		err = errors.Join(err, item.SetCategory(*c.category))
	}
	if c.preparationTime != nil {
		err = errors.Join(err, item.SetPreparationTime(*c.preparationTime))
	}
	if c.price != nil {
		item.SetPrice(*c.price)
	}
	if c.description != nil {
		item.SetDescription(*c.description)
	}
	if c.ingredients != nil {
		item.SetIngredients(*c.ingredients)
	}
	if c.isAvailable != nil {
		item.SetAvailability(*c.isAvailable)
	}
	if c.imageURL != nil {
		item.SetImageURL(*c.imageURL)
	}
	return err
}

func (c *UpdateMenuItemCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *UpdateMenuItemCommand) setName(name *string) error {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	c.name = &trimmed
	return nil
}

func (c *UpdateMenuItemCommand) setCategory(category *string) error {
	if category == nil {
		return nil
	}
	parsed, err := menu.ParseCategory(*category)
	if err != nil {
		return err
	}
	c.category = &parsed
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price *float64) error {
	if price == nil {
		return nil
	}
	money, err := kernel.MoneyFromFloat(*price)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("price must be non-negative", err)
	}
	c.price = &money
	return nil
}

func (c *UpdateMenuItemCommand) setPreparationTime(minutes *int) error {
	if minutes == nil {
		return nil
	}
	if *minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparation time must be non-negative",
			fmt.Errorf("%d is less than 0", *minutes),
		)
	}
	c.preparationTime = minutes
	return nil
}
