package menu

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
	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created through
	// NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem is the aggregate root of the catalog. Orders reference it by ID and copy
// its price at creation time, so nothing here affects existing orders.
//
// Invariants:
//   - name is non-empty after trimming and is stored trimmed
//   - category is one of the known categories
//   - price is non-negative (guaranteed by kernel.Money)
//   - preparation time is non-negative minutes
//
// Name uniqueness spans the whole catalog and is therefore checked by the
// application layer and the storage layer, not by the aggregate.
type MenuItem struct {
	id              kernel.UUID
	name            string
	description     string
	category        Category
	price           kernel.Money
	ingredients     []string
	isAvailable     bool
	preparationTime int
	imageURL        string
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewMenuItem creates an available menu item with no ingredients, description or image.
// Optional attributes are set afterwards through the Set* methods.
func NewMenuItem(id kernel.UUID, name string, category Category, price kernel.Money) (*MenuItem, error) {
	now := time.Now().UTC()
	item := &MenuItem{
		isAvailable:   true,
		ingredients:   []string{},
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.SetName(name),
		item.SetCategory(category),
	); err != nil {
		return nil, err
	}
	item.price = price

	return item, nil
}

// RestoreMenuItem rebuilds a menu item from persisted state without touching timestamps.
func RestoreMenuItem(
	id kernel.UUID,
	name string,
	description string,
	category Category,
	price kernel.Money,
	ingredients []string,
	isAvailable bool,
	preparationTime int,
	imageURL string,
	createdAt time.Time,
	updatedAt time.Time,
) *MenuItem {
	if ingredients == nil {
		ingredients = []string{}
	}
	return &MenuItem{
		id:              id,
		name:            name,
		description:     description,
		category:        category,
		price:           price,
		ingredients:     ingredients,
		isAvailable:     isAvailable,
		preparationTime: preparationTime,
		imageURL:        imageURL,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID       { return m.id }
func (m *MenuItem) Name() string          { return m.name }
func (m *MenuItem) Description() string   { return m.description }
func (m *MenuItem) Category() Category    { return m.category }
func (m *MenuItem) Price() kernel.Money   { return m.price }
func (m *MenuItem) IsAvailable() bool     { return m.isAvailable }
func (m *MenuItem) PreparationTime() int  { return m.preparationTime }
func (m *MenuItem) ImageURL() string      { return m.imageURL }
func (m *MenuItem) CreatedAt() time.Time  { return m.createdAt }
func (m *MenuItem) UpdatedAt() time.Time  { return m.updatedAt }
func (m *MenuItem) Ingredients() []string { return slices.Clone(m.ingredients) }

// SetName trims name and rejects the empty result.
func (m *MenuItem) SetName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = trimmed
	m.touch()
	return nil
}

func (m *MenuItem) SetCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	m.category = category
	m.touch()
	return nil
}

func (m *MenuItem) SetPrice(price kernel.Money) {
	m.price = price
	m.touch()
}

func (m *MenuItem) SetDescription(description string) {
	m.description = strings.TrimSpace(description)
	m.touch()
}

// SetIngredients replaces the ingredient list, dropping blank entries but keeping order.
func (m *MenuItem) SetIngredients(ingredients []string) {
	cleaned := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		if s := strings.TrimSpace(ingredient); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	m.ingredients = cleaned
	m.touch()
}

func (m *MenuItem) SetPreparationTime(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparation time is invalid",
			fmt.Errorf("%d is less than 0", minutes),
		)
	}
	m.preparationTime = minutes
	m.touch()
	return nil
}

func (m *MenuItem) SetImageURL(url string) {
	m.imageURL = strings.TrimSpace(url)
	m.touch()
}

func (m *MenuItem) SetAvailability(available bool) {
	m.isAvailable = available
	m.touch()
}

// ToggleAvailability flips the availability flag and returns the new value.
func (m *MenuItem) ToggleAvailability() bool {
	m.SetAvailability(!m.isAvailable)
	return m.isAvailable
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) touch() {
	m.updatedAt = time.Now().UTC()
}
