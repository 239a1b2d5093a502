package menu

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Category groups menu items on the dashboard. The set is closed; values are
// stored and serialized by their display name.
type Category string

const (
	Appetizer  Category = "Appetizer"
	MainCourse Category = "Main Course"
	Dessert    Category = "Dessert"
	Beverage   Category = "Beverage"
)

// Categories returns every valid category in menu order.
func Categories() []Category {
	return []Category{Appetizer, MainCourse, Dessert, Beverage}
}

// ParseCategory matches s exactly against the known categories.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c Category) Validate() error {
	for _, known := range Categories() {
		if c == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"category is invalid",
		fmt.Errorf("%q is not one of: %s", string(c), categoryList()),
	)
}

func (c Category) String() string {
	return string(c)
}

func categoryList() string {
	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
