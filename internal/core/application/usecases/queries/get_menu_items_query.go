package queries

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// MenuItemFilter narrows the catalog listing. Nil fields do not filter.
type MenuItemFilter struct {
	Category    *string
	IsAvailable *bool
	MinPrice    *float64
	MaxPrice    *float64
}

// GetMenuItemsQuery lists the catalog newest first with optional filters.
//
// Example:
//
//	query, err := NewGetMenuItemsQuery(MenuItemFilter{Category: &dessert}, 1, 20)
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d desserts\n", len(page.Items), page.PageInfo.Total)
type GetMenuItemsQuery struct {
	category    *menu.Category
	isAvailable *bool
	minPrice    *kernel.Money
	maxPrice    *kernel.Money
	pagination  Pagination

	guard guard.ConstructorGuard
}

func NewGetMenuItemsQuery(filter MenuItemFilter, page, limit int) (GetMenuItemsQuery, error) {
	q := GetMenuItemsQuery{
		isAvailable: filter.IsAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	pagination, pageErr := NewPagination(page, limit, DefaultMenuPageLimit)
	q.pagination = pagination

	if err := errors.Join(
		pageErr,
		q.setCategory(filter.Category),
		setPrice(&q.minPrice, "minPrice", filter.MinPrice),
		setPrice(&q.maxPrice, "maxPrice", filter.MaxPrice),
	); err != nil {
		return GetMenuItemsQuery{}, err
	}

	return q, nil
}

func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

func (q GetMenuItemsQuery) Pagination() Pagination {
	return q.pagination
}

func (q *GetMenuItemsQuery) setCategory(category *string) error {
	if category == nil || *category == "" {
		return nil
	}
	parsed, err := menu.ParseCategory(*category)
	if err != nil {
		return err
	}
	q.category = &parsed
	return nil
}

func setPrice(dst **kernel.Money, name string, value *float64) error {
	if value == nil {
		return nil
	}
	money, err := kernel.MoneyFromFloat(*value)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			name+" must be non-negative", fmt.Errorf("%v is less than 0", *value))
	}
	*dst = &money
	return nil
}

// MenuItemsPage is one page of the catalog listing.
type MenuItemsPage struct {
	Items    []MenuItemView
	PageInfo PageInfo
}
