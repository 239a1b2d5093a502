package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"
)

// TopSellersLimit is the number of menu items in the ranking.
const TopSellersLimit = 5

var ErrGetTopSellersQueryIsNotConstructed = errors.New(
	"GetTopSellersQuery must be created via NewGetTopSellersQuery constructor",
)

// GetTopSellersQuery ranks menu items by quantity sold in orders that were not
// cancelled.
type GetTopSellersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTopSellersQuery() GetTopSellersQuery {
	return GetTopSellersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTopSellersQuery) Validate() error {
	return q.guard.Validate(ErrGetTopSellersQueryIsNotConstructed)
}

// TopSellerView joins the sales figures of one menu item with its current
// catalog entry. TotalRevenue uses the prices frozen in the orders; Price is the
// current catalog price.
type TopSellerView struct {
	MenuItemID    kernel.UUID
	Name          string
	Category      menu.Category
	Price         kernel.Money
	ImageURL      string
	IsAvailable   bool
	TotalQuantity int
	TotalRevenue  kernel.Money
	OrderCount    int
}
