package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetSalesSummaryQueryIsNotConstructed = errors.New(
	"GetSalesSummaryQuery must be created via NewGetSalesSummaryQuery constructor",
)

// GetSalesSummaryQuery totals orders per status. Cancelled orders are part of
// every figure, including TotalRevenue.
type GetSalesSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSalesSummaryQuery() GetSalesSummaryQuery {
	return GetSalesSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSalesSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesSummaryQueryIsNotConstructed)
}

type SalesSummary struct {
	TotalOrders  int
	TotalRevenue kernel.Money
	// ByStatus lists only statuses that have orders, sorted by status name.
	ByStatus []StatusSummary
}

type StatusSummary struct {
	Status  order.Status
	Count   int
	Revenue kernel.Money
}
