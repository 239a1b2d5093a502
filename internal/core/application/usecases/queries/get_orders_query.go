package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders newest first, optionally only those in one status.
type GetOrdersQuery struct {
	status     *order.Status
	pagination Pagination

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery accepts status as its display name; an empty string lists
// every status.
func NewGetOrdersQuery(status string, page, limit int) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	pagination, pageErr := NewPagination(page, limit, DefaultOrderPageLimit)
	var statusErr error
	if status != "" {
		parsed, err := order.ParseStatus(status)
		statusErr = err
		q.status = &parsed
	}
	if err := errors.Join(pageErr, statusErr); err != nil {
		return GetOrdersQuery{}, err
	}

	q.pagination = pagination
	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Pagination() Pagination {
	return q.pagination
}

type OrdersPage struct {
	Orders   []OrderView
	PageInfo PageInfo
}
