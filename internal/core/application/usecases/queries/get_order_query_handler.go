package queries

import (
	"context"

	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with populated line items including descriptions,
// or errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`,
		query.ID().Bytes(),
	).Scan(&rows).Error
	if err != nil {
		return OrderView{}, err
	}
	if len(rows) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.ID().String())
	}

	view, err := rows[0].toView()
	if err != nil {
		return OrderView{}, err
	}

	orders := []OrderView{view}
	if err = loadOrderItems(ctx, h.db, orders, true); err != nil {
		return OrderView{}, err
	}
	return orders[0], nil
}
