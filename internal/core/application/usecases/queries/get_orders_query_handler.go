package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns one page of orders with populated line items. Menu item
// descriptions are left out of the listing.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (OrdersPage, error) {
	if err := query.Validate(); err != nil {
		return OrdersPage{}, err
	}

	filtered := func() *gorm.DB {
		tx := h.db.WithContext(ctx).Table("orders")
		if query.status != nil {
			tx = tx.Where("status = ?", int(*query.status))
		}
		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return OrdersPage{}, err
	}

	p := query.Pagination()
	var rows []orderRow
	err := filtered().
		Select(orderColumns).
		Order("created_at DESC").
		Order("id").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Scan(&rows).Error
	if err != nil {
		return OrdersPage{}, err
	}

	orders := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := row.toView()
		if viewErr != nil {
			return OrdersPage{}, viewErr
		}
		orders = append(orders, view)
	}

	if err = loadOrderItems(ctx, h.db, orders, false); err != nil {
		return OrdersPage{}, err
	}

	return OrdersPage{Orders: orders, PageInfo: newPageInfo(total, p)}, nil
}
