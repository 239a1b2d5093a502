package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetTopSellersQueryHandler struct {
	db *gorm.DB
}

func NewGetTopSellersQueryHandler(db *gorm.DB) GetTopSellersQueryHandler {
	return GetTopSellersQueryHandler{db: db}
}

type topSellerRow struct {
	MenuItemID    uuid.UUID       `gorm:"column:menu_item_id"`
	Name          string          `gorm:"column:name"`
	Category      string          `gorm:"column:category"`
	Price         decimal.Decimal `gorm:"column:price"`
	ImageURL      string          `gorm:"column:image_url"`
	IsAvailable   bool            `gorm:"column:is_available"`
	TotalQuantity int             `gorm:"column:total_quantity"`
	TotalRevenue  decimal.Decimal `gorm:"column:total_revenue"`
	OrderCount    int             `gorm:"column:order_count"`
}

// Handle returns up to TopSellersLimit items. Lines of cancelled orders are not
// counted, and items deleted from the catalog drop out of the ranking.
func (h GetTopSellersQueryHandler) Handle(ctx context.Context, query GetTopSellersQuery) ([]TopSellerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []topSellerRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.menu_item_id,
			mi.name,
			mi.category,
			mi.price,
			mi.image_url,
			mi.is_available,
			SUM(oi.quantity)                     AS total_quantity,
			ROUND(SUM(oi.price * oi.quantity), 2) AS total_revenue,
			COUNT(*)                             AS order_count
		FROM order_items oi
		JOIN orders o      ON o.id = oi.order_id
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.status <> ?
		GROUP BY oi.menu_item_id, mi.name, mi.category, mi.price, mi.image_url, mi.is_available
		ORDER BY total_quantity DESC, mi.name
		LIMIT ?
	`, int(order.Cancelled), TopSellersLimit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sellers := make([]TopSellerView, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(row.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		revenue, revenueErr := kernel.NewMoney(row.TotalRevenue)
		if revenueErr != nil {
			return nil, revenueErr
		}
		sellers = append(sellers, TopSellerView{
			MenuItemID:    id,
			Name:          row.Name,
			Category:      menu.Category(row.Category),
			Price:         price,
			ImageURL:      row.ImageURL,
			IsAvailable:   row.IsAvailable,
			TotalQuantity: row.TotalQuantity,
			TotalRevenue:  revenue,
			OrderCount:    row.OrderCount,
		})
	}

	return sellers, nil
}
