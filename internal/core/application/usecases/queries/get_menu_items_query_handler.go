package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle counts the filtered catalog and returns the requested page, newest first.
func (h GetMenuItemsQueryHandler) Handle(ctx context.Context, query GetMenuItemsQuery) (MenuItemsPage, error) {
	if err := query.Validate(); err != nil {
		return MenuItemsPage{}, err
	}

	filtered := func() *gorm.DB {
		tx := h.db.WithContext(ctx).Table("menu_items")
		if query.category != nil {
			tx = tx.Where("category = ?", query.category.String())
		}
		if query.isAvailable != nil {
			tx = tx.Where("is_available = ?", *query.isAvailable)
		}
		if query.minPrice != nil {
			tx = tx.Where("price >= ?", query.minPrice.Decimal())
		}
		if query.maxPrice != nil {
			tx = tx.Where("price <= ?", query.maxPrice.Decimal())
		}
		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return MenuItemsPage{}, err
	}

	p := query.Pagination()
	var rows []menuItemRow
	err := filtered().
		Select(menuItemColumns).
		Order("created_at DESC").
		Order("id").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Scan(&rows).Error
	if err != nil {
		return MenuItemsPage{}, err
	}

	items, err := menuItemViews(rows)
	if err != nil {
		return MenuItemsPage{}, err
	}

	return MenuItemsPage{Items: items, PageInfo: newPageInfo(total, p)}, nil
}
