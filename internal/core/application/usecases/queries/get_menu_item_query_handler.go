package queries

import (
	"context"

	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no item has the id.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return MenuItemView{}, err
	}

	var rows []menuItemRow
	err := h.db.WithContext(ctx).Raw(
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = ?`,
		query.ID().Bytes(),
	).Scan(&rows).Error
	if err != nil {
		return MenuItemView{}, err
	}
	if len(rows) == 0 {
		return MenuItemView{}, errs.NewObjectNotFoundError("menu item", query.ID().String())
	}

	return rows[0].toView()
}
