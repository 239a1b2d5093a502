package queries

import (
	"context"

	"gorm.io/gorm"
)

type SearchMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewSearchMenuItemsQueryHandler(db *gorm.DB) SearchMenuItemsQueryHandler {
	return SearchMenuItemsQueryHandler{db: db}
}

// Handle returns at most SearchResultLimit items, newest first. An empty term
// returns an empty slice without touching the database.
func (h SearchMenuItemsQueryHandler) Handle(ctx context.Context, query SearchMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.Term() == "" {
		return []MenuItemView{}, nil
	}

	pattern := query.pattern()
	var rows []menuItemRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE name ILIKE @pattern
			OR description ILIKE @pattern
			OR EXISTS (
				SELECT 1 FROM unnest(ingredients) AS ingredient
				WHERE ingredient ILIKE @pattern
			)
		ORDER BY created_at DESC, id
		LIMIT @limit
	`, map[string]any{"pattern": pattern, "limit": SearchResultLimit}).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return menuItemViews(rows)
}
