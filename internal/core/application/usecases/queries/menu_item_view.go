package queries

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// MenuItemView is the read model of a catalog entry.
type MenuItemView struct {
	ID              kernel.UUID
	Name            string
	Description     string
	Category        menu.Category
	Price           kernel.Money
	Ingredients     []string
	IsAvailable     bool
	PreparationTime int
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewMenuItemView projects an aggregate, e.g. one just returned by a command.
func NewMenuItemView(item *menu.MenuItem) MenuItemView {
	return MenuItemView{
		ID:              item.ID(),
		Name:            item.Name(),
		Description:     item.Description(),
		Category:        item.Category(),
		Price:           item.Price(),
		Ingredients:     item.Ingredients(),
		IsAvailable:     item.IsAvailable(),
		PreparationTime: item.PreparationTime(),
		ImageURL:        item.ImageURL(),
		CreatedAt:       item.CreatedAt(),
		UpdatedAt:       item.UpdatedAt(),
	}
}

const menuItemColumns = `id, name, description, category, price, ingredients,
	is_available, preparation_time, image_url, created_at, updated_at`

type menuItemRow struct {
	ID              uuid.UUID       `gorm:"column:id"`
	Name            string          `gorm:"column:name"`
	Description     string          `gorm:"column:description"`
	Category        string          `gorm:"column:category"`
	Price           decimal.Decimal `gorm:"column:price"`
	Ingredients     pq.StringArray  `gorm:"column:ingredients"`
	IsAvailable     bool            `gorm:"column:is_available"`
	PreparationTime int             `gorm:"column:preparation_time"`
	ImageURL        string          `gorm:"column:image_url"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (r menuItemRow) toView() (MenuItemView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return MenuItemView{}, err
	}
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return MenuItemView{}, err
	}
	ingredients := []string(r.Ingredients)
	if ingredients == nil {
		ingredients = []string{}
	}
	return MenuItemView{
		ID:              id,
		Name:            r.Name,
		Description:     r.Description,
		Category:        menu.Category(r.Category),
		Price:           price,
		Ingredients:     ingredients,
		IsAvailable:     r.IsAvailable,
		PreparationTime: r.PreparationTime,
		ImageURL:        r.ImageURL,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}, nil
}

func menuItemViews(rows []menuItemRow) ([]MenuItemView, error) {
	views := make([]MenuItemView, 0, len(rows))
	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
