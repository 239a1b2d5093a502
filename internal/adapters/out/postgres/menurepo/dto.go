// Package menurepo persists the menu item aggregate with GORM and maps between
// the domain model and the menu_items table.
package menurepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// MenuItemDTO is the menu_items row. The unique index on name is the authoritative
// uniqueness check; the application pre-check only gives a friendlier error earlier.
type MenuItemDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description     string          `gorm:"type:text;not null;default:''"`
	Category        string          `gorm:"type:varchar(32);not null;index"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Ingredients     pq.StringArray  `gorm:"type:text[];not null"`
	IsAvailable     bool            `gorm:"not null;default:true;index"`
	PreparationTime int             `gorm:"type:int;not null;default:0"`
	ImageURL        string          `gorm:"column:image_url;type:text;not null;default:''"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName overrides GORM's default "menu_item_dtos".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:              item.ID().Bytes(),
		Name:            item.Name(),
		Description:     item.Description(),
		Category:        item.Category().String(),
		Price:           item.Price().Decimal(),
		Ingredients:     pq.StringArray(item.Ingredients()),
		IsAvailable:     item.IsAvailable(),
		PreparationTime: item.PreparationTime(),
		ImageURL:        item.ImageURL(),
		CreatedAt:       item.CreatedAt(),
		UpdatedAt:       item.UpdatedAt(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := menu.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(
		id,
		dto.Name,
		dto.Description,
		category,
		price,
		[]string(dto.Ingredients),
		dto.IsAvailable,
		dto.PreparationTime,
		dto.ImageURL,
		dto.CreatedAt,
		dto.UpdatedAt,
	), nil
}
