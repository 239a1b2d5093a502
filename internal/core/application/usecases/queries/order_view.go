package queries

import (
	"context"
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is an order with its line items. Each line carries the price frozen
// at creation and, if the menu item still exists, its current catalog data.
type OrderView struct {
	ID           kernel.UUID
	OrderNumber  string
	Items        []OrderItemView
	TotalAmount  kernel.Money
	Status       order.Status
	CustomerName string
	TableNumber  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderItemView struct {
	MenuItemID kernel.UUID
	Quantity   int
	Price      kernel.Money
	// MenuItem is nil when the menu item was deleted after the order was placed.
	MenuItem *OrderMenuItemView
}

type OrderMenuItemView struct {
	Name        string
	Category    menu.Category
	Price       kernel.Money
	ImageURL    string
	Description string
}

const orderColumns = `id, order_number, total_amount, status, customer_name, table_number, created_at, updated_at`

type orderRow struct {
	ID           uuid.UUID       `gorm:"column:id"`
	OrderNumber  string          `gorm:"column:order_number"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount"`
	Status       int             `gorm:"column:status"`
	CustomerName string          `gorm:"column:customer_name"`
	TableNumber  int             `gorm:"column:table_number"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

type orderItemRow struct {
	OrderID         uuid.UUID           `gorm:"column:order_id"`
	MenuItemID      uuid.UUID           `gorm:"column:menu_item_id"`
	Quantity        int                 `gorm:"column:quantity"`
	Price           decimal.Decimal     `gorm:"column:price"`
	MenuName        sql.NullString      `gorm:"column:menu_name"`
	MenuCategory    sql.NullString      `gorm:"column:menu_category"`
	MenuPrice       decimal.NullDecimal `gorm:"column:menu_price"`
	MenuImageURL    sql.NullString      `gorm:"column:menu_image_url"`
	MenuDescription sql.NullString      `gorm:"column:menu_description"`
}

func (r orderRow) toView() (OrderView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderView{}, err
	}
	status := order.Status(r.Status)
	if err = status.Validate(); err != nil {
		return OrderView{}, err
	}
	total, err := kernel.NewMoney(r.TotalAmount)
	if err != nil {
		return OrderView{}, err
	}
	return OrderView{
		ID:           id,
		OrderNumber:  r.OrderNumber,
		Items:        []OrderItemView{},
		TotalAmount:  total,
		Status:       status,
		CustomerName: r.CustomerName,
		TableNumber:  r.TableNumber,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

func (r orderItemRow) toView(withDescription bool) (OrderItemView, error) {
	menuItemID, err := kernel.UUIDFromBytes(r.MenuItemID[:])
	if err != nil {
		return OrderItemView{}, err
	}
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return OrderItemView{}, err
	}
	view := OrderItemView{MenuItemID: menuItemID, Quantity: r.Quantity, Price: price}

	if r.MenuName.Valid {
		current, priceErr := kernel.NewMoney(r.MenuPrice.Decimal)
		if priceErr != nil {
			return OrderItemView{}, priceErr
		}
		view.MenuItem = &OrderMenuItemView{
			Name:     r.MenuName.String,
			Category: menu.Category(r.MenuCategory.String),
			Price:    current,
			ImageURL: r.MenuImageURL.String,
		}
		if withDescription {
			view.MenuItem.Description = r.MenuDescription.String
		}
	}
	return view, nil
}

// loadOrderItems fills Items of every order in place, keeping line order.
func loadOrderItems(ctx context.Context, db *gorm.DB, orders []OrderView, withDescription bool) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]int, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for i, o := range orders {
		index[o.ID.Bytes()] = i
		ids = append(ids, o.ID.Bytes())
	}

	var rows []orderItemRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.menu_item_id,
			oi.quantity,
			oi.price,
			mi.name        AS menu_name,
			mi.category    AS menu_category,
			mi.price       AS menu_price,
			mi.image_url   AS menu_image_url,
			mi.description AS menu_description
		FROM order_items oi
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id, oi.position
	`, ids).Scan(&rows).Error
	if err != nil {
		return err
	}

	for _, row := range rows {
		i, ok := index[row.OrderID]
		if !ok {
			continue
		}
		item, itemErr := row.toView(withDescription)
		if itemErr != nil {
			return itemErr
		}
		orders[i].Items = append(orders[i].Items, item)
	}
	return nil
}
