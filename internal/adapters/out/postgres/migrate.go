package postgres

import (
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, parents first.
func Models() []any {
	return []any{
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Truncate empties every table. Used by the seed command and the integration suites.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE order_items, orders, menu_items").Error
}
