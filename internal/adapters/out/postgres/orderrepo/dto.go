// Package orderrepo persists the order aggregate with GORM. An order maps to one
// orders row plus its order_items rows.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row with its line items as a has-many association.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber  string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       int             `gorm:"type:smallint;not null;index"`
	CustomerName string          `gorm:"type:varchar(255);not null"`
	TableNumber  int             `gorm:"type:int;not null"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	UpdatedAt    time.Time       `gorm:"not null"`
	Items        []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item. MenuItemID is deliberately not a foreign key:
// deleting a menu item must not touch historical orders.
type OrderItemDTO struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position   int             `gorm:"type:int;not null"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"type:int;not null"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    orderID,
			Position:   i,
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			Price:      item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		OrderNumber:  aggregate.Number(),
		TotalAmount:  aggregate.TotalAmount().Decimal(),
		Status:       int(aggregate.Status()),
		CustomerName: aggregate.CustomerName(),
		TableNumber:  aggregate.TableNumber(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        items,
	}
}

// toDomain expects dto.Items to be sorted by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status := order.Status(dto.Status)
	if err = status.Validate(); err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, idErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(menuItemID, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		items,
		total,
		status,
		dto.CustomerName,
		dto.TableNumber,
		dto.CreatedAt,
		dto.UpdatedAt,
	), nil
}
