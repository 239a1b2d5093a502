package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted, so there is no Delete.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items in the order they were placed.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus writes the aggregate's current status only if the stored status
	// still equals expected. A lost race returns errs.ErrConcurrentModification.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
