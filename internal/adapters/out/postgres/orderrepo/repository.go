package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items in one statement batch.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A clash of generated numbers is an internal fault, not a conflict.
			return fmt.Errorf("order number %s collided: %w", aggregate.Number(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items in placement order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus is a compare-and-set on the status column. Nothing but status and
// updated_at is written.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().Bytes()
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id, int(expected)).
		Updates(map[string]any{
			"status":     int(aggregate.Status()),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return fmt.Errorf("order %s is no longer %s: %w",
			aggregate.Number(), expected, errs.ErrConcurrentModification)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
