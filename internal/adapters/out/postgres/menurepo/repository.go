package menurepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuItemRepository implements ports.MenuItemRepository using GORM.
// The *gorm.DB must be opened with TranslateError so unique violations surface
// as gorm.ErrDuplicatedKey.
type GormMenuItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMenuItemRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuItemRepository {
	return &GormMenuItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item.
func (r *GormMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateError(err, item)
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update overwrites every column of an existing menu item. Select("*") makes GORM
// write zero values such as isAvailable=false or an empty description.
func (r *GormMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return translateError(result.Error, item)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Delete removes the row. Order lines keep their menu_item_id.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id.String())
	}
	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormMenuItemRepository) ExistsByName(ctx context.Context, name string, excludeID *kernel.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id <> ?", excludeID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func translateError(err error, item *menu.MenuItem) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectAlreadyExistsErrorWithCause("menu item name", item.Name(), err)
	}
	return err
}
