package memory

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

type MenuItemRepository struct {
	uow *UnitOfWork
}

func (r *MenuItemRepository) Add(_ context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return r.uow.write(putMenuItem(item, false))
}

func (r *MenuItemRepository) Update(_ context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return r.uow.write(putMenuItem(item, true))
}

func (r *MenuItemRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.uow.write(deleteMenuItem(id))
}

func (r *MenuItemRepository) Get(_ context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	item, ok := r.uow.read().menuItems[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("menu item", id.String())
	}
	return cloneMenuItem(item), nil
}

func (r *MenuItemRepository) ExistsByName(_ context.Context, name string, excludeID *kernel.UUID) (bool, error) {
	for id, item := range r.uow.read().menuItems {
		if excludeID != nil && id.IsEqual(*excludeID) {
			continue
		}
		if item.Name() == name {
			return true, nil
		}
	}
	return false, nil
}

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(addOrder(aggregate))
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	o, ok := r.uow.read().orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return cloneOrder(o), nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(updateOrderStatus(aggregate, expected))
}
