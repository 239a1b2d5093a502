// Package memory implements the repository and unit-of-work ports on top of
// in-process maps. Transactions buffer their writes and apply them atomically on
// Commit; the status compare-and-set is re-checked at that point.
package memory

import (
	"fmt"
	"maps"
	"sync"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

type state struct {
	menuItems map[kernel.UUID]*menu.MenuItem
	orders    map[kernel.UUID]*order.Order
}

func newState() *state {
	return &state{
		menuItems: make(map[kernel.UUID]*menu.MenuItem),
		orders:    make(map[kernel.UUID]*order.Order),
	}
}

// clone copies the maps. Aggregates are never mutated in place, so sharing the
// pointers is safe.
func (s *state) clone() *state {
	return &state{
		menuItems: maps.Clone(s.menuItems),
		orders:    maps.Clone(s.orders),
	}
}

type op func(s *state) error

// Store is the shared in-memory database. The zero value is not usable; call NewStore.
type Store struct {
	mu    sync.RWMutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// Create implements ports.UnitOfWorkFactory.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// MenuItems returns a snapshot of every stored menu item.
func (s *Store) MenuItems() []*menu.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*menu.MenuItem, 0, len(s.state.menuItems))
	for _, item := range s.state.menuItems {
		out = append(out, cloneMenuItem(item))
	}
	return out
}

// Orders returns a snapshot of every stored order.
func (s *Store) Orders() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*order.Order, 0, len(s.state.orders))
	for _, o := range s.state.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

// apply runs ops against a copy of the current state and publishes the copy only
// if every op succeeded.
func (s *Store) apply(ops []op) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	for _, o := range ops {
		if err := o(next); err != nil {
			return err
		}
	}
	s.state = next
	return nil
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func putMenuItem(item *menu.MenuItem, mustExist bool) op {
	stored := cloneMenuItem(item)
	return func(s *state) error {
		_, exists := s.menuItems[stored.ID()]
		if mustExist && !exists {
			return errs.NewObjectNotFoundError("menu item", stored.ID().String())
		}
		if !mustExist && exists {
			return errs.NewObjectAlreadyExistsError("menu item", stored.ID().String())
		}
		for id, other := range s.menuItems {
			if !id.IsEqual(stored.ID()) && other.Name() == stored.Name() {
				return errs.NewObjectAlreadyExistsError("menu item name", stored.Name())
			}
		}
		s.menuItems[stored.ID()] = stored
		return nil
	}
}

func deleteMenuItem(id kernel.UUID) op {
	return func(s *state) error {
		if _, ok := s.menuItems[id]; !ok {
			return errs.NewObjectNotFoundError("menu item", id.String())
		}
		delete(s.menuItems, id)
		return nil
	}
}

func addOrder(o *order.Order) op {
	stored := cloneOrder(o)
	return func(s *state) error {
		if _, exists := s.orders[stored.ID()]; exists {
			return errs.NewObjectAlreadyExistsError("order", stored.ID().String())
		}
		for _, other := range s.orders {
			if other.Number() == stored.Number() {
				return errs.NewObjectAlreadyExistsError("order", stored.Number())
			}
		}
		s.orders[stored.ID()] = stored
		return nil
	}
}

func updateOrderStatus(o *order.Order, expected order.Status) op {
	stored := cloneOrder(o)
	return func(s *state) error {
		current, ok := s.orders[stored.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("order", stored.ID().String())
		}
		if current.Status() != expected {
			return fmt.Errorf("order %s is no longer %s: %w",
				current.Number(), expected, errs.ErrConcurrentModification)
		}
		s.orders[stored.ID()] = order.RestoreOrder(
			current.ID(), current.Number(), current.Items(), current.TotalAmount(),
			stored.Status(), current.CustomerName(), current.TableNumber(),
			current.CreatedAt(), stored.UpdatedAt(),
		)
		return nil
	}
}

func cloneMenuItem(m *menu.MenuItem) *menu.MenuItem {
	return menu.RestoreMenuItem(
		m.ID(), m.Name(), m.Description(), m.Category(), m.Price(), m.Ingredients(),
		m.IsAvailable(), m.PreparationTime(), m.ImageURL(), m.CreatedAt(), m.UpdatedAt(),
	)
}

func cloneOrder(o *order.Order) *order.Order {
	return order.RestoreOrder(
		o.ID(), o.Number(), o.Items(), o.TotalAmount(), o.Status(),
		o.CustomerName(), o.TableNumber(), o.CreatedAt(), o.UpdatedAt(),
	)
}
