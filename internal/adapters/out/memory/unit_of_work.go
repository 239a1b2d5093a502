package memory

import (
	"context"
	"errors"

	"restaurant/internal/core/ports"
)

// ErrNoTransaction mirrors gorm.ErrInvalidTransaction for Commit/Rollback without Begin.
var ErrNoTransaction = errors.New("invalid transaction")

// UnitOfWork buffers writes between Begin and Commit. Reads inside the
// transaction see the snapshot taken at Begin plus the transaction's own writes.
// Outside a transaction every write is applied immediately.
type UnitOfWork struct {
	store *Store
	view  *state
	ops   []op
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.view != nil {
		return nil
	}
	u.view = u.store.snapshot()
	u.ops = nil
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.view == nil {
		return ErrNoTransaction
	}
	ops := u.ops
	u.view, u.ops = nil, nil
	return u.store.apply(ops)
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.view == nil {
		return ErrNoTransaction
	}
	u.view, u.ops = nil, nil
	return nil
}

func (u *UnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return &MenuItemRepository{uow: u}
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

// write applies o to the transaction view, or straight to the store when no
// transaction is open.
func (u *UnitOfWork) write(o op) error {
	if u.view == nil {
		return u.store.apply([]op{o})
	}
	if err := o(u.view); err != nil {
		return err
	}
	u.ops = append(u.ops, o)
	return nil
}

func (u *UnitOfWork) read() *state {
	if u.view != nil {
		return u.view
	}
	return u.store.snapshot()
}
