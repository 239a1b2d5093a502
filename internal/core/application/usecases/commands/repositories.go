// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work, performs the change
// through the repositories and commits; any error leaves the store untouched.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuUoW manages transactions for catalog-only operations.
	MenuUoW interface {
		TxManager
		MenuItemRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// OrderUoW manages transactions for operations touching orders only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans both repositories. Order creation reads the catalog and writes
	// the order in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   item, err := uow.MenuItemRepository().Get(ctx, id)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		MenuItemRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
