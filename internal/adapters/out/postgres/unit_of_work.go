// Package postgres provides the GORM-based Unit of Work over the restaurant schema.
//
// Every command handler creates one unit of work, begins it, uses the repositories
// handed out by it and commits or rolls back:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and is
// otherwise a no-op, which is what makes the deferred call safe.
//
// Each UnitOfWork instance holds its own transaction and must not be shared
// between goroutines.
package postgres

import (
	"context"

	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written during the unit of work.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the menu and order
// repositories and records which aggregates were written.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin opens the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// MenuItemRepository uses the open transaction if any, the pool otherwise.
func (uow *GormUnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return menurepo.NewGormMenuItemRepository(uow.conn(), uow)
}

// OrderRepository uses the open transaction if any, the pool otherwise.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate is called by the repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written so far, oldest first.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	out := make([]TrackedAggregate, len(uow.trackedAggregates))
	copy(out, uow.trackedAggregates)
	return out
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
