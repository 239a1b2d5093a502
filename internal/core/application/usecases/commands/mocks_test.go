package commands_test

import (
	"context"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) ExistsByName(ctx context.Context, name string, excludeID *kernel.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

// MockUoW satisfies MenuUoW, OrderUoW and UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newMenuItem(name string, price float64) *menu.MenuItem {
	money, err := kernel.MoneyFromFloat(price)
	if err != nil {
		panic(err)
	}
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, menu.MainCourse, money)
	if err != nil {
		panic(err)
	}
	return item
}

func ptr[T any](v T) *T { return &v }
