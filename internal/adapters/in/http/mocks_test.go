package http

import (
	"context"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockCreateMenuItemHandler struct{ mock.Mock }

func (m *MockCreateMenuItemHandler) Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) (*menu.MenuItem, error) {
	args := m.Called(ctx, cmd)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

type MockUpdateMenuItemHandler struct{ mock.Mock }

func (m *MockUpdateMenuItemHandler) Handle(ctx context.Context, cmd commands.UpdateMenuItemCommand) (*menu.MenuItem, error) {
	args := m.Called(ctx, cmd)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

type MockDeleteMenuItemHandler struct{ mock.Mock }

func (m *MockDeleteMenuItemHandler) Handle(ctx context.Context, cmd commands.DeleteMenuItemCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockToggleHandler struct{ mock.Mock }

func (m *MockToggleHandler) Handle(ctx context.Context, cmd commands.ToggleMenuItemAvailabilityCommand) (*menu.MenuItem, error) {
	args := m.Called(ctx, cmd)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockGetMenuItemsHandler struct{ mock.Mock }

func (m *MockGetMenuItemsHandler) Handle(ctx context.Context, query queries.GetMenuItemsQuery) (queries.MenuItemsPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.MenuItemsPage), args.Error(1)
}

type MockGetMenuItemHandler struct{ mock.Mock }

func (m *MockGetMenuItemHandler) Handle(ctx context.Context, query queries.GetMenuItemQuery) (queries.MenuItemView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.MenuItemView), args.Error(1)
}

type MockSearchMenuItemsHandler struct{ mock.Mock }

func (m *MockSearchMenuItemsHandler) Handle(ctx context.Context, query queries.SearchMenuItemsQuery) ([]queries.MenuItemView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.MenuItemView)
	return views, args.Error(1)
}

type MockGetOrdersHandler struct{ mock.Mock }

func (m *MockGetOrdersHandler) Handle(ctx context.Context, query queries.GetOrdersQuery) (queries.OrdersPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrdersPage), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockGetTopSellersHandler struct{ mock.Mock }

func (m *MockGetTopSellersHandler) Handle(ctx context.Context, query queries.GetTopSellersQuery) ([]queries.TopSellerView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.TopSellerView)
	return views, args.Error(1)
}

type MockGetSalesSummaryHandler struct{ mock.Mock }

func (m *MockGetSalesSummaryHandler) Handle(ctx context.Context, query queries.GetSalesSummaryQuery) (queries.SalesSummary, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.SalesSummary), args.Error(1)
}

type MockPinger struct{ mock.Mock }

func (m *MockPinger) PingContext(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
