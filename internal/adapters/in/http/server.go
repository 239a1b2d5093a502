package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type CreateMenuItemHandler interface {
	Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) (*menu.MenuItem, error)
}

type UpdateMenuItemHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateMenuItemCommand) (*menu.MenuItem, error)
}

type DeleteMenuItemHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteMenuItemCommand) error
}

type ToggleMenuItemAvailabilityHandler interface {
	Handle(ctx context.Context, cmd commands.ToggleMenuItemAvailabilityCommand) (*menu.MenuItem, error)
}

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type ChangeOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
}

type GetMenuItemsHandler interface {
	Handle(ctx context.Context, query queries.GetMenuItemsQuery) (queries.MenuItemsPage, error)
}

type GetMenuItemHandler interface {
	Handle(ctx context.Context, query queries.GetMenuItemQuery) (queries.MenuItemView, error)
}

type SearchMenuItemsHandler interface {
	Handle(ctx context.Context, query queries.SearchMenuItemsQuery) ([]queries.MenuItemView, error)
}

type GetOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersQuery) (queries.OrdersPage, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

type GetTopSellersHandler interface {
	Handle(ctx context.Context, query queries.GetTopSellersQuery) ([]queries.TopSellerView, error)
}

type GetSalesSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetSalesSummaryQuery) (queries.SalesSummary, error)
}

// Pinger reports whether the backing database is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateMenuItem             CreateMenuItemHandler
	UpdateMenuItem             UpdateMenuItemHandler
	DeleteMenuItem             DeleteMenuItemHandler
	ToggleMenuItemAvailability ToggleMenuItemAvailabilityHandler
	CreateOrder                CreateOrderHandler
	ChangeOrderStatus          ChangeOrderStatusHandler

	GetMenuItems    GetMenuItemsHandler
	GetMenuItem     GetMenuItemHandler
	SearchMenuItems SearchMenuItemsHandler
	GetOrders       GetOrdersHandler
	GetOrder        GetOrderHandler
	GetTopSellers   GetTopSellersHandler
	GetSalesSummary GetSalesSummaryHandler
}

// Server translates HTTP requests into commands and queries and renders the
// results as envelopes. Errors are returned to echo and rendered by NewErrorHandler.
type Server struct {
	h  Handlers
	db Pinger
}

func NewServer(handlers Handlers, db Pinger) *Server {
	return &Server{h: handlers, db: db}
}

// Register mounts every route on g, which is expected to be the /api group.
func (s *Server) Register(g *echo.Group) {
	g.GET("/health", s.Health)
	g.GET("/health/ready", s.Ready)

	g.GET("/menu", s.ListMenuItems)
	g.GET("/menu/search", s.SearchMenuItems)
	g.GET("/menu/:id", s.GetMenuItem)
	g.POST("/menu", s.CreateMenuItem)
	g.PUT("/menu/:id", s.UpdateMenuItem)
	g.DELETE("/menu/:id", s.DeleteMenuItem)
	g.PATCH("/menu/:id/availability", s.ToggleMenuItemAvailability)

	g.GET("/orders", s.ListOrders)
	g.GET("/orders/:id", s.GetOrder)
	g.POST("/orders", s.CreateOrder)
	g.PATCH("/orders/:id/status", s.ChangeOrderStatus)

	g.GET("/analytics/top-sellers", s.TopSellers)
	g.GET("/analytics/summary", s.Summary)
}

func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, okWithMessage(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	}, "Restaurant API is running"))
}

// Ready pings the database with a short deadline.
func (s *Server) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		c.Logger().Warnf("readiness check failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, failure("Database unavailable"))
	}
	return c.JSON(http.StatusOK, okWithMessage(map[string]any{"database": "up"}, "Ready"))
}

// ListMenuItems handles GET /api/menu.
func (s *Server) ListMenuItems(c echo.Context) error {
	var (
		filter      queries.MenuItemFilter
		page, limit *int
	)
	if err := errorsFirst(
		bindQuery(c, "category", &filter.Category),
		bindQuery(c, "isAvailable", &filter.IsAvailable),
		bindQuery(c, "minPrice", &filter.MinPrice),
		bindQuery(c, "maxPrice", &filter.MaxPrice),
		bindQuery(c, "page", &page),
		bindQuery(c, "limit", &limit),
	); err != nil {
		return err
	}

	query, err := queries.NewGetMenuItemsQuery(filter, valueOrZero(page), valueOrZero(limit))
	if err != nil {
		return err
	}
	result, err := s.h.GetMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Data:       newMenuItemResponses(result.Items),
		Pagination: newPagination(result.PageInfo),
	})
}

// SearchMenuItems handles GET /api/menu/search?q=.
func (s *Server) SearchMenuItems(c echo.Context) error {
	query := queries.NewSearchMenuItemsQuery(c.QueryParam("q"))
	items, err := s.h.SearchMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okWithCount(newMenuItemResponses(items), len(items)))
}

func (s *Server) GetMenuItem(c echo.Context) error {
	id, err := menuItemID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetMenuItem.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(newMenuItemResponse(view)))
}

func (s *Server) CreateMenuItem(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("Invalid request body", err)
	}

	cmd, err := commands.NewCreateMenuItemCommand(commands.CreateMenuItemInput{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Price:           req.Price,
		Ingredients:     req.Ingredients,
		IsAvailable:     req.IsAvailable,
		PreparationTime: req.PreparationTime,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		return err
	}

	item, err := s.h.CreateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, okWithMessage(
		newMenuItemResponse(queries.NewMenuItemView(item)),
		"Menu item created successfully",
	))
}

func (s *Server) UpdateMenuItem(c echo.Context) error {
	id, err := menuItemID(c)
	if err != nil {
		return err
	}

	var req UpdateMenuItemRequest
	if err = c.Bind(&req); err != nil {
		return badRequest("Invalid request body", err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, commands.UpdateMenuItemInput{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Price:           req.Price,
		Ingredients:     req.Ingredients,
		IsAvailable:     req.IsAvailable,
		PreparationTime: req.PreparationTime,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		return err
	}

	item, err := s.h.UpdateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okWithMessage(
		newMenuItemResponse(queries.NewMenuItemView(item)),
		"Menu item updated successfully",
	))
}

func (s *Server) DeleteMenuItem(c echo.Context) error {
	id, err := menuItemID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okWithMessage(nil, "Menu item deleted successfully"))
}

func (s *Server) ToggleMenuItemAvailability(c echo.Context) error {
	id, err := menuItemID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewToggleMenuItemAvailabilityCommand(id)
	if err != nil {
		return err
	}
	item, err := s.h.ToggleMenuItemAvailability.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	state := "unavailable"
	if item.IsAvailable() {
		state = "available"
	}
	return c.JSON(http.StatusOK, okWithMessage(
		newMenuItemResponse(queries.NewMenuItemView(item)),
		"Menu item is now "+state,
	))
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c echo.Context) error {
	var (
		status      *string
		page, limit *int
	)
	if err := errorsFirst(
		bindQuery(c, "status", &status),
		bindQuery(c, "page", &page),
		bindQuery(c, "limit", &limit),
	); err != nil {
		return err
	}

	query, err := queries.NewGetOrdersQuery(valueOrZero(status), valueOrZero(page), valueOrZero(limit))
	if err != nil {
		return err
	}
	result, err := s.h.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	orders := make([]OrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, newOrderResponse(o))
	}
	return c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Data:       orders,
		Pagination: newPagination(result.PageInfo),
	})
}

func (s *Server) GetOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return err
	}
	view, err := s.populatedOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(newOrderResponse(view)))
}

func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("Invalid request body", err)
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for i, item := range req.Items {
		menuID, err := kernel.UUIDFromString(item.MenuItem)
		if err != nil {
			return badRequest(fmt.Sprintf("items[%d]: Invalid menu item ID", i), err)
		}
		lines = append(lines, commands.OrderLine{MenuItemID: menuID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerName, req.TableNumber, lines)
	if err != nil {
		return err
	}
	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	view, err := s.populatedOrder(c.Request().Context(), o.ID())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, okWithMessage(newOrderResponse(view), "Order created successfully"))
}

func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest("Invalid request body", err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, req.Status)
	if err != nil {
		return err
	}
	o, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	view, err := s.populatedOrder(c.Request().Context(), o.ID())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okWithMessage(newOrderResponse(view), statusMessage(o.Status())))
}

func (s *Server) TopSellers(c echo.Context) error {
	sellers, err := s.h.GetTopSellers.Handle(c.Request().Context(), queries.NewGetTopSellersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okWithCount(newTopSellerResponses(sellers), len(sellers)))
}

func (s *Server) Summary(c echo.Context) error {
	summary, err := s.h.GetSalesSummary.Handle(c.Request().Context(), queries.NewGetSalesSummaryQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(newSummaryResponse(summary)))
}

func (s *Server) populatedOrder(ctx context.Context, id kernel.UUID) (queries.OrderView, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.h.GetOrder.Handle(ctx, query)
}

func menuItemID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, badRequest("Invalid menu item ID", err)
	}
	return id, nil
}

func orderID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, badRequest("Invalid order ID", err)
	}
	return id, nil
}

// bindQuery binds an optional query parameter; dest must be a pointer to a pointer.
func bindQuery(c echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), dest); err != nil {
		return badRequest("Invalid query parameter "+name, err)
	}
	return nil
}

func valueOrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

func errorsFirst(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
