package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
)

type CreateMenuItemRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Price           *float64 `json:"price"`
	Ingredients     []string `json:"ingredients"`
	IsAvailable     *bool    `json:"isAvailable"`
	PreparationTime int      `json:"preparationTime"`
	ImageURL        string   `json:"imageUrl"`
}

// UpdateMenuItemRequest leaves absent fields untouched.
type UpdateMenuItemRequest struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	Category        *string   `json:"category"`
	Price           *float64  `json:"price"`
	Ingredients     *[]string `json:"ingredients"`
	IsAvailable     *bool     `json:"isAvailable"`
	PreparationTime *int      `json:"preparationTime"`
	ImageURL        *string   `json:"imageUrl"`
}

type OrderLineRequest struct {
	MenuItem string `json:"menuItem"`
	Quantity int    `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	TableNumber  int                `json:"tableNumber"`
	Items        []OrderLineRequest `json:"items"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type MenuItemResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	Ingredients     []string  `json:"ingredients"`
	IsAvailable     bool      `json:"isAvailable"`
	PreparationTime int       `json:"preparationTime"`
	ImageURL        string    `json:"imageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func newMenuItemResponse(v queries.MenuItemView) MenuItemResponse {
	ingredients := v.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return MenuItemResponse{
		ID:              v.ID.String(),
		Name:            v.Name,
		Description:     v.Description,
		Category:        v.Category.String(),
		Price:           v.Price.Float64(),
		Ingredients:     ingredients,
		IsAvailable:     v.IsAvailable,
		PreparationTime: v.PreparationTime,
		ImageURL:        v.ImageURL,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func newMenuItemResponses(views []queries.MenuItemView) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, newMenuItemResponse(v))
	}
	return out
}

type OrderMenuItemResponse struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description,omitempty"`
}

type OrderItemResponse struct {
	MenuItemID string                 `json:"menuItemId"`
	MenuItem   *OrderMenuItemResponse `json:"menuItem"`
	Quantity   int                    `json:"quantity"`
	Price      float64                `json:"price"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	OrderNumber  string              `json:"orderNumber"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  float64             `json:"totalAmount"`
	Status       string              `json:"status"`
	CustomerName string              `json:"customerName"`
	TableNumber  int                 `json:"tableNumber"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func newOrderResponse(v queries.OrderView) OrderResponse {
	items := make([]OrderItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		resp := OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			Price:      item.Price.Float64(),
		}
		if item.MenuItem != nil {
			resp.MenuItem = &OrderMenuItemResponse{
				Name:        item.MenuItem.Name,
				Category:    item.MenuItem.Category.String(),
				Price:       item.MenuItem.Price.Float64(),
				ImageURL:    item.MenuItem.ImageURL,
				Description: item.MenuItem.Description,
			}
		}
		items = append(items, resp)
	}
	return OrderResponse{
		ID:           v.ID.String(),
		OrderNumber:  v.OrderNumber,
		Items:        items,
		TotalAmount:  v.TotalAmount.Float64(),
		Status:       v.Status.String(),
		CustomerName: v.CustomerName,
		TableNumber:  v.TableNumber,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

type TopSellerResponse struct {
	MenuItemID    string  `json:"menuItemId"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"imageUrl"`
	IsAvailable   bool    `json:"isAvailable"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
	OrderCount    int     `json:"orderCount"`
}

func newTopSellerResponses(views []queries.TopSellerView) []TopSellerResponse {
	out := make([]TopSellerResponse, 0, len(views))
	for _, v := range views {
		out = append(out, TopSellerResponse{
			MenuItemID:    v.MenuItemID.String(),
			Name:          v.Name,
			Category:      v.Category.String(),
			Price:         v.Price.Float64(),
			ImageURL:      v.ImageURL,
			IsAvailable:   v.IsAvailable,
			TotalQuantity: v.TotalQuantity,
			TotalRevenue:  v.TotalRevenue.Float64(),
			OrderCount:    v.OrderCount,
		})
	}
	return out
}

type StatusSummaryResponse struct {
	Status  string  `json:"status"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type SummaryResponse struct {
	TotalOrders  int                     `json:"totalOrders"`
	TotalRevenue float64                 `json:"totalRevenue"`
	ByStatus     []StatusSummaryResponse `json:"byStatus"`
}

func newSummaryResponse(s queries.SalesSummary) SummaryResponse {
	byStatus := make([]StatusSummaryResponse, 0, len(s.ByStatus))
	for _, st := range s.ByStatus {
		byStatus = append(byStatus, StatusSummaryResponse{
			Status:  st.Status.String(),
			Count:   st.Count,
			Revenue: st.Revenue.Float64(),
		})
	}
	return SummaryResponse{
		TotalOrders:  s.TotalOrders,
		TotalRevenue: s.TotalRevenue.Float64(),
		ByStatus:     byStatus,
	}
}

func statusMessage(s order.Status) string {
	return `Order status updated to "` + s.String() + `"`
}
