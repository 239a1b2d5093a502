package queries

import (
	"context"
	"slices"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetSalesSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetSalesSummaryQueryHandler(db *gorm.DB) GetSalesSummaryQueryHandler {
	return GetSalesSummaryQueryHandler{db: db}
}

type statusSummaryRow struct {
	Status  int             `gorm:"column:status"`
	Count   int             `gorm:"column:count"`
	Revenue decimal.Decimal `gorm:"column:revenue"`
}

// Handle recomputes the summary from the orders table on every call.
func (h GetSalesSummaryQueryHandler) Handle(ctx context.Context, query GetSalesSummaryQuery) (SalesSummary, error) {
	if err := query.Validate(); err != nil {
		return SalesSummary{}, err
	}

	var rows []statusSummaryRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)                       AS count,
			COALESCE(SUM(total_amount), 0) AS revenue
		FROM orders
		GROUP BY status
	`).Scan(&rows).Error
	if err != nil {
		return SalesSummary{}, err
	}

	summary := SalesSummary{
		TotalRevenue: kernel.ZeroMoney(),
		ByStatus:     make([]StatusSummary, 0, len(rows)),
	}
	for _, row := range rows {
		status := order.Status(row.Status)
		if err = status.Validate(); err != nil {
			return SalesSummary{}, err
		}
		revenue, moneyErr := kernel.NewMoney(row.Revenue)
		if moneyErr != nil {
			return SalesSummary{}, moneyErr
		}

		summary.TotalOrders += row.Count
		summary.TotalRevenue = summary.TotalRevenue.Add(revenue)
		summary.ByStatus = append(summary.ByStatus, StatusSummary{
			Status:  status,
			Count:   row.Count,
			Revenue: revenue,
		})
	}

	slices.SortFunc(summary.ByStatus, func(a, b StatusSummary) int {
		return strings.Compare(a.Status.String(), b.Status.String())
	})

	return summary, nil
}
