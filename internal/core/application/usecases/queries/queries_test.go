package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMenuItemsQuery(t *testing.T) {
	t.Run("should accept empty filter", func(t *testing.T) {
		q, err := queries.NewGetMenuItemsQuery(queries.MenuItemFilter{}, 0, 0)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, queries.DefaultMenuPageLimit, q.Pagination().Limit())
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		category := "Snacks"
		_, err := queries.NewGetMenuItemsQuery(queries.MenuItemFilter{Category: &category}, 1, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative price bounds", func(t *testing.T) {
		minPrice, maxPrice := -1.0, -2.0
		_, err := queries.NewGetMenuItemsQuery(queries.MenuItemFilter{MinPrice: &minPrice, MaxPrice: &maxPrice}, 1, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "minPrice")
		assert.Contains(t, err.Error(), "maxPrice")
	})
}

func TestNewGetOrdersQuery(t *testing.T) {
	q, err := queries.NewGetOrdersQuery("", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultOrderPageLimit, q.Pagination().Limit())

	_, err = queries.NewGetOrdersQuery("Ready", 2, 5)
	require.NoError(t, err)

	_, err = queries.NewGetOrdersQuery("Shipped", 1, 10)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQueries_RequireConstructor(t *testing.T) {
	_, err := queries.NewGetMenuItemQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	assert.ErrorIs(t, queries.GetMenuItemsQuery{}.Validate(), queries.ErrGetMenuItemsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetMenuItemQuery{}.Validate(), queries.ErrGetMenuItemQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrdersQuery{}.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetTopSellersQuery{}.Validate(), queries.ErrGetTopSellersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetSalesSummaryQuery{}.Validate(), queries.ErrGetSalesSummaryQueryIsNotConstructed)
	assert.NoError(t, queries.NewGetTopSellersQuery().Validate())
	assert.NoError(t, queries.NewGetSalesSummaryQuery().Validate())
}
