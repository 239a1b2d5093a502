package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchMenuItemsQuery_Sanitizes(t *testing.T) {
	tests := map[string]string{
		"salmon":                   "salmon",
		"  basil  ":                "basil",
		`<script>"alert"</script>`: "scriptalert/script",
		"chef's 'special'":         "chefs special",
		" <> ":                     "",
		"50% off_":                 "50% off_",
	}

	for raw, want := range tests {
		assert.Equal(t, want, queries.NewSearchMenuItemsQuery(raw).Term(), raw)
	}
}

func TestSearchMenuItemsQueryHandler_EmptyTermSkipsDatabase(t *testing.T) {
	h := queries.NewSearchMenuItemsQueryHandler(nil)

	items, err := h.Handle(t.Context(), queries.NewSearchMenuItemsQuery(` "' `))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSearchMenuItemsQuery_NotConstructed(t *testing.T) {
	h := queries.NewSearchMenuItemsQueryHandler(nil)

	_, err := h.Handle(t.Context(), queries.SearchMenuItemsQuery{})
	require.ErrorIs(t, err, queries.ErrSearchMenuItemsQueryIsNotConstructed)
}
