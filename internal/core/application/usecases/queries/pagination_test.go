package queries_test

import (
	"math"
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name         string
		page, limit  int
		defaultLimit int
		wantPage     int
		wantLimit    int
		wantOffset   int
	}{
		{"defaults", 0, 0, queries.DefaultMenuPageLimit, 1, 50, 0},
		{"order defaults", 0, 0, queries.DefaultOrderPageLimit, 1, 10, 0},
		{"explicit", 3, 20, queries.DefaultMenuPageLimit, 3, 20, 40},
		{"capped limit", 2, 500, queries.DefaultMenuPageLimit, 2, queries.MaxPageLimit, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := queries.NewPagination(tt.page, tt.limit, tt.defaultLimit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, p.Page())
			assert.Equal(t, tt.wantLimit, p.Limit())
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}

	t.Run("negative values are invalid", func(t *testing.T) {
		_, err := queries.NewPagination(-1, 10, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = queries.NewPagination(1, -10, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("page whose offset overflows is out of range", func(t *testing.T) {
		_, err := queries.NewPagination(math.MaxInt, 10, 10)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		p, err := queries.NewPagination(math.MaxInt/10+1, 10, 10)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Offset(), 0)
	})
}
