package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should trim customer name", func(t *testing.T) {
		lines := []commands.OrderLine{{MenuItemID: kernel.NewUUID(), Quantity: 2}}
		cmd, err := commands.NewCreateOrderCommand("  Alice ", 4, lines)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Alice", cmd.CustomerName())
		assert.Equal(t, 4, cmd.TableNumber())
		assert.Equal(t, lines, cmd.Lines())
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("Alice", 4, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject bad table and quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("Alice", 0, []commands.OrderLine{
			{MenuItemID: kernel.NewUUID(), Quantity: 0},
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "table number")
		assert.Contains(t, err.Error(), "items[0].quantity")
	})

	t.Run("should reject missing customer and menu item id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(" ", 1, []commands.OrderLine{{Quantity: 1}})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "items[0].menuItemId")
	})
}
