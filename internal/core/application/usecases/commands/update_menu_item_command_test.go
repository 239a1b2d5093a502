package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewUpdateMenuItemCommand(t *testing.T) {
	t.Run("should accept an empty patch", func(t *testing.T) {
		cmd, err := commands.NewUpdateMenuItemCommand(kernel.NewUUID(), commands.UpdateMenuItemInput{})
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		_, err := commands.NewUpdateMenuItemCommand(kernel.NewUUID(), commands.UpdateMenuItemInput{
			Name: ptr("   "),
		})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid category and price", func(t *testing.T) {
		_, err := commands.NewUpdateMenuItemCommand(kernel.NewUUID(), commands.UpdateMenuItemInput{
			Category: ptr("Snacks"),
			Price:    ptr(-0.01),
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := commands.NewUpdateMenuItemCommand(kernel.UUID{}, commands.UpdateMenuItemInput{})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
