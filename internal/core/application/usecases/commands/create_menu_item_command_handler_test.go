package commands_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateMenuItemCommand(t *testing.T) commands.CreateMenuItemCommand {
	t.Helper()
	cmd, err := commands.NewCreateMenuItemCommand(commands.CreateMenuItemInput{
		Name:            "Grilled Salmon",
		Description:     "Atlantic salmon",
		Category:        "Main Course",
		Price:           ptr(24.99),
		Ingredients:     []string{"salmon", " lemon ", ""},
		PreparationTime: 20,
	})
	require.NoError(t, err)
	return cmd
}

func TestCreateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateMenuItemCommand(t)

	repo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("ExistsByName", ctx, "Grilled Salmon", (*kernel.UUID)(nil)).Return(false, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*menu.MenuItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMenuItemCommandHandler(factory)
	item, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Grilled Salmon", item.Name())
	assert.Equal(t, []string{"salmon", "lemon"}, item.Ingredients())
	assert.Equal(t, 20, item.PreparationTime())
	assert.True(t, item.IsAvailable())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateMenuItemCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateMenuItemCommand(t)

	repo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("ExistsByName", ctx, "Grilled Salmon", (*kernel.UUID)(nil)).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMenuItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateMenuItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateMenuItemCommand{} // not constructed properly
	factory := new(MockMenuUoWFactory)
	h := commands.NewCreateMenuItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateMenuItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateMenuItemCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateMenuItemCommand(t)

	uow := new(MockUoW)
	factory := new(MockMenuUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateMenuItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "begin error")
}

func TestCreateMenuItemCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateMenuItemCommand(t)

	repo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("ExistsByName", ctx, "Grilled Salmon", (*kernel.UUID)(nil)).Return(false, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*menu.MenuItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMenuItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "commit error")
	uow.AssertExpectations(t)
}
