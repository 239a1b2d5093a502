package menurepo_test

import (
	"context"
	"testing"

	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/pgtest"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// MenuItemRepositoryIntegrationTestSuite runs the repository against a real PostgreSQL.
type MenuItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *menurepo.GormMenuItemRepository
	tracker    *MockAggregateTracker
}

func (suite *MenuItemRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres.Migrate(database.DB))
}

func (suite *MenuItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgres.Truncate(suite.database.DB))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = menurepo.NewGormMenuItemRepository(suite.database.DB, suite.tracker)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *MenuItemRepositoryIntegrationTestSuite) newItem(name string, price float64) *menu.MenuItem {
	p, err := kernel.MoneyFromFloat(price)
	suite.Require().NoError(err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, menu.MainCourse, p)
	suite.Require().NoError(err)
	return item
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	item := suite.newItem("Grilled Salmon", 24.99)
	item.SetDescription("Atlantic salmon fillet")
	item.SetIngredients([]string{"salmon fillet", "asparagus", "lemon"})
	suite.Require().NoError(item.SetPreparationTime(20))
	item.SetImageURL("https://example.com/salmon.jpg")

	suite.Require().NoError(suite.repository.Add(ctx, item))

	got, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("Grilled Salmon", got.Name())
	suite.Equal("Atlantic salmon fillet", got.Description())
	suite.Equal(menu.MainCourse, got.Category())
	suite.Equal("24.99", got.Price().String())
	suite.Equal([]string{"salmon fillet", "asparagus", "lemon"}, got.Ingredients())
	suite.Equal(20, got.PreparationTime())
	suite.Equal("https://example.com/salmon.jpg", got.ImageURL())
	suite.True(got.IsAvailable())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", item.ID(), item)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestAdd_DuplicateName_Conflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newItem("Tiramisu", 9.99)))

	err := suite.repository.Add(ctx, suite.newItem("Tiramisu", 5))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestAdd_NameIsCaseSensitive() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newItem("Tiramisu", 9.99)))

	suite.Require().NoError(suite.repository.Add(ctx, suite.newItem("tiramisu", 9.99)))
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestUpdate_WritesZeroValues() {
	ctx := context.Background()
	item := suite.newItem("Risotto", 16.99)
	item.SetDescription("Creamy")
	suite.Require().NoError(suite.repository.Add(ctx, item))

	item.SetAvailability(false)
	item.SetDescription("")
	item.SetIngredients(nil)
	suite.Require().NoError(suite.repository.Update(ctx, item))

	got, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.False(got.IsAvailable())
	suite.Empty(got.Description())
	suite.Empty(got.Ingredients())
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestUpdate_RenameToTakenName_Conflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newItem("Burger", 14.99)))
	other := suite.newItem("Steak", 32.99)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	suite.Require().NoError(other.SetName("Burger"))
	err := suite.repository.Update(ctx, other)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestUpdate_Missing_NotFound() {
	err := suite.repository.Update(context.Background(), suite.newItem("Ghost", 1))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	item := suite.newItem("Garlic Bread", 6.99)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(suite.repository.Delete(ctx, item.ID()))

	_, err := suite.repository.Get(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, item.ID()), errs.ErrObjectNotFound)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestExistsByName() {
	ctx := context.Background()
	item := suite.newItem("Lemonade", 4.99)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	exists, err := suite.repository.ExistsByName(ctx, "Lemonade", nil)
	suite.Require().NoError(err)
	suite.True(exists)

	id := item.ID()
	exists, err = suite.repository.ExistsByName(ctx, "Lemonade", &id)
	suite.Require().NoError(err)
	suite.False(exists)

	exists, err = suite.repository.ExistsByName(ctx, "lemonade", nil)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestGet_InvalidID() {
	_, err := suite.repository.Get(context.Background(), kernel.UUID{})

	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func TestMenuItemRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(MenuItemRepositoryIntegrationTestSuite))
}
