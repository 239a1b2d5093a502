package cmd

import (
	"log/slog"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() *commands.CreateMenuItemCommandHandler {
	h := commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() *commands.UpdateMenuItemCommandHandler {
	h := commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() *commands.DeleteMenuItemCommandHandler {
	h := commands.NewDeleteMenuItemCommandHandler(c.menuUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateToggleMenuItemAvailabilityCommandHandler() *commands.ToggleMenuItemAvailabilityCommandHandler {
	h := commands.NewToggleMenuItemAvailabilityCommandHandler(c.menuUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.fullUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateGetSalesSummaryQueryHandler() queries.GetSalesSummaryQueryHandler {
	return queries.NewGetSalesSummaryQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case the HTTP server dispatches to.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateMenuItem:             c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:             c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:             c.CreateDeleteMenuItemCommandHandler(),
		ToggleMenuItemAvailability: c.CreateToggleMenuItemAvailabilityCommandHandler(),
		CreateOrder:                c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:          c.CreateChangeOrderStatusCommandHandler(),

		GetMenuItems:    queries.NewGetMenuItemsQueryHandler(c.gormDB),
		GetMenuItem:     queries.NewGetMenuItemQueryHandler(c.gormDB),
		SearchMenuItems: queries.NewSearchMenuItemsQueryHandler(c.gormDB),
		GetOrders:       queries.NewGetOrdersQueryHandler(c.gormDB),
		GetOrder:        queries.NewGetOrderQueryHandler(c.gormDB),
		GetTopSellers:   queries.NewGetTopSellersQueryHandler(c.gormDB),
		GetSalesSummary: c.CreateGetSalesSummaryQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	summary := jobs.NewSalesSummaryJob(c.CreateGetSalesSummaryQueryHandler(), c.cfg.SummaryCron, c.logger)
	return jobs.NewJobManager(summary)
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
