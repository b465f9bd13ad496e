package cmd

import (
	"log/slog"

	"digisales/internal/adapters/out/postgres"
	"digisales/internal/appstate"
	"digisales/internal/core/application/usecases/commands"
	"digisales/internal/core/application/usecases/queries"
	"digisales/internal/core/ports"
	"digisales/internal/monitor"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PosGateway
	store      *appstate.Store
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, gateway ports.PosGateway, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
		store:      appstate.NewStore(),
		logger:     logger,
	}
}

func (c *CompositionRoot) AppState() *appstate.Store {
	return c.store
}

func (c *CompositionRoot) CreateHoldOrderCommandHandler() commands.HoldOrderCommandHandler {
	var f commands.HeldOrderUoWFactory = FuncHeldOrderUoWFactory(func() commands.HeldOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewHoldOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRestoreHeldOrderCommandHandler() commands.RestoreHeldOrderCommandHandler {
	var f commands.HeldOrderUoWFactory = FuncHeldOrderUoWFactory(func() commands.HeldOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestoreHeldOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteHeldOrderCommandHandler() commands.DeleteHeldOrderCommandHandler {
	var f commands.HeldOrderUoWFactory = FuncHeldOrderUoWFactory(func() commands.HeldOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteHeldOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateSessionCommandHandler() commands.CreateSessionCommandHandler {
	return commands.NewCreateSessionCommandHandler(c.gateway)
}

func (c *CompositionRoot) CreateCloseSessionCommandHandler() commands.CloseSessionCommandHandler {
	return commands.NewCloseSessionCommandHandler(c.gateway)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.gateway)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.gateway)
}

func (c *CompositionRoot) CreateListHeldOrdersQueryHandler() queries.ListHeldOrdersQueryHandler {
	return queries.NewListHeldOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetActiveSessionsQueryHandler() queries.GetActiveSessionsQueryHandler {
	return queries.NewGetActiveSessionsQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetSessionOrdersQueryHandler() queries.GetSessionOrdersQueryHandler {
	return queries.NewGetSessionOrdersQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateMonitor() *monitor.Monitor {
	return monitor.NewMonitor(c.gateway, c.logger)
}

type FuncHeldOrderUoWFactory func() commands.HeldOrderUoW

func (f FuncHeldOrderUoWFactory) Create() commands.HeldOrderUoW {
	return f()
}
