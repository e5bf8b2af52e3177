package cmd

import (
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// UnitOfWorkFactory exposes the full-width factory for consumers that need
// every repository, such as the background jobs.
func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return &c.uowFactory
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignTailorsCommandHandler() commands.AssignTailorsCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTailorsCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTailorCommandHandler() commands.CreateTailorCommandHandler {
	var f commands.TailorUoWFactory = FuncTailorUoWFactory(func() commands.TailorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTailorCommandHandler(f)
}

func (c *CompositionRoot) CreateGetValidNextStatesQueryHandler() queries.GetValidNextStatesQueryHandler {
	return queries.NewGetValidNextStatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTimelineQueryHandler() queries.GetOrderTimelineQueryHandler {
	return queries.NewGetOrderTimelineQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTailorsQueryHandler() queries.GetTailorsQueryHandler {
	return queries.NewGetTailorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTailorRecommendationsQueryHandler() queries.GetTailorRecommendationsQueryHandler {
	return queries.NewGetTailorRecommendationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQcStationsQueryHandler() queries.GetQcStationsQueryHandler {
	return queries.NewGetQcStationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVansQueryHandler() queries.GetVansQueryHandler {
	return queries.NewGetVansQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFlightsQueryHandler() queries.GetFlightsQueryHandler {
	return queries.NewGetFlightsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncTailorUoWFactory func() commands.TailorUoW

func (f FuncTailorUoWFactory) Create() commands.TailorUoW {
	return f()
}
