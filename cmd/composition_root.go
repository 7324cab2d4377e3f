package cmd

import (
	"freshly/internal/adapters/out/postgres"
	"freshly/internal/core/application/usecases/commands"
	"freshly/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateCreateDeliveryRequestCommandHandler() commands.CreateDeliveryRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptRequestCommandHandler() commands.AcceptRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStaleRequestsCommandHandler() commands.CancelStaleRequestsCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleRequestsCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPendingRequestsQueryHandler() queries.GetPendingRequestsQueryHandler {
	return queries.NewGetPendingRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAcceptedRequestsQueryHandler() queries.GetAcceptedRequestsQueryHandler {
	return queries.NewGetAcceptedRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverCapacityQueryHandler() queries.GetDriverCapacityQueryHandler {
	return queries.NewGetDriverCapacityQueryHandler(c.gormDB)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
