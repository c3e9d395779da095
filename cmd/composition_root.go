package cmd

import (
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires use case handlers to their infrastructure.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignShipmentCommandHandler() commands.AssignShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignShipmentCommandHandler(
		f,
		services.NewAssignmentService(c.configs.AssignExclusiveCarriers),
	)
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUserShipmentsQueryHandler() queries.GetUserShipmentsQueryHandler {
	return queries.NewGetUserShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingShipmentsQueryHandler() queries.GetPendingShipmentsQueryHandler {
	return queries.NewGetPendingShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllRoutesQueryHandler() queries.GetAllRoutesQueryHandler {
	return queries.NewGetAllRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCarriersQueryHandler() queries.GetAllCarriersQueryHandler {
	return queries.NewGetAllCarriersQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
