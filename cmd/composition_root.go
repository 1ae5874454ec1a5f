package cmd

import (
	"distribution/internal/adapters/out/postgres"
	"distribution/internal/adapters/out/postgres/branchdir"
	"distribution/internal/adapters/out/postgres/inventoryrepo"
	"distribution/internal/adapters/out/postgres/retailerdir"
	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB            *gorm.DB
	uowFactory        postgres.GormUnitOfWorkFactory
	branchDirectory   ports.BranchDirectory
	retailerDirectory ports.RetailerDirectory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:            gormDB,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB),
		branchDirectory:   branchdir.NewGormBranchDirectory(gormDB),
		retailerDirectory: retailerdir.NewGormRetailerDirectory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.branchDirectory, c.retailerDirectory)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.branchDirectory)
}

func (c *CompositionRoot) CreateCreateInventoryRecordCommandHandler() commands.CreateInventoryRecordCommandHandler {
	return commands.NewCreateInventoryRecordCommandHandler(c.inventoryUoWFactory(), c.branchDirectory)
}

func (c *CompositionRoot) CreateSetStockBucketsCommandHandler() commands.SetStockBucketsCommandHandler {
	return commands.NewSetStockBucketsCommandHandler(c.inventoryUoWFactory(), c.branchDirectory)
}

func (c *CompositionRoot) CreateSetRackLocationCommandHandler() commands.SetRackLocationCommandHandler {
	return commands.NewSetRackLocationCommandHandler(c.inventoryUoWFactory(), c.branchDirectory)
}

func (c *CompositionRoot) CreateRecordSaleCommandHandler() commands.RecordSaleCommandHandler {
	return commands.NewRecordSaleCommandHandler(c.inventoryUoWFactory(), c.branchDirectory)
}

func (c *CompositionRoot) CreateRecordPurchaseCommandHandler() commands.RecordPurchaseCommandHandler {
	return commands.NewRecordPurchaseCommandHandler(c.inventoryUoWFactory(), c.branchDirectory)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	// The detail query reads stock outside any transaction; availability is a
	// point-in-time snapshot, so tracking its aggregates would be pointless.
	inventoryReads := inventoryrepo.NewGormInventoryRepository(c.gormDB, noopTracker{})
	return queries.NewGetOrderDetailQueryHandler(c.gormDB, inventoryReads)
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusStatisticsQueryHandler() queries.GetStatusStatisticsQueryHandler {
	return queries.NewGetStatusStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockQueryHandler() queries.GetLowStockQueryHandler {
	return queries.NewGetLowStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
