package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/adapters/out/audit"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/adapters/out/notify"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/adapters/out/postgres"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/application/usecases/commands"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/application/usecases/queries"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/services"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	auditLog   ports.AuditLog
	notifier   ports.Notifier
	resolver   services.PricingResolver
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		auditLog:   audit.NewGormAuditLog(gormDB, logger),
		notifier:   notify.NewSlogNotifier(logger),
		resolver:   services.NewPricingResolver(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.resolver, c.auditLog)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRouteCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateToggleOrderInRouteCommandHandler() commands.ToggleOrderInRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleOrderInRouteCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateCompleteRouteCommandHandler() commands.CompleteRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteRouteCommandHandler(f, c.auditLog, c.notifier)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateOpenCashShiftCommandHandler() commands.OpenCashShiftCommandHandler {
	var f commands.CashShiftUoWFactory = FuncCashShiftUoWFactory(func() commands.CashShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenCashShiftCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateCloseCashShiftCommandHandler() commands.CloseCashShiftCommandHandler {
	var f commands.CashShiftUoWFactory = FuncCashShiftUoWFactory(func() commands.CashShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseCashShiftCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateRegisterCashTransactionCommandHandler() commands.RegisterCashTransactionCommandHandler {
	var f commands.CashShiftUoWFactory = FuncCashShiftUoWFactory(func() commands.CashShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCashTransactionCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f, c.auditLog, c.notifier)
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateGetUndeliveredOrdersQueryHandler() queries.GetUndeliveredOrdersQueryHandler {
	return queries.NewGetUndeliveredOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockProductsQueryHandler() queries.GetLowStockProductsQueryHandler {
	return queries.NewGetLowStockProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenCashShiftQueryHandler() queries.GetOpenCashShiftQueryHandler {
	return queries.NewGetOpenCashShiftQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetLowStockProductsQueryHandler(),
		c.notifier,
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncCashShiftUoWFactory func() commands.CashShiftUoW

func (f FuncCashShiftUoWFactory) Create() commands.CashShiftUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
