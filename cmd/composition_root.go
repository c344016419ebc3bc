package cmd

import (
	"log/slog"

	"homechef/internal/adapters/in/http"
	"homechef/internal/adapters/out/postgres"
	"homechef/internal/adapters/out/postgres/catalogrepo"
	"homechef/internal/core/application/usecases/commands"
	"homechef/internal/core/application/usecases/queries"
	"homechef/internal/core/domain/services"
	"homechef/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services, and use case handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    *catalogrepo.GormCatalog
	gate       *services.CheckoutGate
	dispatcher services.DeliveryDispatcher
}

// NewCompositionRoot builds the object graph from the configuration and an
// open database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	catalog := catalogrepo.NewGormCatalog(gormDB)

	gate, err := services.NewCheckoutGate(
		services.DefaultCheckoutConfig(), catalog, catalog, catalog, nil)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		gate:       gate,
		dispatcher: services.NewDeliveryDispatcher(config.MaxActiveDeliveries),
	}, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.gate)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateBulkChangeOrderStatusCommandHandler() commands.BulkChangeOrderStatusCommandHandler {
	return commands.NewBulkChangeOrderStatusCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStalePendingOrdersCommandHandler() commands.CancelStalePendingOrdersCommandHandler {
	return commands.NewCancelStalePendingOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordPaymentResultCommandHandler() commands.RecordPaymentResultCommandHandler {
	return commands.NewRecordPaymentResultCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateRequestRefundCommandHandler() commands.RequestRefundCommandHandler {
	return commands.NewRequestRefundCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateReviewRefundCommandHandler() commands.ReviewRefundCommandHandler {
	return commands.NewReviewRefundCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateProcessRefundCommandHandler() commands.ProcessRefundCommandHandler {
	return commands.NewProcessRefundCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.deliveryUoWFactory(), c.catalog, c.dispatcher)
}

func (c *CompositionRoot) CreateChangeDeliveryStatusCommandHandler() commands.ChangeDeliveryStatusCommandHandler {
	return commands.NewChangeDeliveryStatusCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCreateBulkOrderCommandHandler() commands.CreateBulkOrderCommandHandler {
	return commands.NewCreateBulkOrderCommandHandler(c.bulkOrderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmBulkAssignmentCommandHandler() commands.ConfirmBulkAssignmentCommandHandler {
	return commands.NewConfirmBulkAssignmentCommandHandler(c.bulkOrderUoWFactory())
}

func (c *CompositionRoot) CreateRejectBulkAssignmentCommandHandler() commands.RejectBulkAssignmentCommandHandler {
	return commands.NewRejectBulkAssignmentCommandHandler(c.bulkOrderUoWFactory())
}

func (c *CompositionRoot) CreateCancelExpiredBulkOrdersCommandHandler() commands.CancelExpiredBulkOrdersCommandHandler {
	return commands.NewCancelExpiredBulkOrdersCommandHandler(c.bulkOrderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateBulkChangeOrderStatusCommandHandler(),
		c.CreateRecordPaymentResultCommandHandler(),
		c.CreateRequestRefundCommandHandler(),
		c.CreateReviewRefundCommandHandler(),
		c.CreateProcessRefundCommandHandler(),
		c.CreateAssignDeliveryCommandHandler(),
		c.CreateChangeDeliveryStatusCommandHandler(),
		c.CreateCreateBulkOrderCommandHandler(),
		c.CreateConfirmBulkAssignmentCommandHandler(),
		c.CreateRejectBulkAssignmentCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
	)
}

// CreateJobManager builds the background sweeps on their configured schedules.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCancelStalePendingOrdersCommandHandler(),
		c.CreateCancelExpiredBulkOrdersCommandHandler(),
		c.config.StaleOrderMaxAge,
		c.config.StaleOrderSchedule,
		c.config.BulkOrderSchedule,
		logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bulkOrderUoWFactory() commands.BulkOrderUoWFactory {
	return FuncBulkOrderUoWFactory(func() commands.BulkOrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncBulkOrderUoWFactory func() commands.BulkOrderUoW

func (f FuncBulkOrderUoWFactory) Create() commands.BulkOrderUoW {
	return f()
}
