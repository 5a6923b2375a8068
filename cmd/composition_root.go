package cmd

import (
	"context"
	"log/slog"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/outbox"
	"fulfillment/internal/adapters/out/postgres/shippingrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into the use cases. A nil gormDB selects the
// in-memory storage driver.
type CompositionRoot struct {
	cfg       Config
	logger    *slog.Logger
	clock     kernel.Clock
	gormDB    *gorm.DB
	orders    ports.OrderRepository
	shipments ports.ShippingRepository
	publisher ports.EventPublisher
	outbox    *outbox.GormOutbox
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, clock kernel.Clock, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{cfg: cfg, logger: logger, clock: clock, gormDB: gormDB}

	if gormDB == nil {
		root.orders = memory.NewOrderRepository()
		root.shipments = memory.NewShippingRepository()
		bus := memory.NewEventBus()
		bus.Subscribe(forwardEvents(jobs.LogSink(logger.With("component", "event_bus")), logger))
		root.publisher = bus
		return root
	}

	root.orders = orderrepo.NewGormOrderRepository(gormDB)
	root.shipments = shippingrepo.NewGormShippingRepository(gormDB)
	root.outbox = outbox.NewGormOutbox(gormDB)
	root.publisher = root.outbox
	return root
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orders, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() *commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orders, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orders, c.clock, c.logger)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() *commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.orders, c.shipments, c.clock, c.logger)
}

func (c *CompositionRoot) CreateShipmentCommandHandler() *commands.ShipmentCommandHandler {
	return commands.NewShipmentCommandHandler(c.shipments, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateAdvanceShipmentsCommandHandler() *commands.AdvanceShipmentsCommandHandler {
	return commands.NewAdvanceShipmentsCommandHandler(c.shipments, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateOrderQueryHandler() queries.OrderQueryHandler {
	return queries.NewOrderQueryHandler(c.orders, c.shipments)
}

// CreateGetAwaitingShipmentOrdersQueryHandler returns nil with the memory driver.
func (c *CompositionRoot) CreateGetAwaitingShipmentOrdersQueryHandler() *queries.GetAwaitingShipmentOrdersQueryHandler {
	if c.gormDB == nil {
		return nil
	}
	handler := queries.NewGetAwaitingShipmentOrdersQueryHandler(c.gormDB)
	return &handler
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:       c.CreatePlaceOrderCommandHandler(),
		MarkOrderPaid:    c.CreateMarkOrderPaidCommandHandler(),
		CancelOrder:      c.CreateCancelOrderCommandHandler(),
		CreateShipment:   c.CreateCreateShipmentCommandHandler(),
		Shipments:        c.CreateShipmentCommandHandler(),
		Orders:           c.CreateOrderQueryHandler(),
		AwaitingShipment: c.CreateGetAwaitingShipmentOrdersQueryHandler(),
	}, c.logger)
}

// CreateJobManager schedules shipment progress, plus the outbox relay when
// events go to the postgres outbox.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	all := []jobs.Job{
		jobs.NewShipmentProgressJob(c.CreateAdvanceShipmentsCommandHandler(), c.cfg.ShipmentProgressSchedule, 0, c.logger),
	}
	if c.outbox != nil {
		all = append(all, jobs.NewOutboxRelayJob(c.outbox, nil, c.clock, c.logger))
	}
	return jobs.NewJobManager(all...)
}

// forwardEvents hands every published event to sink as an envelope.
func forwardEvents(sink jobs.Sink, logger *slog.Logger) func(events.Event) {
	return func(e events.Event) {
		env, err := events.Wrap(e)
		if err != nil {
			logger.Error("Failed to encode event", "kind", string(e.Kind()), "error", err)
			return
		}
		if err = sink(context.Background(), env); err != nil {
			logger.Error("Failed to deliver event", "kind", string(e.Kind()), "aggregate_id", env.AggregateID, "error", err)
		}
	}
}
