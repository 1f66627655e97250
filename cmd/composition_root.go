package cmd

import (
	"log/slog"
	"time"

	"orderflow/internal/adapters/out/courieraggr"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/redis"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/jobs"

	rd "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	uowFactory postgres.GormUnitOfWorkFactory
	orderCache *redis.OrderListCache
	aggregator *courieraggr.Client
	logger     *slog.Logger

	integrationEnabled bool
	orderCacheTTL      time.Duration

	shippingContextHandler queries.GetShippingContextQueryHandler
}

func NewCompositionRoot(
	configs Config, gormDB *gorm.DB, redisClient *rd.Client, logger *slog.Logger,
) (CompositionRoot, error) {
	aggregator, err := courieraggr.NewClient(configs.AggregatorBaseURL, configs.AggregatorAPIKey)
	if err != nil {
		return CompositionRoot{}, err
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	shippingContextHandler, err := queries.NewGetShippingContextQueryHandler(
		uowFactory.Create().LogisticsRepository(), configs.ShippingIntegrationEnabled)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		uowFactory:             *uowFactory,
		orderCache:             redis.NewOrderListCache(redisClient),
		aggregator:             aggregator,
		logger:                 logger,
		integrationEnabled:     configs.ShippingIntegrationEnabled,
		orderCacheTTL:          configs.OrderCacheTTL,
		shippingContextHandler: shippingContextHandler,
	}, nil
}

func (c *CompositionRoot) CreateCreateManualShipmentCommandHandler() commands.CreateManualShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateManualShipmentCommandHandler(f, c.orderCache)
}

func (c *CompositionRoot) CreateCreateAPIShipmentCommandHandler() commands.CreateAPIShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAPIShipmentCommandHandler(f, c.aggregator, c.orderCache, c.integrationEnabled)
}

func (c *CompositionRoot) CreateAdvanceShipmentStatusCommandHandler() commands.AdvanceShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceShipmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateListLogicalOrdersQueryHandler() queries.ListLogicalOrdersQueryHandler {
	// Listing reads outside any transaction; a fresh unit of work that is
	// never begun hands out repositories bound to the plain connection.
	uow := c.uowFactory.Create()
	return queries.NewListLogicalOrdersQueryHandler(
		uow.RequisitionRepository(),
		uow.DocumentRepository(),
		c.orderCache,
		c.orderCacheTTL,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetShippingContextQueryHandler() queries.GetShippingContextQueryHandler {
	return c.shippingContextHandler
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	uow := c.uowFactory.Create()
	return jobs.NewJobManager(
		uow.ShipmentRepository(),
		c.aggregator,
		c.CreateAdvanceShipmentStatusCommandHandler(),
		c.logger,
	)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
