package cmd

import (
	"context"
	"errors"
	"fmt"

	httpadapter "ordertracker/internal/adapters/in/http"
	memoryrepo "ordertracker/internal/adapters/out/memory/orderrepo"
	mongoadapter "ordertracker/internal/adapters/out/mongo"
	mongorepo "ordertracker/internal/adapters/out/mongo/orderrepo"
	"ordertracker/internal/adapters/out/postgres"
	pgrepo "ordertracker/internal/adapters/out/postgres/orderrepo"
	"ordertracker/internal/adapters/out/twilio"
	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/ports"
	"ordertracker/internal/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderStore is what the configured driver provides.
type OrderStore interface {
	ports.OrderRepository
	ports.ConnectivityChecker
}

// CompositionRoot owns the process-wide singletons: the store, the notifier
// and the logger. Handlers, the HTTP server and jobs share them.
type CompositionRoot struct {
	cfg      Config
	store    OrderStore
	notifier ports.Notifier
	logger   *zap.Logger
	closers  []func(context.Context) error
}

func NewCompositionRoot(ctx context.Context, cfg Config, logger *zap.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{cfg: cfg, logger: logger}

	store, err := root.openStore(ctx)
	if err != nil {
		return nil, err
	}
	root.store = store

	notifier, err := twilio.NewNotifier(twilio.Config{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		From:       cfg.TwilioFrom,
		Channel:    cfg.TwilioChannel,
	}, logger)
	if err != nil {
		_ = root.Close(ctx)
		return nil, fmt.Errorf("create notifier: %w", err)
	}
	root.notifier = notifier

	return root, nil
}

func (c *CompositionRoot) openStore(ctx context.Context) (OrderStore, error) {
	switch c.cfg.StoreDriver {
	case StoreDriverMemory:
		return memoryrepo.NewMemoryOrderRepository(), nil

	case StoreDriverMongo:
		client, err := mongoadapter.Connect(ctx, c.cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("connect to mongo: %w", err)
		}
		c.closers = append(c.closers, client.Disconnect)
		return mongorepo.NewMongoOrderRepository(client.Database(c.cfg.MongoDatabase)), nil

	default:
		db, err := postgres.Open(postgres.Options{
			Host:     c.cfg.DBHost,
			Port:     c.cfg.DBPort,
			User:     c.cfg.DBUser,
			Password: c.cfg.DBPassword,
			Name:     c.cfg.DBName,
			SSLMode:  c.cfg.DBSslMode,
		}, c.logger)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		c.closers = append(c.closers, func(context.Context) error { return sqlDB.Close() })

		if err = pgrepo.Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pgrepo.NewGormOrderRepository(db), nil
	}
}

// Close releases store connections.
func (c *CompositionRoot) Close(ctx context.Context) error {
	var errList []error
	for _, closeFn := range c.closers {
		errList = append(errList, closeFn(ctx))
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.store, c.notifier, c.cfg.OperatorAddress, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.store, c.notifier, c.cfg.OperatorAddress, c.logger)
}

func (c *CompositionRoot) CreateSendMessageCommandHandler() commands.SendMessageCommandHandler {
	return commands.NewSendMessageCommandHandler(c.notifier)
}

func (c *CompositionRoot) CreateSendDailySummaryCommandHandler() commands.SendDailySummaryCommandHandler {
	return commands.NewSendDailySummaryCommandHandler(
		c.store, c.notifier, c.cfg.OperatorAddress, c.cfg.SweepLocation, c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetNextOrderNumberQueryHandler() queries.GetNextOrderNumberQueryHandler {
	return queries.NewGetNextOrderNumberQueryHandler(c.store, c.logger)
}

// CreateHTTPServer builds the echo instance with every route mounted.
func (c *CompositionRoot) CreateHTTPServer() *echo.Echo {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrder:        c.CreateUpdateOrderCommandHandler(),
		CompleteOrder:      c.CreateCompleteOrderCommandHandler(),
		SendMessage:        c.CreateSendMessageCommandHandler(),
		SendDailySummary:   c.CreateSendDailySummaryCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetAllOrders:       c.CreateGetAllOrdersQueryHandler(),
		GetNextOrderNumber: c.CreateGetNextOrderNumberQueryHandler(),
	}, c.store, c.notifier, c.logger)

	return httpadapter.NewEcho(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	job, err := jobs.NewDailySummaryJob(
		c.CreateSendDailySummaryCommandHandler(),
		c.cfg.SweepSchedule,
		c.cfg.SweepLocation,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(job, c.logger), nil
}
