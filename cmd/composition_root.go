package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"courierdesk/internal/adapters/in/cli"
	"courierdesk/internal/adapters/out/clock"
	"courierdesk/internal/adapters/out/jsonstore"
	"courierdesk/internal/adapters/out/postgres"
	"courierdesk/internal/core/application/usecases/commands"
	"courierdesk/internal/core/application/usecases/queries"
	"courierdesk/internal/core/domain/services"
	"courierdesk/internal/core/ports"
	"courierdesk/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
	stats      services.Statistics
}

// NewCompositionRoot opens the configured storage backend. Call Close when done.
func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		cfg:    cfg,
		logger: logger,
		clock:  clock.NewSystemClock(),
		stats:  services.NewStatistics(time.Local),
	}

	switch cfg.StorageDriver {
	case DriverPostgres:
		db, err := postgres.Open(cfg.DSN())
		if err != nil {
			return nil, err
		}
		if err = postgres.Migrate(db); err != nil {
			_ = postgres.Close(db)
			return nil, fmt.Errorf("migrate: %w", err)
		}
		root.gormDB = db
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
		logger.Info("storage ready", "driver", DriverPostgres, "host", cfg.DBHost, "database", cfg.DBName)
	default:
		store, err := jsonstore.NewStore(cfg.SnapshotPath, logger)
		if err != nil {
			return nil, err
		}
		root.uowFactory = jsonstore.NewUnitOfWorkFactory(store)
		logger.Debug("storage ready", "driver", DriverJSON, "path", cfg.SnapshotPath)
	}

	return root, nil
}

// Close releases the database pool, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	return postgres.Close(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterClientCommandHandler() commands.RegisterClientCommandHandler {
	return commands.NewRegisterClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	return commands.NewUpdateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() commands.DeleteClientCommandHandler {
	return commands.NewDeleteClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	return commands.NewRegisterCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCourierCommandHandler() commands.DeleteCourierCommandHandler {
	return commands.NewDeleteCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateToggleCourierAvailabilityCommandHandler() commands.ToggleCourierAvailabilityCommandHandler {
	return commands.NewToggleCourierAvailabilityCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.uowFactory, c.stats, c.clock)
}

// CreateCLIHandlers wires every use case exposed on the command line.
func (c *CompositionRoot) CreateCLIHandlers() cli.Handlers {
	return cli.Handlers{
		RegisterClient: c.CreateRegisterClientCommandHandler(),
		UpdateClient:   c.CreateUpdateClientCommandHandler(),
		DeleteClient:   c.CreateDeleteClientCommandHandler(),

		RegisterCourier: c.CreateRegisterCourierCommandHandler(),
		DeleteCourier:   c.CreateDeleteCourierCommandHandler(),
		ToggleCourier:   c.CreateToggleCourierAvailabilityCommandHandler(),

		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		AssignCourier: c.CreateAssignCourierCommandHandler(),
		DispatchOrder: c.CreateDispatchOrderCommandHandler(),
		CancelOrder:   c.CreateCancelOrderCommandHandler(),
		DeliverOrder:  c.CreateDeliverOrderCommandHandler(),
		EditOrder:     c.CreateEditOrderCommandHandler(),

		ListClients:             queries.NewListClientsQueryHandler(c.uowFactory),
		ListCouriers:            queries.NewListCouriersQueryHandler(c.uowFactory),
		ListOrders:              queries.NewListOrdersQueryHandler(c.uowFactory),
		ListHistory:             queries.NewListHistoryQueryHandler(c.uowFactory),
		ListCourierActiveOrders: queries.NewListCourierActiveOrdersQueryHandler(c.uowFactory),
		ListCourierDeliveries:   queries.NewListCourierDeliveriesQueryHandler(c.uowFactory),

		Dashboard:   c.CreateGetDashboardQueryHandler(),
		TopCouriers: queries.NewGetTopCouriersQueryHandler(c.uowFactory, c.stats),
		DailySeries: queries.NewGetDailySeriesQueryHandler(c.uowFactory, c.stats),

		FindUser:    queries.NewFindUserByNationalIDQueryHandler(c.uowFactory),
		FindCourier: queries.NewFindCourierByNationalIDQueryHandler(c.uowFactory),
	}
}

// CreateJobManager wires the backup and KPI report jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	backup, err := jsonstore.NewBackup(c.uowFactory, c.cfg.BackupDir, c.logger)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(c.logger,
		jobs.NewSnapshotBackupJob(backup, c.clock, c.cfg.BackupSchedule, c.logger),
		jobs.NewKPIReportJob(c.CreateGetDashboardQueryHandler(), c.cfg.ReportSchedule, c.logger),
	), nil
}

// CreateApp builds the command-line front end.
func (c *CompositionRoot) CreateApp(out, errOut io.Writer) (*cli.App, error) {
	manager, err := c.CreateJobManager()
	if err != nil {
		return nil, err
	}
	return cli.NewApp(c.CreateCLIHandlers(), manager, out, errOut), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}
