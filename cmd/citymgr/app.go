package main

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/vbonduro/citygrid/internal/config"
	"github.com/vbonduro/citygrid/internal/db"
	"github.com/vbonduro/citygrid/internal/events"
	"github.com/vbonduro/citygrid/internal/events/rabbitmq"
	"github.com/vbonduro/citygrid/internal/importer"
	"github.com/vbonduro/citygrid/internal/logging"
	"github.com/vbonduro/citygrid/internal/service"
	"github.com/vbonduro/citygrid/internal/store"
	"github.com/vbonduro/citygrid/internal/web"
)

// app holds what every subcommand needs: configuration, a logger and an open
// database.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *sqlx.DB
	closers []func()
}

// newApp loads configuration, sets up logging and opens the database. When
// migrate is true pending migrations are applied on open.
func newApp(migrate bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	a := &app{cfg: cfg, logger: logger, closers: []func(){cleanup}}

	open := db.Connect
	if migrate {
		open = db.Open
	}
	database, err := open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
		a.close()
		return nil, err
	}
	a.db = database
	a.closers = append(a.closers, func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	})

	return a, nil
}

// close releases resources in reverse order of acquisition.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// publisher returns the RabbitMQ publisher when RABBITMQ_URL is set and a
// no-op publisher otherwise.
func (a *app) publisher() (events.Publisher, error) {
	if a.cfg.RabbitMQURL == "" {
		a.logger.Info("import events disabled")
		return events.Noop{}, nil
	}

	p, err := rabbitmq.Dial(a.cfg.RabbitMQURL, a.cfg.RabbitMQQueue)
	if err != nil {
		return nil, fmt.Errorf("failed to set up import events: %w", err)
	}
	a.logger.Info("publishing import events", "queue", a.cfg.RabbitMQQueue)
	a.closers = append(a.closers, func() {
		if err := p.Close(); err != nil {
			a.logger.Error("failed to close RabbitMQ publisher", "error", err)
		}
	})
	return p, nil
}

func (a *app) services(pub events.Publisher) web.Services {
	cityStore := store.NewCityStore(a.db)
	elecStore := store.NewElectricityStore(a.db)
	waterStore := store.NewWaterSupplyStore(a.db)
	imp := importer.New(cityStore, elecStore, waterStore, pub, a.logger)

	return web.Services{
		Cities:      service.NewCityService(cityStore, a.logger),
		Electricity: service.NewElectricityService(elecStore, cityStore, imp, a.logger),
		WaterSupply: service.NewWaterSupplyService(waterStore, cityStore, imp, a.logger),
		Waste:       service.NewWasteService(store.NewWasteStore(a.db), cityStore),
		Auth:        a.authService(),
	}
}

func (a *app) authService() *service.AuthService {
	return service.NewAuthService(store.NewUserStore(a.db), store.NewTokenStore(a.db), a.cfg.TokenTTL, a.logger)
}
