// Package persistence opens the configured database and owns its lifecycle.
package persistence

import (
	"context"
	"log/slog"

	"gearshare/config"
	"gearshare/internal/domain/lifecycle"
	"gearshare/internal/infra/persistence/postgres"
	"gearshare/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database and registers start/stop hooks: ping and optional
// migration on start, pool shutdown on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", params.Config.Database.Driver)
			}

			if params.Config.Database.AutoMigrate {
				if err := AutoMigrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("Database schema migrated", slog.String("driver", params.Config.Database.Driver))
			}

			if params.Config.Database.Driver == config.DriverPostgres {
				go postgres.MonitorPool(monitorCtx, params.Logger, sqlDB, postgres.PoolMonitorInterval)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the configured driver without lifecycle hooks.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		return sqlite.Open(cfg, logger)
	case config.DriverPostgres, "":
		return postgres.Open(cfg, logger)
	default:
		return nil, errors.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}
}
