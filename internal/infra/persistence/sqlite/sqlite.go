// Package sqlite opens the embedded SQLite store used for development and tests.
package sqlite

import (
	"log/slog"

	"gearshare/config"
	"gearshare/internal/infra/persistence/gormlog"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// MemoryPath keeps the database in process memory.
const MemoryPath = ":memory:"

// Open opens the configured SQLite file. SQLite allows a single writer, so
// the pool is limited to one connection; this also keeps an in-memory
// database shared by every query.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	path := MemoryPath
	if cfg.SQLite != nil && cfg.SQLite.Path != "" {
		path = cfg.SQLite.Path
	}

	db, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlog.New(logger, cfg.Env.Debug),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
