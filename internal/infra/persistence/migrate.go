package persistence

import (
	"context"

	"gearshare/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the owners, renters, items and rentals tables.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.OwnerModel{},
		&model.RenterModel{},
		&model.ItemModel{},
		&model.RentalModel{},
	)

	return errors.Wrap(err, "failed to migrate database schema")
}
