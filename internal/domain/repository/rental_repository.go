package repository

import (
	"context"
	"errors"

	"gearshare/internal/domain/entity"
)

// ErrRentalNotFound is returned when no rental row matches the predicate.
var ErrRentalNotFound = errors.New("rental not found")

// RentalRepository persists rentals, always scoped to a renter.
type RentalRepository interface {
	// Create inserts a rental and fills in its generated ID.
	Create(ctx context.Context, rental *entity.Rental) error

	// ListByRenter returns the rentals of one renter.
	ListByRenter(ctx context.Context, renterID int64) ([]*entity.Rental, error)

	// DeleteByItem deletes WHERE tool_id = ? AND renter_id = ?.
	DeleteByItem(ctx context.Context, itemID, renterID int64) error
}
