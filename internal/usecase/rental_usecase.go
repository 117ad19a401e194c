package usecase

import (
	"context"

	"gearshare/internal/domain/entity"
)

// RentItemInput defines the booking terms. Values are stored as supplied.
type RentItemInput struct {
	StartDate string
	EndDate   string
	TotalCost float64
}

// RentalUsecase lets renters book, list and return items.
type RentalUsecase interface {
	RentItem(ctx context.Context, identity entity.Identity, itemID int64, input *RentItemInput) (*entity.Rental, error)
	ListRentals(ctx context.Context, identity entity.Identity) ([]*entity.Rental, error)
	ListRenterRentals(ctx context.Context, identity entity.Identity, renterID int64) ([]*entity.Rental, error)
	ReturnItem(ctx context.Context, identity entity.Identity, itemID int64) error
}
