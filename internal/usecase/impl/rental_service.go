package impl

import (
	"context"
	"log/slog"

	deliverycontext "gearshare/internal/delivery/context"
	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
	"gearshare/internal/domain/repository"
	"gearshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	logger     *slog.Logger
}

// RentalServiceParams holds dependencies for RentalService, injected by Fx.
type RentalServiceParams struct {
	fx.In

	RentalRepo repository.RentalRepository
	Logger     *slog.Logger
}

// NewRentalService creates a new rental service
func NewRentalService(params RentalServiceParams) usecase.RentalUsecase {
	return &rentalService{
		rentalRepo: params.RentalRepo,
		logger:     params.Logger,
	}
}

func (s *rentalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RentItem books the item for the calling renter. The item is neither looked
// up nor marked unavailable.
func (s *rentalService) RentItem(ctx context.Context, identity entity.Identity, itemID int64, input *usecase.RentItemInput) (*entity.Rental, error) {
	if err := requireNamespace(identity, entity.NamespaceRenter); err != nil {
		return nil, err
	}

	rental := &entity.Rental{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		TotalCost: input.TotalCost,
		ToolID:    itemID,
		RenterID:  identity.ID,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, errors.Wrap(err, "failed to create rental")
	}

	s.log(ctx).Info("Item rented", slog.Int64("rentalID", rental.ID), slog.Int64("itemID", itemID), slog.Int64("renterID", identity.ID))

	return rental, nil
}

func (s *rentalService) ListRentals(ctx context.Context, identity entity.Identity) ([]*entity.Rental, error) {
	if err := requireNamespace(identity, entity.NamespaceRenter); err != nil {
		return nil, err
	}

	return s.list(ctx, identity.ID)
}

// ListRenterRentals lists a renter's rentals; only that renter may ask.
func (s *rentalService) ListRenterRentals(ctx context.Context, identity entity.Identity, renterID int64) ([]*entity.Rental, error) {
	if err := requireSelf(identity, entity.NamespaceRenter, renterID); err != nil {
		return nil, err
	}

	return s.list(ctx, renterID)
}

func (s *rentalService) list(ctx context.Context, renterID int64) ([]*entity.Rental, error) {
	rentals, err := s.rentalRepo.ListByRenter(ctx, renterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rentals")
	}

	return rentals, nil
}

// ReturnItem deletes the caller's rentals of the item.
func (s *rentalService) ReturnItem(ctx context.Context, identity entity.Identity, itemID int64) error {
	if err := requireNamespace(identity, entity.NamespaceRenter); err != nil {
		return err
	}

	if err := s.rentalRepo.DeleteByItem(ctx, itemID, identity.ID); err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return domainerrors.ErrRentalNotFound.WrapMessage("failed to remove rental")
		}

		return errors.Wrap(err, "failed to remove rental")
	}

	s.log(ctx).Info("Item returned", slog.Int64("itemID", itemID), slog.Int64("renterID", identity.ID))

	return nil
}
