package store

import (
	"context"

	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
	"gearshare/internal/domain/repository"
	"gearshare/internal/infra/persistence/model"
	"gearshare/internal/infra/persistence/store/query"

	"gorm.io/gorm"
)

type rentalRepository struct {
	q *query.Query
}

// NewRentalRepository is the constructor for rentalRepository.
func NewRentalRepository(db *gorm.DB) repository.RentalRepository {
	return &rentalRepository{q: query.Use(db)}
}

func (repo *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	rentalM := &model.RentalModel{
		StartDate: rental.StartDate,
		EndDate:   rental.EndDate,
		TotalCost: rental.TotalCost,
		ToolID:    rental.ToolID,
		RenterID:  rental.RenterID,
	}

	if err := repo.q.RentalModel.WithContext(ctx).Create(rentalM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create rental")
	}

	rental.ID = rentalM.ID
	rental.CreatedAt = rentalM.CreatedAt

	return nil
}

func (repo *rentalRepository) ListByRenter(ctx context.Context, renterID int64) ([]*entity.Rental, error) {
	rentalsM, err := repo.q.RentalModel.WithContext(ctx).
		Where(repo.q.RentalModel.RenterID.Eq(renterID)).
		Order(repo.q.RentalModel.ID).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list rentals")
	}

	rentals := make([]*entity.Rental, 0, len(rentalsM))
	for _, rentalM := range rentalsM {
		rentals = append(rentals, &entity.Rental{
			ID:        rentalM.ID,
			StartDate: rentalM.StartDate,
			EndDate:   rentalM.EndDate,
			TotalCost: rentalM.TotalCost,
			ToolID:    rentalM.ToolID,
			RenterID:  rentalM.RenterID,
			CreatedAt: rentalM.CreatedAt,
		})
	}

	return rentals, nil
}

// DeleteByItem removes every rental of the item held by the renter.
func (repo *rentalRepository) DeleteByItem(ctx context.Context, itemID, renterID int64) error {
	result, err := repo.q.RentalModel.WithContext(ctx).
		Where(repo.q.RentalModel.ToolID.Eq(itemID), repo.q.RentalModel.RenterID.Eq(renterID)).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete rental")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRentalNotFound
	}

	return nil
}
