package impl

import (
	"context"
	"testing"

	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
	"gearshare/internal/domain/repository"
	mockRepo "gearshare/internal/mocks/repository"
	"gearshare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type rentalServiceFixtures struct {
	service    usecase.RentalUsecase
	rentalRepo *mockRepo.MockRentalRepository
}

func createTestRentalService(t *testing.T) rentalServiceFixtures {
	rentalRepo := mockRepo.NewMockRentalRepository(t)

	return rentalServiceFixtures{
		service:    NewRentalService(RentalServiceParams{RentalRepo: rentalRepo, Logger: discardLogger()}),
		rentalRepo: rentalRepo,
	}
}

func TestRentalService_RentItem(t *testing.T) {
	t.Run("RenterFromSession", func(t *testing.T) {
		fx := createTestRentalService(t)
		ctx := context.Background()

		fx.rentalRepo.On("Create", ctx, mock.MatchedBy(func(r *entity.Rental) bool {
			return r.RenterID == 1 && r.ToolID == 7 && r.TotalCost == 15 && r.StartDate == "2024-01-01"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Rental).ID = 3
		}).Return(nil)

		rental, err := fx.service.RentItem(ctx, renterOne, 7, &usecase.RentItemInput{
			StartDate: "2024-01-01",
			EndDate:   "2023-12-31",
			TotalCost: 15,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), rental.ID)
	})

	t.Run("OwnerForbidden", func(t *testing.T) {
		fx := createTestRentalService(t)

		_, err := fx.service.RentItem(context.Background(), ownerOne, 7, &usecase.RentItemInput{})
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestRentalService_ListRentals(t *testing.T) {
	fx := createTestRentalService(t)
	ctx := context.Background()
	expected := []*entity.Rental{{ID: 3, ToolID: 7, RenterID: 1}}

	fx.rentalRepo.On("ListByRenter", ctx, int64(1)).Return(expected, nil).Twice()

	rentals, err := fx.service.ListRentals(ctx, renterOne)
	require.NoError(t, err)
	assert.Equal(t, expected, rentals)

	rentals, err = fx.service.ListRenterRentals(ctx, renterOne, 1)
	require.NoError(t, err)
	assert.Equal(t, expected, rentals)
}

func TestRentalService_ListRenterRentals_OtherRenterForbidden(t *testing.T) {
	fx := createTestRentalService(t)

	_, err := fx.service.ListRenterRentals(context.Background(), renterOne, 2)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = fx.service.ListRenterRentals(context.Background(), ownerOne, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRentalService_ReturnItem(t *testing.T) {
	fx := createTestRentalService(t)
	ctx := context.Background()

	fx.rentalRepo.On("DeleteByItem", ctx, int64(7), int64(1)).Return(nil).Once()
	fx.rentalRepo.On("DeleteByItem", ctx, int64(7), int64(1)).Return(repository.ErrRentalNotFound).Once()

	require.NoError(t, fx.service.ReturnItem(ctx, renterOne, 7))

	err := fx.service.ReturnItem(ctx, renterOne, 7)
	assert.True(t, errors.Is(err, domainerrors.ErrRentalNotFound))
}
