package handler

import (
	"net/http"
	"testing"

	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
	mockusecase "gearshare/internal/mocks/usecase"
	"gearshare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRentalHandler_RentItem(t *testing.T) {
	t.Run("renter id comes from the session", func(t *testing.T) {
		uc := mockusecase.NewMockRentalUsecase(t)
		uc.On("RentItem", mock.Anything, renterOne, int64(7), &usecase.RentItemInput{
			StartDate: "2024-05-01",
			EndDate:   "2024-05-03",
			TotalCost: 30,
		}).Return(&entity.Rental{ID: 11, ToolID: 7, RenterID: 1}, nil)

		c, rec := newContext(http.MethodPost, "/api/rentals/rent_item/7", requestOpts{
			body:     `{"start_date":"2024-05-01","end_date":"2024-05-03","total_cost":30,"renter_id":99}`,
			params:   map[string]string{"item_id": "7"},
			identity: &renterOne,
		})

		require.NoError(t, NewRentalHandler(uc).RentItem(c))
		assert.JSONEq(t, `{"message":"Item rented successfully","rental_id":11}`, rec.Body.String())
	})

	t.Run("dates required", func(t *testing.T) {
		c, _ := newContext(http.MethodPost, "/api/rentals/rent_item/7", requestOpts{
			body:     `{"total_cost":30}`,
			params:   map[string]string{"item_id": "7"},
			identity: &renterOne,
		})

		err := NewRentalHandler(mockusecase.NewMockRentalUsecase(t)).RentItem(c)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestRentalHandler_ListRentedItems(t *testing.T) {
	uc := mockusecase.NewMockRentalUsecase(t)
	uc.On("ListRentals", mock.Anything, renterOne).Return([]*entity.Rental{
		{ID: 1, ToolID: 7, RenterID: 1, StartDate: "a", EndDate: "b"},
	}, nil)

	c, rec := newContext(http.MethodGet, "/api/rented_items", requestOpts{identity: &renterOne})

	require.NoError(t, NewRentalHandler(uc).ListRentedItems(c))

	body := decode[[]map[string]any](t, rec)
	require.Len(t, body, 1)
	assert.EqualValues(t, 7, body[0]["tool_id"])
}

func TestRentalHandler_ListRenterRentals(t *testing.T) {
	t.Run("empty list encodes as array", func(t *testing.T) {
		uc := mockusecase.NewMockRentalUsecase(t)
		uc.On("ListRenterRentals", mock.Anything, renterOne, int64(1)).Return(nil, nil)

		c, rec := newContext(http.MethodGet, "/api/rentals/1", requestOpts{
			params:   map[string]string{"renter_id": "1"},
			identity: &renterOne,
		})

		require.NoError(t, NewRentalHandler(uc).ListRenterRentals(c))
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("other renter", func(t *testing.T) {
		uc := mockusecase.NewMockRentalUsecase(t)
		uc.On("ListRenterRentals", mock.Anything, renterOne, int64(2)).Return(nil, domainerrors.ErrForbidden)

		c, _ := newContext(http.MethodGet, "/api/rentals/2", requestOpts{
			params:   map[string]string{"renter_id": "2"},
			identity: &renterOne,
		})

		assert.ErrorIs(t, NewRentalHandler(uc).ListRenterRentals(c), domainerrors.ErrForbidden)
	})
}

func TestRentalHandler_RemoveItem(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		uc := mockusecase.NewMockRentalUsecase(t)
		uc.On("ReturnItem", mock.Anything, renterOne, int64(7)).Return(nil)

		c, rec := newContext(http.MethodDelete, "/api/rentals/remove_item/7", requestOpts{
			params:   map[string]string{"item_id": "7"},
			identity: &renterOne,
		})

		require.NoError(t, NewRentalHandler(uc).RemoveItem(c))
		assert.JSONEq(t, `{"message":"Item removed from rentals successfully"}`, rec.Body.String())
	})

	t.Run("nothing to remove", func(t *testing.T) {
		uc := mockusecase.NewMockRentalUsecase(t)
		uc.On("ReturnItem", mock.Anything, renterOne, int64(7)).Return(domainerrors.ErrRentalNotFound)

		c, _ := newContext(http.MethodDelete, "/api/rentals/remove_item/7", requestOpts{
			params:   map[string]string{"item_id": "7"},
			identity: &renterOne,
		})

		assert.ErrorIs(t, NewRentalHandler(uc).RemoveItem(c), domainerrors.ErrRentalNotFound)
	})
}
