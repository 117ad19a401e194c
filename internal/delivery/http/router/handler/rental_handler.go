package handler

import (
	"net/http"

	"gearshare/internal/delivery/http/response"
	"gearshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type rentItemRequest struct {
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date" validate:"required"`
	TotalCost float64 `json:"total_cost"`
}

type rentItemResponse struct {
	Message  string `json:"message"`
	RentalID int64  `json:"rental_id"`
}

// RentalHandler serves renters' bookings.
type RentalHandler struct {
	uc usecase.RentalUsecase
}

// NewRentalHandler is the constructor for RentalHandler, injected by Fx.
func NewRentalHandler(uc usecase.RentalUsecase) *RentalHandler {
	return &RentalHandler{uc: uc}
}

// ListRentedItems returns the caller's rentals.
func (h *RentalHandler) ListRentedItems(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	rentals, err := h.uc.ListRentals(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewRentals(rentals))
}

// ListRenterRentals returns the rentals of the renter in the path, who must be the caller.
func (h *RentalHandler) ListRenterRentals(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	renterID, err := pathID(c, "renter_id")
	if err != nil {
		return err
	}

	rentals, err := h.uc.ListRenterRentals(c.Request().Context(), caller, renterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewRentals(rentals))
}

// RentItem books the item in the path for the caller.
func (h *RentalHandler) RentItem(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "item_id")
	if err != nil {
		return err
	}

	var req rentItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rental, err := h.uc.RentItem(c.Request().Context(), caller, itemID, &usecase.RentItemInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		TotalCost: req.TotalCost,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, rentItemResponse{
		Message:  "Item rented successfully",
		RentalID: rental.ID,
	})
}

// RemoveItem deletes the caller's rental of the item in the path.
func (h *RentalHandler) RemoveItem(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	itemID, err := pathID(c, "item_id")
	if err != nil {
		return err
	}

	if err := h.uc.ReturnItem(c.Request().Context(), caller, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Item removed from rentals successfully")
}
