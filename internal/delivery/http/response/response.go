// Package response writes the JSON bodies of successful responses.
// Errors are rendered by the error middleware.
package response

import (
	"net/http"
	"time"

	"gearshare/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of mutations that only report success.
type MessageResponse struct {
	Message string `json:"message"`
}

// PrincipalResponse is the public projection of a principal. It never carries the password hash.
type PrincipalResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemResponse is the JSON form of an item.
type ItemResponse struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	ImgURL      string    `json:"img_url"`
	DailyCost   float64   `json:"daily_cost"`
	Available   bool      `json:"available"`
	Condition   string    `json:"condition"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RentalResponse is the JSON form of a rental.
type RentalResponse struct {
	ID        int64     `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	TotalCost float64   `json:"total_cost"`
	ToolID    int64     `json:"tool_id"`
	RenterID  int64     `json:"renter_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Message writes {"message": message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// OK writes data with status 200.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// NewPrincipal projects a principal for clients.
func NewPrincipal(p *entity.Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewItem converts an item for clients.
func NewItem(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Title:       item.Title,
		Description: item.Description,
		Make:        item.Make,
		Model:       item.Model,
		ImgURL:      item.ImgURL,
		DailyCost:   item.DailyCost,
		Available:   item.Available,
		Condition:   item.Condition,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// NewItems converts a list of items. The result is never nil so it encodes as [].
func NewItems(items []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewItem(item))
	}

	return out
}

// NewRentals converts a list of rentals. The result is never nil so it encodes as [].
func NewRentals(rentals []*entity.Rental) []RentalResponse {
	out := make([]RentalResponse, 0, len(rentals))
	for _, rental := range rentals {
		out = append(out, RentalResponse{
			ID:        rental.ID,
			StartDate: rental.StartDate,
			EndDate:   rental.EndDate,
			TotalCost: rental.TotalCost,
			ToolID:    rental.ToolID,
			RenterID:  rental.RenterID,
			CreatedAt: rental.CreatedAt,
		})
	}

	return out
}
