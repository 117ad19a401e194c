package entity

import "time"

// Rental books one item for one renter.
// Dates are opaque strings; their order is not enforced.
type Rental struct {
	ID        int64
	StartDate string
	EndDate   string
	TotalCost float64
	ToolID    int64 // Item id.
	RenterID  int64 // Renter namespace id, always taken from the session.
	CreatedAt time.Time
}
