package model

import "time"

// RentalModel mirrors the 'rentals' table. ToolID is the rented item id.
type RentalModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	StartDate string  `gorm:"type:varchar(64)"`
	EndDate   string  `gorm:"type:varchar(64)"`
	TotalCost float64 `gorm:"not null"`
	ToolID    int64   `gorm:"not null;index"`
	RenterID  int64   `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RentalModel) TableName() string {
	return "rentals"
}
