package model

import "time"

// ItemModel mirrors the 'items' table.
type ItemModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64   `gorm:"not null;index"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Make        string  `gorm:"type:varchar(100)"`
	Model       string  `gorm:"type:varchar(100)"`
	ImgURL      string  `gorm:"column:img_url;type:text"`
	DailyCost   float64 `gorm:"not null"`
	Available   bool    `gorm:"not null"`
	Condition   string  `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
