// Package model holds the GORM persistence models. They never leave the infra layer.
package model

import "time"

// PrincipalModel is the row shape shared by the owners and renters tables.
// Queries pick the table explicitly; OwnerModel and RenterModel exist for migrations.
type PrincipalModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:varchar(100)"`
	LastName  string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	OwnersTable  = "owners"
	RentersTable = "renters"
)

// OwnerModel mirrors the 'owners' table.
type OwnerModel struct {
	PrincipalModel
}

// TableName explicitly sets the table name for GORM.
func (OwnerModel) TableName() string {
	return OwnersTable
}

// RenterModel mirrors the 'renters' table.
type RenterModel struct {
	PrincipalModel
}

// TableName explicitly sets the table name for GORM.
func (RenterModel) TableName() string {
	return RentersTable
}
