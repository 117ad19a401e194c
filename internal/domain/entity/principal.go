// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Principal is an authenticated identity, either an owner or a renter.
// Namespace tells which table the ID was assigned from.
type Principal struct {
	ID           int64
	Namespace    Namespace
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string `json:"-"` // Never leaves the process.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PrincipalChanges carries the columns of a partial profile update.
// A nil field keeps the stored value.
type PrincipalChanges struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update touches no column at all.
func (c PrincipalChanges) IsEmpty() bool {
	return c.FirstName == nil && c.LastName == nil && c.Email == nil && c.PasswordHash == nil
}
